package blockdag

// IdSlice sorts a list of block ids from small to big.
type IdSlice []uint

func (sl IdSlice) Len() int {
	return len(sl)
}

func (sl IdSlice) Less(i, j int) bool {
	return sl[i] < sl[j]
}

func (sl IdSlice) Swap(i, j int) {
	sl[i], sl[j] = sl[j], sl[i]
}
