/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package blockdag

// return the terminal blocks, because there maybe more than one, so this is a set.
func (bd *BlockDAG) GetTips() *IdSet {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	tips := NewIdSet()
	for k := range bd.tips.GetMap() {
		tips.Add(k)
	}
	return tips
}

// Acquire the tips array of DAG, deterministically sorted by the sequential id.
func (bd *BlockDAG) GetTipsList() []IBlock {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	result := bd.instance.GetTipsList()
	if result != nil {
		return result
	}
	result = []IBlock{}
	for _, k := range bd.tips.SortList(false) {
		result = append(result, bd.getBlockById(k))
	}
	return result
}

// Acquire the external ids of current tips, deterministically sorted by
// the sequential id. They serve as the default parents for a new block.
func (bd *BlockDAG) getTipDataIds() []string {
	result := []string{}
	for _, k := range bd.tips.SortList(false) {
		result = append(result, bd.getBlockById(k).GetData().GetID())
	}
	return result
}

// Refresh the dag tip with new block,it will cause changes in tips set.
func (bd *BlockDAG) updateTips(b IBlock) {
	if bd.tips == nil {
		bd.tips = NewIdSet()
		bd.tips.AddPair(b.GetID(), b)
		return
	}
	for k, v := range bd.tips.GetMap() {
		block := v.(IBlock)
		if block.HasChildren() {
			bd.tips.Remove(k)
		}
	}
	bd.tips.AddPair(b.GetID(), b)
}
