package anticone

import (
	"fmt"
	"math"
)

// GetSize calculates the anticone size, which means when some miner has just
// created a block, how many blocks at most are there created by other miners.
// Simply understanding, it is the block creating concurrency
//
// delay: Max propagation delay, unit is second
// rate: Block rate, unit is blocks/second
// security: Security level, the probability of an honest block being marked red
func GetSize(delay, rate, security float64) int {
	factor := 2 * delay * rate
	if factor > 10000 {
		panic(fmt.Sprintf("keep factor:%v = 2 * delay:%v * rate:%v under 10000", factor, delay, rate))
	}

	coef := math.Pow(math.E, factor)

	for k := 1; k < 1000; k++ {
		sigma := 1.0
		for j := 1; j <= k; j++ {
			n := 1.0
			for jj := 1; jj <= j; jj++ {
				n *= factor / float64(jj)
			}
			sigma += n
		}
		if (coef-sigma)/coef < security {
			return k
		}
	}

	return -1
}
