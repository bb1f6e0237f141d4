package blockdag

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Build a single chain of the wanted length, every block referencing the
// current tip. All of the blocks are blue on arrival.
func buildChainDAG(t *testing.T, total int, anticoneSize int) []IBlock {
	bd = BlockDAG{}
	bd.Init(phantom, anticoneSize)
	blocks := []IBlock{bd.CreateGenesis(buildBlock("c-0", []string{}))}
	for i := 1; i < total; i++ {
		ib, err := bd.AddBlock(buildBlock(fmt.Sprintf("c-%d", i), nil))
		if err != nil {
			t.Fatalf("Error:%s", err)
		}
		blocks = append(blocks, ib)
	}
	return blocks
}

func Test_DetectAttackEmpty(t *testing.T) {
	bd = BlockDAG{}
	bd.Init(phantom, 0)
	report := bd.DetectAttack(0.2)
	assert.Equal(t, false, report.Detected)
	assert.Equal(t, 0.0, report.RedRatio)
	assert.Equal(t, SeverityLow, report.Severity)
	assert.Equal(t, uint(0), report.Total)
}

func Test_DetectAttackThresholds(t *testing.T) {
	blocks := buildChainDAG(t, 20, 0)
	for i := 1; i <= 9; i++ {
		blocks[i].(*Block).blue = false
	}
	report := bd.DetectAttack(0.2)
	assert.True(t, report.Detected)
	assert.Equal(t, 0.45, report.RedRatio)
	assert.Equal(t, SeverityHigh, report.Severity)
	assert.Equal(t, uint(11), report.Blues)
	assert.Equal(t, uint(9), report.Reds)
	assert.Equal(t, uint(20), report.Total)

	//The threshold is above the ratio, but the ratio still sits in the
	//high risk range.
	report = bd.DetectAttack(0.5)
	assert.False(t, report.Detected)
	assert.Equal(t, SeverityHigh, report.Severity)

	//The threshold boundary is exclusive
	report = bd.DetectAttack(0.45)
	assert.False(t, report.Detected)
}

func Test_DetectAttackMedium(t *testing.T) {
	blocks := buildChainDAG(t, 20, 0)
	for i := 1; i <= 7; i++ {
		blocks[i].(*Block).blue = false
	}
	report := bd.DetectAttack(0.2)
	assert.True(t, report.Detected)
	assert.Equal(t, 0.35, report.RedRatio)
	assert.Equal(t, SeverityMedium, report.Severity)

	report = bd.DetectAttack(0.35)
	assert.False(t, report.Detected)
	assert.Equal(t, SeverityLow, report.Severity)
}
