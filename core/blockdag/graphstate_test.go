package blockdag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GraphStateEqual(t *testing.T) {
	gs := NewGraphState()
	gs.SetTotal(12)
	gs.SetBlues(12)
	gs.SetReds(0)
	gs.SetLayer(4)
	gs.GetTips().AddList([]uint{8, 10, 11})

	other := gs.Clone()
	assert.True(t, gs.IsEqual(other))
	assert.True(t, other.IsEqual(gs))

	//The clone must be independent of the source
	other.GetTips().Add(12)
	other.SetTotal(13)
	assert.False(t, gs.IsEqual(other))
	assert.Equal(t, uint(12), gs.GetTotal())
	assert.Equal(t, 3, gs.GetTips().Size())

	other = NewGraphState()
	other.Equal(gs)
	assert.True(t, other.IsEqual(gs))
}

func Test_GraphStateIsExcellent(t *testing.T) {
	gs := NewGraphState()
	gs.SetTotal(10)
	gs.SetBlues(9)
	gs.SetLayer(5)

	other := gs.Clone()
	assert.False(t, gs.IsExcellent(other))

	other.SetTotal(11)
	assert.False(t, gs.IsExcellent(other))
	assert.True(t, other.IsExcellent(gs))

	//The same total is decided by the blues
	other.SetTotal(10)
	other.SetBlues(8)
	assert.True(t, gs.IsExcellent(other))

	//The same blues is decided by the layer
	other.SetBlues(9)
	other.SetLayer(4)
	assert.True(t, gs.IsExcellent(other))
}

func Test_GraphStateString(t *testing.T) {
	gs := NewGraphState()
	gs.SetTotal(5)
	gs.SetBlues(4)
	gs.SetReds(1)
	gs.SetLayer(2)
	gs.GetTips().AddList([]uint{3, 4})
	assert.Equal(t, "(2,5,4,1,2)", gs.String())
}

func Test_GraphStateFromDAG(t *testing.T) {
	ibd := InitBlockDAG(phantom, -1, "PH_fig2-blocks")
	if ibd == nil {
		t.FailNow()
	}
	gs := bd.GetGraphState()
	assert.Equal(t, uint(12), gs.GetTotal())
	assert.Equal(t, uint(12), gs.GetBlues())
	assert.Equal(t, uint(0), gs.GetReds())
	assert.Equal(t, uint(4), gs.GetLayer())
	assert.Equal(t, 3, gs.GetTips().Size())
}
