package blockdag

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func Test_GetDAGStructure(t *testing.T) {
	ibd := InitBlockDAG(phantom, -1, "PH_fig2-blocks")
	if ibd == nil {
		t.FailNow()
	}
	ds := bd.GetDAGStructure()
	assert.Equal(t, 12, len(ds.Nodes))
	assert.Equal(t, 19, len(ds.Edges))

	//The nodes are sorted by the sequential id
	assert.Equal(t, "Gen", ds.Nodes[0].Id)
	assert.Equal(t, uint(0), ds.Nodes[0].Order)
	assert.Equal(t, 0, len(ds.Nodes[0].Parents))
	assert.True(t, ds.Nodes[0].Blue)
	assert.Equal(t, "M", ds.Nodes[11].Id)
	assert.Equal(t, uint(4), ds.Nodes[11].Layer)
	assert.Equal(t, []string{"B", "C"}, ds.Nodes[5].Parents)
	assert.Equal(t, 64, len(ds.Nodes[0].Hash))

	assert.Equal(t, uint(12), ds.Metrics.Total)
	assert.Equal(t, uint(12), ds.Metrics.Blues)
	assert.Equal(t, uint(0), ds.Metrics.Reds)
	assert.Equal(t, uint(3), ds.Metrics.Tips)

	//Every edge runs from the parent
	for _, edge := range ds.Edges {
		from := bd.GetBlock(edge.From)
		to := bd.GetBlock(edge.To)
		if from == nil || to == nil || !to.GetParents().Has(from.GetID()) {
			t.Fatalf("edge does not follow a parent link: %s", spew.Sdump(edge))
		}
	}
}
