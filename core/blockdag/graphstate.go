package blockdag

import (
	"fmt"
)

// A general description of the whole state of DAG
type GraphState struct {
	// The terminal block is in block dag,this block have not any connecting at present.
	tips *IdSet

	// The total number of blocks in block dag.
	total uint

	// The number of blue blocks in block dag.
	blues uint

	// The number of red blocks in block dag.
	reds uint

	// The height of main chain
	layer uint
}

// Return the DAG layer
func (gs *GraphState) GetLayer() uint {
	return gs.layer
}

func (gs *GraphState) SetLayer(layer uint) {
	gs.layer = layer
}

// Return the total of DAG
func (gs *GraphState) GetTotal() uint {
	return gs.total
}

func (gs *GraphState) SetTotal(total uint) {
	gs.total = total
}

// Return the number of blue blocks
func (gs *GraphState) GetBlues() uint {
	return gs.blues
}

func (gs *GraphState) SetBlues(blues uint) {
	gs.blues = blues
}

// Return the number of red blocks
func (gs *GraphState) GetReds() uint {
	return gs.reds
}

func (gs *GraphState) SetReds(reds uint) {
	gs.reds = reds
}

// Return the tips of DAG
func (gs *GraphState) GetTips() *IdSet {
	return gs.tips
}

func (gs *GraphState) IsEqual(other *GraphState) bool {
	if gs == other {
		return true
	}
	if gs.layer != other.layer || gs.total != other.total ||
		gs.blues != other.blues || gs.reds != other.reds {
		return false
	}
	return gs.tips.IsEqual(other.tips)
}

// Copy the state from other
func (gs *GraphState) Equal(other *GraphState) {
	if gs.IsEqual(other) {
		return
	}
	gs.tips = other.tips.Clone()
	gs.layer = other.layer
	gs.total = other.total
	gs.blues = other.blues
	gs.reds = other.reds
}

func (gs *GraphState) Clone() *GraphState {
	result := NewGraphState()
	result.Equal(gs)
	return result
}

func (gs *GraphState) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d,%d)", gs.tips.Size(), gs.total, gs.blues, gs.reds, gs.layer)
}

// Judging whether it is better than other
func (gs *GraphState) IsExcellent(other *GraphState) bool {
	if gs.IsEqual(other) {
		return false
	}
	if gs.total < other.total {
		return false
	} else if gs.total > other.total {
		return true
	}
	if gs.blues < other.blues {
		return false
	} else if gs.blues > other.blues {
		return true
	}
	if gs.layer < other.layer {
		return false
	} else if gs.layer > other.layer {
		return true
	}
	return false
}

// Create a new GraphState
func NewGraphState() *GraphState {
	return &GraphState{
		tips:  NewIdSet(),
		total: 0,
		blues: 0,
		reds:  0,
		layer: 0,
	}
}
