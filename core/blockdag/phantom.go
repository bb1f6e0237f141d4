package blockdag

import (
	"container/list"
	"fmt"

	"github.com/Qitmeer/phantom/common/anticone"
)

// The default network parameters for deriving the anticone size.
const (
	BlockDelay    = 15
	BlockRate     = 0.02
	SecurityLevel = 0.01
)

type Phantom struct {
	// The general foundation framework of DAG
	bd *BlockDAG

	// The block anticone size is all in the DAG which did not reference it and
	// were not referenced by it.
	anticoneSize int
}

func (ph *Phantom) GetName() string {
	return phantom
}

func (ph *Phantom) Init(bd *BlockDAG) bool {
	ph.bd = bd

	if ph.anticoneSize < 0 {
		ph.anticoneSize = anticone.GetSize(BlockDelay, BlockRate, SecurityLevel)
	}
	log.Info(fmt.Sprintf("anticone size:%d", ph.anticoneSize))

	return true
}

// Add a block
func (ph *Phantom) AddBlock(ib IBlock) *list.List {
	pb := ib.(*Block)
	pb.SetOrder(MaxBlockOrder)

	ph.updateBlockColor(pb)
	return ph.updateOrder(pb)
}

// Build self block
func (ph *Phantom) CreateBlock(b *Block) IBlock {
	return b
}

// The block is blue when the count of red blocks in its anticone does not
// exceed the anticone size of the DAG. The rule reads the live colors of
// the rest blocks at this moment, so the insertion sequence of blocks is
// part of the input: an earlier decision is never revisited when the later
// blocks arrive.
func (ph *Phantom) updateBlockColor(pb *Block) {
	if !pb.HasParents() {
		//It is genesis
		if pb.GetID() != ph.bd.genesis {
			panic(AssertError(fmt.Sprintf("the block %d without any parent is not genesis", pb.GetID())))
		}
		pb.blue = true
		pb.blueScore = 0
		return
	}

	pbAnticone := ph.bd.getAnticone(pb, nil)
	redCount := 0
	for k := range pbAnticone.GetMap() {
		if !ph.bd.getBlockById(k).IsBlue() {
			redCount++
		}
	}
	pb.blue = redCount <= ph.anticoneSize
	pb.blueScore = ph.getBlueNum(pb)

	log.Debug(fmt.Sprintf("Color block:%d", pb.GetID()),
		"blue", pb.blue, "reds in anticone", redCount, "blue score", pb.blueScore)
}

// Return the number of blue blocks in the past set of the block.
func (ph *Phantom) getBlueNum(pb *Block) uint {
	ps := NewIdSet()
	ph.bd.getPastSet(ps, pb)
	var num uint
	for k := range ps.GetMap() {
		if ph.bd.getBlockById(k).IsBlue() {
			num++
		}
	}
	return num
}

// If the successor return nil, the underlying layer will use the default tips list.
func (ph *Phantom) GetTipsList() []IBlock {
	return nil
}

// Find block by order, this is very fast.
func (ph *Phantom) GetBlockByOrder(order uint) IBlock {
	id, ok := ph.bd.order[order]
	if !ok {
		return nil
	}
	return ph.bd.getBlockById(id)
}
