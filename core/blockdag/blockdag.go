package blockdag

import (
	"fmt"
	"sync"
	"time"

	"container/list"

	"github.com/Qitmeer/phantom/metrics"
)

// Some available DAG algorithm types
const (
	// A Scalable BlockDAG protocol
	phantom = "phantom"
)

// Maximum order of the DAG block
const MaxBlockOrder = uint(^uint32(0))

var (
	// meters for the block accepting of DAG
	accBlockMeter = metrics.NewMeter("blkdag/accepted")
	accBlueMeter  = metrics.NewMeter("blkdag/accepted/blue")
	accRedMeter   = metrics.NewMeter("blkdag/accepted/red")
)

// It will create different BlockDAG instances
func NewBlockDAG(dagType string, anticoneSize int) IBlockDAG {
	switch dagType {
	case phantom:
		return &Phantom{anticoneSize: anticoneSize}
	}
	return nil
}

// The abstract inferface is used to build and manager DAG
type IBlockDAG interface {
	// Return the name
	GetName() string

	// This instance is initialized and will be executed first.
	Init(bd *BlockDAG) bool

	// Add a block
	AddBlock(ib IBlock) *list.List

	// Build self block
	CreateBlock(b *Block) IBlock

	// If the successor return nil, the underlying layer will use the default tips list.
	GetTipsList() []IBlock

	// Find block by order, this is very fast.
	GetBlockByOrder(order uint) IBlock
}

// The general foundation framework of DAG
type BlockDAG struct {
	// The genesis of block dag
	genesis uint

	// Use the sequential id to save all blocks with mapping
	blocks map[uint]IBlock

	// Mapping the external block id to the sequential id inside the DAG
	blockids map[string]uint

	// The total number blocks that this dag currently owned
	blockTotal uint

	// The terminal block is in block dag,this block have not any connecting at present.
	tips *IdSet

	// This is time when the last block have added
	lastTime time.Time

	// The full sequence of dag, please note that the order starts at zero.
	order map[uint]uint

	// Current dag instance used. Different algorithms work according to
	// different dag types config.
	instance IBlockDAG

	// state lock
	stateLock sync.RWMutex

	// The registered callbacks which receive updates of the DAG.
	notifications     []NotificationCallback
	notificationsLock sync.RWMutex
}

// Acquire the name of DAG instance
func (bd *BlockDAG) GetName() string {
	return bd.instance.GetName()
}

// GetInstance
func (bd *BlockDAG) GetInstance() IBlockDAG {
	return bd.instance
}

// Initialize self, the function to be invoked at the beginning.
// The anticone size can be fixed by the caller, any negative value means
// that it is derived from the default network parameters.
func (bd *BlockDAG) Init(dagType string, anticoneSize int) IBlockDAG {
	bd.instance = NewBlockDAG(dagType, anticoneSize)
	if bd.instance == nil {
		panic(AssertError(fmt.Sprintf("unknown DAG type:%s", dagType)))
	}

	bd.blocks = map[uint]IBlock{}
	bd.blockids = map[string]uint{}
	bd.order = map[uint]uint{}
	bd.tips = NewIdSet()
	bd.lastTime = time.Unix(time.Now().Unix(), 0)

	bd.instance.Init(bd)

	return bd.instance
}

// Build the genesis block of the DAG, the function must be invoked only
// once: a second genesis is a fatal error of the caller.
func (bd *BlockDAG) CreateGenesis(b IBlockData) IBlock {
	bd.stateLock.Lock()

	if b == nil {
		bd.stateLock.Unlock()
		panic(AssertError("genesis block data is nil"))
	}
	if bd.blockTotal > 0 {
		bd.stateLock.Unlock()
		panic(AssertError(fmt.Sprintf("genesis block already exists:%s",
			bd.getGenesis().GetData().GetID())))
	}
	if len(b.GetParents()) > 0 {
		bd.stateLock.Unlock()
		panic(AssertError("genesis block can not have any parent"))
	}

	ib := bd.createBlock(b, nil, nil)
	bd.genesis = ib.GetID()
	bd.stateLock.Unlock()

	bd.sendNotification(BlockAccepted, &BlockAcceptedNotifyData{Block: ib})
	return ib
}

// This is an entry for update the block dag, you need pass in a block data
// parameter. On success the new block is returned after it has been fully
// classified and ordered. A failed insert leaves the DAG untouched.
func (bd *BlockDAG) AddBlock(b IBlockData) (IBlock, error) {
	bd.stateLock.Lock()

	if b == nil {
		bd.stateLock.Unlock()
		return nil, AssertError("block data is nil")
	}
	if bd.hasBlockId(b.GetID()) {
		bd.stateLock.Unlock()
		return nil, ruleError(ErrDuplicateBlock, fmt.Sprintf(
			"block %s is already in the DAG", b.GetID()))
	}
	if bd.blockTotal == 0 {
		bd.stateLock.Unlock()
		return nil, ruleError(ErrNoParents, "the DAG does not have a genesis block yet")
	}

	parents := b.GetParents()
	if len(parents) == 0 {
		parents = bd.getTipDataIds()
	}
	parentSet := NewIdSet()
	for _, pid := range parents {
		id, ok := bd.blockids[pid]
		if !ok {
			bd.stateLock.Unlock()
			return nil, ruleError(ErrMissingParent, fmt.Sprintf(
				"parent %s is not in the DAG", pid))
		}
		parentSet.Add(id)
	}

	ib := bd.createBlock(b, parentSet, parents)
	bd.stateLock.Unlock()

	bd.sendNotification(BlockAccepted, &BlockAcceptedNotifyData{Block: ib})
	return ib, nil
}

// Create a new block and connect it into the DAG. The caller must have
// validated the block data and must hold the state lock.
func (bd *BlockDAG) createBlock(b IBlockData, parents *IdSet, parentIds []string) IBlock {
	block := Block{
		id:    bd.blockTotal,
		hash:  CalcBlockDataHash(b, parentIds),
		data:  b,
		order: MaxBlockOrder,
	}
	if parents != nil && !parents.IsEmpty() {
		block.parents = NewIdSet()
		var maxLayer uint
		for _, pid := range parents.SortList(false) {
			parent := bd.getBlockById(pid)
			block.parents.Add(pid)
			parent.AddChild(&block)

			if maxLayer == 0 || maxLayer < parent.GetLayer() {
				maxLayer = parent.GetLayer()
			}
		}
		block.SetLayer(maxLayer + 1)
	}

	ib := bd.instance.CreateBlock(&block)
	bd.blocks[block.GetID()] = ib
	bd.blockids[b.GetID()] = block.GetID()
	bd.blockTotal++
	bd.updateTips(ib)

	t := time.Unix(b.GetTimestamp(), 0)
	if bd.lastTime.Before(t) {
		bd.lastTime = t
	}

	changed := bd.instance.AddBlock(ib)

	accBlockMeter.Mark(1)
	if ib.IsBlue() {
		accBlueMeter.Mark(1)
	} else {
		accRedMeter.Mark(1)
	}
	log.Trace(fmt.Sprintf("Add block:%d(%s)", ib.GetID(), b.GetID()),
		"blue", ib.IsBlue(), "order changed", changed.Len())
	return ib
}

// Acquire the genesis block of DAG
func (bd *BlockDAG) GetGenesis() IBlock {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	return bd.getGenesis()
}

// Acquire the genesis block of DAG
func (bd *BlockDAG) getGenesis() IBlock {
	if bd.blockTotal == 0 {
		return nil
	}
	return bd.getBlockById(bd.genesis)
}

// Is there a block in DAG?
func (bd *BlockDAG) HasBlock(id string) bool {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	return bd.hasBlockId(id)
}

// Is there a block in DAG?
func (bd *BlockDAG) hasBlockId(id string) bool {
	_, ok := bd.blockids[id]
	return ok
}

// Acquire one block by the external block id
func (bd *BlockDAG) GetBlock(id string) IBlock {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	return bd.getBlock(id)
}

// Acquire one block by the external block id
func (bd *BlockDAG) getBlock(id string) IBlock {
	k, ok := bd.blockids[id]
	if !ok {
		return nil
	}
	return bd.getBlockById(k)
}

// Acquire one block by the sequential id
func (bd *BlockDAG) GetBlockById(id uint) IBlock {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	return bd.getBlockById(id)
}

// Acquire one block by the sequential id
func (bd *BlockDAG) getBlockById(id uint) IBlock {
	block, ok := bd.blocks[id]
	if !ok {
		return nil
	}
	return block
}

// Total number of blocks
func (bd *BlockDAG) GetBlockTotal() uint {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	return bd.blockTotal
}

// Is the block blue
func (bd *BlockDAG) IsBlue(id uint) bool {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	ib := bd.getBlockById(id)
	if ib == nil {
		return false
	}
	return ib.IsBlue()
}

// The last time is when add one block to DAG.
func (bd *BlockDAG) GetLastTime() *time.Time {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	return &bd.lastTime
}

// Obtain block by the global order
func (bd *BlockDAG) GetBlockByOrder(order uint) IBlock {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	return bd.instance.GetBlockByOrder(order)
}

// Return the blue blocks of the DAG sorted by their topological order.
// It is the consensus visible sequence which the downstream ledger logic
// consumes.
func (bd *BlockDAG) GetOrderedChain() []IBlock {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	result := []IBlock{}
	for i := uint(0); i < bd.blockTotal; i++ {
		id, ok := bd.order[i]
		if !ok {
			panic(AssertError(fmt.Sprintf("the order:%d is missing", i)))
		}
		ib := bd.getBlockById(id)
		if ib.IsBlue() {
			result = append(result, ib)
		}
	}
	return result
}

// Returns a past collection of block. This function is a recursively called function
// So we should consider its efficiency.
func (bd *BlockDAG) getPastSet(ps *IdSet, b IBlock) {
	parents := b.GetParents()
	if parents == nil || parents.IsEmpty() {
		return
	}
	for k := range parents.GetMap() {
		if !ps.Has(k) {
			ps.Add(k)
			bd.getPastSet(ps, bd.getBlockById(k))
		}
	}
}

// Acquire the past set of block (all of its ancestors, excluding itself)
func (bd *BlockDAG) GetPastSet(b IBlock) *IdSet {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	ps := NewIdSet()
	bd.getPastSet(ps, b)
	return ps
}

// Returns a future collection of block. This function is a recursively called function
// So we should consider its efficiency.
func (bd *BlockDAG) getFutureSet(fs *IdSet, b IBlock) {
	children := b.GetChildren()
	if children == nil || children.IsEmpty() {
		return
	}
	for k := range children.GetMap() {
		if !fs.Has(k) {
			fs.Add(k)
			bd.getFutureSet(fs, bd.getBlockById(k))
		}
	}
}

// Acquire the future set of block (all of its descendants, excluding itself)
func (bd *BlockDAG) GetFutureSet(b IBlock) *IdSet {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	fs := NewIdSet()
	bd.getFutureSet(fs, b)
	return fs
}

// Judging whether block is the virtual tip that it have not future set.
func isVirtualTip(b IBlock, futureSet *IdSet, anticone *IdSet, children *IdSet) bool {
	for k := range children.GetMap() {
		if k == b.GetID() {
			return false
		}
		if !futureSet.Has(k) && !anticone.Has(k) {
			return false
		}
	}
	return true
}

// This function is used to GetAnticone recursion
func (bd *BlockDAG) recAnticone(b IBlock, futureSet *IdSet, anticone *IdSet, id uint) {
	if id == b.GetID() {
		return
	}
	node := bd.getBlockById(id)
	children := node.GetChildren()
	needRecursion := false
	if children == nil || children.Size() == 0 {
		needRecursion = true
	} else {
		needRecursion = isVirtualTip(b, futureSet, anticone, children)
	}
	if needRecursion {
		if !futureSet.Has(id) {
			anticone.Add(id)
		}
		parents := node.GetParents()

		//Because parents can not be empty, so there is no need to judge.
		for k := range parents.GetMap() {
			bd.recAnticone(b, futureSet, anticone, k)
		}
	}
}

// This function can get anticone set for an block that you offered in the block dag,If
// the exclude set is not empty,the final result will exclude set that you passed in.
func (bd *BlockDAG) getAnticone(b IBlock, exclude *IdSet) *IdSet {
	futureSet := NewIdSet()
	bd.getFutureSet(futureSet, b)
	anticone := NewIdSet()
	for k := range bd.tips.GetMap() {
		bd.recAnticone(b, futureSet, anticone, k)
	}
	if exclude != nil {
		anticone.Exclude(exclude)
	}
	return anticone
}

// This function can get anticone set for an block that you offered in the block dag,If
// the exclude set is not empty,the final result will exclude set that you passed in.
func (bd *BlockDAG) GetAnticone(b IBlock, exclude *IdSet) *IdSet {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	return bd.getAnticone(b, exclude)
}

// Return current general description of the whole state of DAG
func (bd *BlockDAG) GetGraphState() *GraphState {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	return bd.getGraphState()
}

// Return current general description of the whole state of DAG
func (bd *BlockDAG) getGraphState() *GraphState {
	gs := NewGraphState()
	if bd.tips != nil && !bd.tips.IsEmpty() {
		gs.GetTips().AddList(bd.tips.List())

		gs.SetLayer(0)
		for _, v := range bd.tips.GetMap() {
			tip := v.(IBlock)
			if tip.GetLayer() > gs.GetLayer() {
				gs.SetLayer(tip.GetLayer())
			}
		}
	}
	gs.SetTotal(bd.blockTotal)

	var blues uint
	for _, ib := range bd.blocks {
		if ib.IsBlue() {
			blues++
		}
	}
	gs.SetBlues(blues)
	gs.SetReds(bd.blockTotal - blues)
	return gs
}
