package blockdag

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/Qitmeer/phantom/common/hash"
)

//The abstract inferface is used to dag block
type IBlockData interface {
	// Get id of block
	GetID() string

	// Get the creator of block
	GetCreator() string

	// Get all parents set,the dag block has more than one parent
	GetParents() []string

	// Timestamp
	GetTimestamp() int64

	// Payload
	GetPayload() []byte
}

//The interface of block
type IBlock interface {
	// Return block ID
	GetID() uint

	// Return the hash of block. It will be a pointer.
	GetHash() *hash.Hash

	// Acquire the data of block
	GetData() IBlockData

	// Acquire the layer of block
	GetLayer() uint

	// Setting the order of block
	SetOrder(o uint)

	// Acquire the order of block
	GetOrder() uint

	// IsOrdered
	IsOrdered() bool

	// Get all parents set,the dag block has more than one parent
	GetParents() *IdSet

	// Testing whether it has parents
	HasParents() bool

	// Add child nodes to block
	AddChild(child IBlock)

	// Get all the children of block
	GetChildren() *IdSet

	// Detecting the presence of child nodes
	HasChildren() bool

	// Testing whether the block is blue
	IsBlue() bool

	// Acquire the blue score of block
	GetBlueScore() uint
}

// It is the element of a DAG. It is the most basic data unit.
type Block struct {
	id       uint
	hash     hash.Hash
	data     IBlockData
	parents  *IdSet
	children *IdSet

	blue      bool
	blueScore uint
	order     uint
	layer     uint
}

// Return block ID
func (b *Block) GetID() uint {
	return b.id
}

// Return the hash of block. It will be a pointer.
func (b *Block) GetHash() *hash.Hash {
	return &b.hash
}

// Acquire the data of block
func (b *Block) GetData() IBlockData {
	return b.data
}

// Get all parents set,the dag block has more than one parent
func (b *Block) GetParents() *IdSet {
	return b.parents
}

// Testing whether it has parents
func (b *Block) HasParents() bool {
	if b.parents == nil {
		return false
	}
	if b.parents.IsEmpty() {
		return false
	}
	return true
}

// Add child nodes to block
func (b *Block) AddChild(child IBlock) {
	if b.children == nil {
		b.children = NewIdSet()
	}
	b.children.Add(child.GetID())
}

// Get all the children of block
func (b *Block) GetChildren() *IdSet {
	return b.children
}

// Detecting the presence of child nodes
func (b *Block) HasChildren() bool {
	if b.children == nil {
		return false
	}
	if b.children.IsEmpty() {
		return false
	}
	return true
}

// Setting the layer of block
func (b *Block) SetLayer(layer uint) {
	b.layer = layer
}

// Acquire the layer of block
func (b *Block) GetLayer() uint {
	return b.layer
}

// Setting the order of block
func (b *Block) SetOrder(o uint) {
	b.order = o
}

// Acquire the order of block
func (b *Block) GetOrder() uint {
	return b.order
}

// IsOrdered
func (b *Block) IsOrdered() bool {
	return b.GetOrder() != MaxBlockOrder
}

// Testing whether the block is blue
func (b *Block) IsBlue() bool {
	return b.blue
}

// Acquire the blue score of block
func (b *Block) GetBlueScore() uint {
	return b.blueScore
}

// CalcBlockDataHash calculates the hash of a block from its content and the
// resolved parents. The parent order does not affect the result.
func CalcBlockDataHash(data IBlockData, parents []string) hash.Hash {
	ps := make([]string, len(parents))
	copy(ps, parents)
	sort.Strings(ps)

	var buf bytes.Buffer
	writeElement := func(bs []byte) {
		binary.Write(&buf, binary.LittleEndian, uint32(len(bs)))
		buf.Write(bs)
	}
	writeElement([]byte(data.GetID()))
	writeElement([]byte(data.GetCreator()))
	binary.Write(&buf, binary.LittleEndian, data.GetTimestamp())
	binary.Write(&buf, binary.LittleEndian, uint32(len(ps)))
	for _, p := range ps {
		writeElement([]byte(p))
	}
	writeElement(data.GetPayload())

	return hash.DoubleHashH(buf.Bytes())
}
