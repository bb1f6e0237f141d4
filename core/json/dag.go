// Copyright (c) 2017-2018 The qitmeer developers

package json

// DAGNode models one block of the dag for the snapshot result.
type DAGNode struct {
	Id        string   `json:"id"`
	Creator   string   `json:"creator"`
	Timestamp int64    `json:"timestamp"`
	Hash      string   `json:"hash"`
	Parents   []string `json:"parents"`
	Blue      bool     `json:"blue"`
	BlueScore uint     `json:"blue_score"`
	Order     uint     `json:"order"`
	Layer     uint     `json:"layer"`
}

// DAGEdge models one parent to child connection of the dag.
type DAGEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DAGMetrics models the color counters of the dag.
type DAGMetrics struct {
	Total uint `json:"total"`
	Blues uint `json:"blues"`
	Reds  uint `json:"reds"`
	Tips  uint `json:"tips"`
}

// DAGStructure models the data from the whole dag snapshot. The nodes are
// sorted by their sequential id and the edges by their source, so the same
// dag always produces the same document.
type DAGStructure struct {
	Nodes   []DAGNode  `json:"nodes"`
	Edges   []DAGEdge  `json:"edges"`
	Metrics DAGMetrics `json:"metrics"`
}
