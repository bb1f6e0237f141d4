package blockdag

import (
	"github.com/Qitmeer/phantom/core/json"
)

// Export the whole dag as one serializable document. The nodes are listed
// by their sequential id and the edges are connected from parent to child,
// so two dags built from the same insertions export the same document.
func (bd *BlockDAG) GetDAGStructure() *json.DAGStructure {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	ds := &json.DAGStructure{
		Nodes: []json.DAGNode{},
		Edges: []json.DAGEdge{},
	}
	for id := uint(0); id < bd.blockTotal; id++ {
		ib := bd.getBlockById(id)
		if ib == nil {
			continue
		}
		node := json.DAGNode{
			Id:        ib.GetData().GetID(),
			Creator:   ib.GetData().GetCreator(),
			Timestamp: ib.GetData().GetTimestamp(),
			Hash:      ib.GetHash().String(),
			Parents:   []string{},
			Blue:      ib.IsBlue(),
			BlueScore: ib.GetBlueScore(),
			Order:     ib.GetOrder(),
			Layer:     ib.GetLayer(),
		}
		if ib.HasParents() {
			for _, pid := range ib.GetParents().SortList(false) {
				node.Parents = append(node.Parents, bd.getBlockById(pid).GetData().GetID())
			}
		}
		ds.Nodes = append(ds.Nodes, node)

		if ib.HasChildren() {
			for _, cid := range ib.GetChildren().SortList(false) {
				ds.Edges = append(ds.Edges, json.DAGEdge{
					From: node.Id,
					To:   bd.getBlockById(cid).GetData().GetID(),
				})
			}
		}

		if ib.IsBlue() {
			ds.Metrics.Blues++
		} else {
			ds.Metrics.Reds++
		}
	}
	ds.Metrics.Total = bd.blockTotal
	ds.Metrics.Tips = uint(bd.tips.Size())
	return ds
}
