package proofstep

import (
	"fmt"

	"github.com/kpitt/sudoku-prover/internal/proof"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// dagNode adapts a *proof.Deduction to gonum's graph.Node interface.
type dagNode struct {
	id  int64
	ded *proof.Deduction
}

func (n dagNode) ID() int64 { return n.id }

// buildGraph materializes the chosen proof (one picked Consequence per
// Deduction in sel.choice) as a directed graph with an edge from each
// premise Deduction to the Deduction it supports.
func buildGraph(sel *selection, allowed map[*proof.Deduction][]proof.Consequence) (*simple.DirectedGraph, map[*proof.Deduction]int64) {
	g := simple.NewDirectedGraph()
	ids := make(map[*proof.Deduction]int64)
	var nextID int64

	nodeFor := func(d *proof.Deduction) dagNode {
		id, ok := ids[d]
		if !ok {
			id = nextID
			nextID++
			ids[d] = id
			g.AddNode(dagNode{id: id, ded: d})
		}
		return dagNode{id: id, ded: d}
	}

	for d, idx := range sel.choice {
		dn := nodeFor(d)
		chosen := allowed[d][idx]
		for _, premise := range chosen.Premises {
			dp, ok := premise.(proof.DeductionPremise)
			if !ok {
				continue
			}
			pn := nodeFor(dp.Ded)
			if !g.HasEdgeFromTo(pn.ID(), dn.ID()) {
				g.SetEdge(simple.Edge{F: pn, T: dn})
			}
		}
	}
	return g, ids
}

// topoOrder returns the Deductions in sel.choice ordered so that every
// Deduction appears after every other Deduction it cites as a premise —
// the post-order numbering a rendered proof lists lemmas in. It returns an
// error if the chosen proof is not actually acyclic, which would mean the
// Step A cycle-breaking pass above missed something.
func topoOrder(sel *selection, allowed map[*proof.Deduction][]proof.Consequence) ([]*proof.Deduction, error) {
	g, ids := buildGraph(sel, allowed)
	sorted, err := topo.Sort(g)
	if err != nil {
		return nil, fmt.Errorf("proofstep: chosen proof is not acyclic: %w", err)
	}
	idToDed := make(map[int64]*proof.Deduction, len(ids))
	for d, id := range ids {
		idToDed[id] = d
	}
	order := make([]*proof.Deduction, 0, len(sorted))
	for _, n := range sorted {
		order = append(order, idToDed[n.ID()])
	}
	return order, nil
}
