// SPDX-License-Identifier: MIT

package bfs

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/graph"
	"github.com/katalvlaran/lvmaze/rng"
)

// candidate is a start neighbour with its edge weight.
type candidate struct {
	node   int
	weight float64
}

// Multistart runs the randomized restart BFS described in the package doc.
func Multistart(g *graph.Matrix, start, goal int, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	if start == goal {
		return &Result{Found: true, Path: []int{start}, Selected: -1}, nil
	}
	if o.Source == nil {
		o.Source = rng.NewEntropy()
	}

	var last *Result
	for exec := 1; exec <= o.MaxExecutions; exec++ {
		res, ex := attempt(g, start, goal, o.Source)
		ex.Index = exec
		res.Executions = exec
		o.OnExecution(ex)
		o.Logger.WithFields(logrus.Fields{
			"execution": exec,
			"best":      ex.Best,
			"worst":     ex.Worst,
			"selected":  ex.Selected,
			"found":     ex.Found,
		}).Debug("bfs: multistart execution")
		if res.Found {
			return res, nil
		}
		last = res
	}
	o.Logger.WithField("executions", o.MaxExecutions).Info("bfs: no path after all executions")
	return last, nil
}

// attempt performs one execution: inspect start, pick best or worst child,
// then BFS from that child.
func attempt(g *graph.Matrix, start, goal int, src rng.Source) (*Result, Execution) {
	ex := Execution{Best: -1, Worst: -1, Selected: -1}
	w := newWalker(g, goal)

	// 1) Inspect start and generate every neighbour.
	w.generate(start, -1)
	w.snapshot()
	w.inspect(start)

	var cands []candidate
	nbs, _ := g.Neighbors(start)
	for _, v := range nbs {
		if w.visited[v] {
			continue
		}
		weight, _ := g.Weight(start, v)
		cands = append(cands, candidate{node: v, weight: weight})
		w.generate(v, start)
	}
	w.snapshot()

	// 2) Rank neighbours by edge weight and flip for best or worst.
	//    Ties keep the adjacency order.
	if len(cands) > 0 {
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].weight < cands[j].weight })
		ex.Best = cands[0].node
		ex.Worst = cands[len(cands)-1].node
		if rng.Coin(src) {
			ex.Selected = ex.Best
		} else {
			ex.Selected = ex.Worst
		}
		// 3) Plain BFS from the selected child.
		w.drain([]int{ex.Selected})
	}

	res := w.result()
	res.Selected = ex.Selected
	ex.Found = res.Found
	return res, ex
}
