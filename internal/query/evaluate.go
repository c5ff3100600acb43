package query

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shapekit/internal/registry"
	"github.com/vovakirdan/shapekit/internal/scene"
)

// Outcome is the result of one scene query. Err is set when the query
// could not be evaluated; Result is then empty.
type Outcome struct {
	Query  scene.Query
	Result registry.Result
	Err    error
}

// OK reports whether the query evaluated without error.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Evaluate runs every query of sc in order. A failing query is recorded in
// its outcome and evaluation continues. logger may be nil.
func Evaluate(sc *scene.Scene, logger *log.Logger) []Outcome {
	outcomes := make([]Outcome, 0, len(sc.Queries))
	for _, q := range sc.Queries {
		res, err := Run(sc, q)
		if logger != nil {
			if err != nil {
				logger.Warn("query failed", "query", q, "error", err)
			} else {
				logger.Debug("query evaluated", "query", q, "result", res.Text)
			}
		}
		outcomes = append(outcomes, Outcome{Query: q, Result: res, Err: err})
	}
	return outcomes
}

// Run evaluates a single query against sc.
func Run(sc *scene.Scene, q scene.Query) (registry.Result, error) {
	op, err := registry.Get(q.Op)
	if err != nil {
		return registry.Result{}, err
	}
	if err := op.Arity().Check(len(q.Args)); err != nil {
		return registry.Result{}, fmt.Errorf("%s: %w", q.Op, err)
	}
	shapes, err := sc.Resolve(q.Args)
	if err != nil {
		return registry.Result{}, fmt.Errorf("%s: %w", q.Op, err)
	}
	res, err := op.Eval(shapes, q.Params)
	if err != nil {
		return registry.Result{}, fmt.Errorf("%s: %w", q.Op, err)
	}
	return res, nil
}

// Failed counts the outcomes that carry an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.OK() {
			n++
		}
	}
	return n
}
