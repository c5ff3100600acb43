// Package registry provides a global registry of query operations.
// Operations register themselves in init() functions, so the CLI and the
// evaluator can discover them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/shapekit/internal/scene"
)

// ErrUnknownOp is returned by Get for names that were never registered.
var ErrUnknownOp = errors.New("unknown op")

// Op is a named operation over scene shapes. Ops must not modify the shapes
// they are given.
type Op interface {
	// Name is the identifier used in scene files (e.g. "collide").
	Name() string

	// Summary is a one-line description for listings.
	Summary() string

	// Arity is the number of shape arguments the op accepts.
	Arity() Arity

	// Eval runs the op. params holds the query's numeric parameters.
	Eval(shapes []*scene.Shape, params []float64) (Result, error)
}

// Arity bounds the number of shape arguments. Max < 0 means unbounded.
type Arity struct {
	Min, Max int
}

// Exactly returns an arity of exactly n arguments.
func Exactly(n int) Arity { return Arity{Min: n, Max: n} }

// AtLeast returns an arity of n or more arguments.
func AtLeast(n int) Arity { return Arity{Min: n, Max: -1} }

// Check reports whether n arguments satisfy the arity.
func (a Arity) Check(n int) error {
	if n < a.Min || (a.Max >= 0 && n > a.Max) {
		return fmt.Errorf("expected %s shapes, got %d", a, n)
	}
	return nil
}

func (a Arity) String() string {
	switch {
	case a.Max < 0:
		return fmt.Sprintf("%d+", a.Min)
	case a.Min == a.Max:
		return fmt.Sprintf("%d", a.Min)
	}
	return fmt.Sprintf("%d-%d", a.Min, a.Max)
}

// Result is the outcome of an op. Value holds the kernel value produced
// (a bool, float64, shape or point list) and Text its display form.
type Result struct {
	Value any
	Text  string
}

// OpInfo contains metadata about a registered op.
type OpInfo struct {
	Name    string
	Summary string
	Arity   Arity
}

var (
	ops = make(map[string]Op)
	mu  sync.RWMutex
)

// Register adds an op to the registry.
// Typically called from an init() function.
// Panics if an op with the same name is already registered.
func Register(op Op) {
	mu.Lock()
	defer mu.Unlock()

	name := op.Name()
	if _, exists := ops[name]; exists {
		panic(fmt.Sprintf("registry: op %q already registered", name))
	}
	ops[name] = op
}

// List returns information about all registered ops, sorted by name.
func List() []OpInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]OpInfo, 0, len(ops))
	for _, op := range ops {
		result = append(result, OpInfo{
			Name:    op.Name(),
			Summary: op.Summary(),
			Arity:   op.Arity(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the op registered under name.
func Get(name string) (Op, error) {
	mu.RLock()
	defer mu.RUnlock()

	op, ok := ops[name]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownOp, name)
	}
	return op, nil
}

// Exists checks if an op with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := ops[name]
	return ok
}
