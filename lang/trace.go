package lang

import (
	"iter"
	"log/slog"

	gojson "github.com/goccy/go-json"
)

// Trace is a recorded sequence of parallel memory accesses. Each step
// holds one optional address request per port; the port position
// selects the bank expected to serve the request. The JSON form is an
// array of steps with null marking idle ports:
//
//	[[0, null, 3],
//	 [1, 2, null]]
type Trace struct {
	steps [][]*uint64
}

// DecodeTrace decodes a JSON access trace.
func DecodeTrace(data []byte) (*Trace, error) {
	var steps [][]*uint64

	if err := gojson.Unmarshal(data, &steps); err != nil {
		return nil, ErrBadTrace.Wrap(err)
	}

	if len(steps) == 0 {
		return nil, ErrBadTrace.With(slog.String("reason", "empty trace"))
	}

	return &Trace{steps: steps}, nil
}

// Steps returns the number of steps in the trace.
func (t *Trace) Steps() int { return len(t.steps) }

// Ports returns the widest port count across all steps. Steps may be
// ragged; missing trailing ports are treated as idle.
func (t *Trace) Ports() int {
	ports := 0
	for _, step := range t.steps {
		if len(step) > ports {
			ports = len(step)
		}
	}

	return ports
}

// Access is one non-idle request within a trace.
type Access struct {
	Step int
	Port int
	Addr uint64
}

// Accesses returns an iterator over all non-idle requests in step
// order, then port order within a step.
func (t *Trace) Accesses() iter.Seq[Access] {
	return func(yield func(Access) bool) {
		for step, row := range t.steps {
			for port, req := range row {
				if req == nil {
					continue
				}

				if !yield(Access{Step: step, Port: port, Addr: *req}) {
					return
				}
			}
		}
	}
}
