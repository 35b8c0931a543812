// Package dfsm provides a dense, table-driven finite state machine runtime.
//
// A Spec is validated into an immutable Model. Create derives two dense tables from it: a
// State x State dispatch table holding resident and transition handlers, and, when the model
// declares inputs, a State x Input routing table. Each Run cycle dispatches one cell, lets the
// transition handler advance or veto the move, and settles the machine by calling the resident
// handler of the state it ends up in.
package dfsm

import (
	"log/slog"

	"github.com/enetx/g"
)

// Option configures a Machine.
type Option func(*config)

type config struct {
	alloc    Allocator
	logger   *slog.Logger
	onChange func(from, to StateID)
}

// WithAllocator routes table acquisition and release through alloc. A nil alloc keeps the default.
func WithAllocator(alloc Allocator) Option {
	return func(c *config) {
		if alloc != nil {
			c.alloc = alloc
		}
	}
}

// WithLogger sets the logger for the machine. A nil logger keeps slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOnChange sets a callback invoked after every committed move.
func WithOnChange(fn func(from, to StateID)) Option {
	return func(c *config) {
		c.onChange = fn
	}
}

// Create allocates a machine for model in its initial state. The instance is acquired first, then
// the dispatch table, then the routing table; on any failure everything acquired so far is released.
func Create[P any](model *Model, h *Handlers[P], opts ...Option) (*Machine[P], error) {
	cfg := config{alloc: heap{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if h == nil {
		h = NewHandlers[P](model)
	}

	if h.model != model {
		return nil, configErr("handlers are bound to a different model", nil)
	}

	if err := h.Err(); err != nil {
		return nil, err
	}

	if err := cfg.alloc.Acquire(TableInstance, -1, 1); err != nil {
		return nil, &ErrAllocation{Table: TableInstance, Row: -1, Err: err}
	}

	m := &Machine[P]{
		model:    model,
		input:    NoInput,
		check:    Continue,
		last:     Continue,
		cur:      model.Initial(),
		cmd:      model.Initial(),
		history:  g.Slice[StateID]{model.Initial()},
		alloc:    cfg.alloc,
		logger:   cfg.logger,
		onChange: cfg.onChange,
	}

	dispatch, err := BuildDispatch(model, h, cfg.alloc)
	if err != nil {
		Free(m)
		return nil, err
	}

	m.dispatch = dispatch

	routes, err := BuildRouting(model, cfg.alloc)
	if err != nil {
		Free(m)
		return nil, err
	}

	m.routes = routes

	return m, nil
}

// Free releases the routing rows, the routing table, the dispatch rows, the dispatch table and
// finally the instance. It accepts nil and partially built machines, and is a no-op the second time.
// Inside a run cycle it does nothing; free the machine after Run returns.
func Free[P any](m *Machine[P]) {
	if m == nil || m.alloc == nil {
		return
	}

	if m.running {
		m.logger.Error("dfsm: free during run cycle ignored", "state", m.model.StateName(m.cur))
		return
	}

	releaseRouting(m.routes, m.alloc)
	m.routes = nil

	releaseDispatch(m.dispatch, m.alloc)
	m.dispatch = nil

	m.alloc.Release(TableInstance, -1, 1)
	m.alloc = nil
}

// Model returns the model the machine was created from.
func (m *Machine[P]) Model() *Model { return m.model }

// Current returns the settled state.
func (m *Machine[P]) Current() StateID { return m.cur }

// Requested returns the target state of the cycle in progress; it equals Current when idle.
func (m *Machine[P]) Requested() StateID { return m.cmd }

// Check returns the live outcome flag. Outside a run cycle it is always Continue.
func (m *Machine[P]) Check() Check { return m.check }

// Input returns the input of the cycle in progress, or NoInput.
func (m *Machine[P]) Input() InputID { return m.input }

// Last returns the outcome of the most recent run cycle.
func (m *Machine[P]) Last() Check { return m.last }

// Freed reports whether the machine's tables have been released.
func (m *Machine[P]) Freed() bool { return m.alloc == nil }

// Advance accepts the requested move. Call it from a transition handler.
func (m *Machine[P]) Advance() { m.check = Advance }

// Retreat vetoes the requested move. Call it from a transition handler.
func (m *Machine[P]) Retreat() { m.check = Retreat }

// Dispatch returns the machine's dispatch table. The table stays owned by the machine.
func (m *Machine[P]) Dispatch() DispatchTable[P] { return m.dispatch }

// Routing returns the machine's routing table, nil when the model has no inputs.
func (m *Machine[P]) Routing() RoutingTable { return m.routes }

// Request sets the target state of the next run cycle.
func (m *Machine[P]) Request(to StateID) error {
	if m.running {
		return ErrReentrant
	}

	if !m.model.validState(to) {
		return &ErrUnknownState{State: g.Format("#{}", int(to))}
	}

	m.cmd = to

	return nil
}

// RequestName is Request by state name.
func (m *Machine[P]) RequestName(name g.String) error {
	to, ok := m.model.State(name)
	if !ok {
		return &ErrUnknownState{State: name}
	}

	return m.Request(to)
}

// Step requests to and runs one cycle.
func (m *Machine[P]) Step(opts *P, to StateID) (Check, error) {
	if err := m.Request(to); err != nil {
		return m.last, err
	}

	return m.Run(opts), nil
}

// Run executes one cycle toward the requested state and returns its outcome: Advance when the
// machine moved, Retreat when the move was forbidden or vetoed, Continue when idle.
func (m *Machine[P]) Run(opts *P) Check { return m.run(opts, NoInput) }

// RunInput executes one cycle driven by input in. Inputs outside the declared range are ignored.
func (m *Machine[P]) RunInput(opts *P, in InputID) Check { return m.run(opts, in) }

// RunName is RunInput by input name. Unknown names run an idle cycle.
func (m *Machine[P]) RunName(opts *P, name g.String) Check {
	in, ok := m.model.Input(name)
	if !ok {
		in = NoInput
	}

	return m.run(opts, in)
}

func (m *Machine[P]) run(opts *P, in InputID) Check {
	if m.running {
		m.logger.Error("dfsm: reentrant run ignored", "state", m.model.StateName(m.cur))
		return m.last
	}

	if m.dispatch == nil {
		m.logger.Warn("dfsm: run on freed machine")
		return Continue
	}

	m.running = true
	defer func() { m.running = false }()

	outcome := Continue

	if m.routes != nil && m.model.validInput(in) {
		m.input = in
		m.cmd = m.routes[m.cur][in]

		if m.cmd == m.cur {
			m.check = BadInput
			outcome = BadInput
		}
	}

	if fn := m.dispatch[m.cur][m.cmd]; fn == nil {
		m.check = Retreat
	} else {
		fn(m, opts)
	}

	if m.cmd != m.cur {
		if m.check == Advance {
			m.dispatch[m.cmd][m.cmd](m, opts)

			from := m.cur
			m.cur = m.cmd
			m.history.Push(m.cur)
			outcome = Advance

			m.logger.Debug("dfsm: advance",
				"from", m.model.StateName(from),
				"to", m.model.StateName(m.cur),
				"input", m.model.InputName(m.input))

			if m.onChange != nil {
				m.onChange(from, m.cur)
			}
		} else {
			m.check = Retreat
			m.dispatch[m.cur][m.cur](m, opts)

			m.logger.Debug("dfsm: retreat",
				"from", m.model.StateName(m.cur),
				"to", m.model.StateName(m.cmd))

			m.cmd = m.cur
			outcome = Retreat
		}
	} else if outcome == BadInput {
		m.logger.Debug("dfsm: bad input",
			"state", m.model.StateName(m.cur),
			"input", m.model.InputName(m.input))
	}

	m.input = NoInput
	m.check = Continue
	m.last = outcome

	return outcome
}

// History returns a copy of the settled states, starting with the initial one.
func (m *Machine[P]) History() g.Slice[StateID] { return m.history.Clone() }

// Reset returns the machine to its initial state and clears its history. No handler runs.
// Inside a run cycle it does nothing.
func (m *Machine[P]) Reset() {
	if m.running {
		m.logger.Error("dfsm: reset during run cycle ignored", "state", m.model.StateName(m.cur))
		return
	}

	m.cur = m.model.Initial()
	m.cmd = m.cur
	m.input = NoInput
	m.check = Continue
	m.last = Continue
	m.history = g.Slice[StateID]{m.cur}
}

// SetState forces the machine into s without running any handler.
func (m *Machine[P]) SetState(s StateID) error {
	if m.running {
		return ErrReentrant
	}

	if !m.model.validState(s) {
		return &ErrUnknownState{State: g.Format("#{}", int(s))}
	}

	m.cur = s
	m.cmd = s
	m.history.Push(s)

	return nil
}
