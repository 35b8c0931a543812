package dfsm

// DispatchTable is the dense State x State table. Cell [s][d] holds the transition handler for
// s -> d, or nil when the move is illegal. The diagonal holds resident handlers and is never nil.
type DispatchTable[P any] [][]Handler[P]

// RoutingTable is the dense State x Input table of destinations. Unrouted cells hold their own row.
type RoutingTable [][]StateID

// Table names passed to an Allocator.
const (
	TableInstance = "instance"
	TableDispatch = "dispatch"
	TableRouting  = "routing"
)

// Allocator accounts for the memory a machine acquires. Row is -1 for a table's row index (or the
// instance itself) and the row number otherwise. Acquire may refuse; Release must not fail.
type Allocator interface {
	Acquire(table string, row, cells int) error
	Release(table string, row, cells int)
}

type heap struct{}

func (heap) Acquire(string, int, int) error { return nil }
func (heap) Release(string, int, int)       {}

// BuildDispatch builds the dispatch table of model with the functions bound in h.
// On failure every row acquired so far is released before the error is returned.
func BuildDispatch[P any](model *Model, h *Handlers[P], alloc Allocator) (DispatchTable[P], error) {
	if alloc == nil {
		alloc = heap{}
	}

	if h == nil {
		h = NewHandlers[P](model)
	}

	n := model.NumStates()

	if err := alloc.Acquire(TableDispatch, -1, n); err != nil {
		return nil, &ErrAllocation{Table: TableDispatch, Row: -1, Err: err}
	}

	table := make(DispatchTable[P], n)

	for s := range n {
		if err := alloc.Acquire(TableDispatch, s, n); err != nil {
			releaseDispatch(table, alloc)
			return nil, &ErrAllocation{Table: TableDispatch, Row: s, Err: err}
		}

		table[s] = make([]Handler[P], n)

		for d := range n {
			src, dst := StateID(s), StateID(d)

			var fn Handler[P]

			switch {
			case src == dst:
				fn = h.residentFor(src)
			case model.Legal(src, dst):
				fn = h.transitionFor(src, dst)
			}

			if err := table.set(src, dst, fn); err != nil {
				releaseDispatch(table, alloc)
				return nil, err
			}
		}
	}

	return table, nil
}

// BuildRouting builds the routing table of model. A model without inputs has no routing table.
func BuildRouting(model *Model, alloc Allocator) (RoutingTable, error) {
	if !model.Routed() {
		return nil, nil
	}

	if alloc == nil {
		alloc = heap{}
	}

	n, k := model.NumStates(), model.NumInputs()

	if err := alloc.Acquire(TableRouting, -1, n); err != nil {
		return nil, &ErrAllocation{Table: TableRouting, Row: -1, Err: err}
	}

	table := make(RoutingTable, n)

	for s := range n {
		if err := alloc.Acquire(TableRouting, s, k); err != nil {
			releaseRouting(table, alloc)
			return nil, &ErrAllocation{Table: TableRouting, Row: s, Err: err}
		}

		table[s] = make([]StateID, k)

		for i := range k {
			to := model.Route(StateID(s), InputID(i))
			if !model.validState(to) {
				releaseRouting(table, alloc)
				return nil, &ErrInternal{Op: "BuildRouting", Row: s, Col: int(to)}
			}

			table[s][i] = to
		}
	}

	return table, nil
}

// Legal reports whether the cell [s][d] holds a handler.
func (t DispatchTable[P]) Legal(s, d StateID) bool {
	if !t.valid(s, d) {
		return false
	}

	return t[s][d] != nil
}

func (t DispatchTable[P]) valid(s, d StateID) bool {
	return s >= 0 && int(s) < len(t) && d >= 0 && int(d) < len(t[s])
}

func (t DispatchTable[P]) set(s, d StateID, fn Handler[P]) error {
	if !t.valid(s, d) {
		return &ErrInternal{Op: "BuildDispatch", Row: int(s), Col: int(d)}
	}

	t[s][d] = fn

	return nil
}

// Lookup returns the destination of input in at state s, or s when the pair is out of range.
func (t RoutingTable) Lookup(s StateID, in InputID) StateID {
	if s < 0 || int(s) >= len(t) || in < 0 || int(in) >= len(t[s]) {
		return s
	}

	return t[s][in]
}

// Equal reports whether both tables hold the same destinations.
func (t RoutingTable) Equal(o RoutingTable) bool {
	if len(t) != len(o) {
		return false
	}

	for s := range t {
		if len(t[s]) != len(o[s]) {
			return false
		}

		for i := range t[s] {
			if t[s][i] != o[s][i] {
				return false
			}
		}
	}

	return true
}

func releaseDispatch[P any](table DispatchTable[P], alloc Allocator) {
	if table == nil {
		return
	}

	n := len(table)

	for s := range table {
		if table[s] != nil {
			alloc.Release(TableDispatch, s, n)
			table[s] = nil
		}
	}

	alloc.Release(TableDispatch, -1, n)
}

func releaseRouting(table RoutingTable, alloc Allocator) {
	if table == nil {
		return
	}

	for s := range table {
		if table[s] != nil {
			alloc.Release(TableRouting, s, len(table[s]))
			table[s] = nil
		}
	}

	alloc.Release(TableRouting, -1, len(table))
}
