package dfsm_test

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	. "github.com/enetx/dfsm"
	"github.com/enetx/g"
)

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func assertTrue(t *testing.T, cond bool) {
	t.Helper()
	if !cond {
		t.Fatalf("expected true, got false")
	}
}

func assertFalse(t *testing.T, cond bool) {
	t.Helper()
	if cond {
		t.Fatalf("expected false, got true")
	}
}

// trace records what every handler observed.
type trace struct {
	calls []string
}

func (tr *trace) add(s string) { tr.calls = append(tr.calls, s) }

func (tr *trace) String() string { return strings.Join(tr.calls, ",") }

func resident(name string) Handler[trace] {
	return func(m *Machine[trace], tr *trace) {
		tr.add(name + ":" + m.Check().String())
	}
}

func abcModel(t *testing.T) *Model {
	t.Helper()

	model, err := Build(Spec{
		States: g.Slice[g.String]{"A", "B", "C"},
		Mask: g.Map[g.String, g.Slice[g.String]]{
			"A": {"B"},
			"B": {"A"},
		},
	})
	assertNoError(t, err)

	return model
}

func abcMachine(t *testing.T, opts ...Option) *Machine[trace] {
	t.Helper()

	model := abcModel(t)
	h := NewHandlers[trace](model).
		Resident("A", resident("A")).
		Resident("B", resident("B")).
		Resident("C", resident("C")).
		Transition("A", "B", Accept[trace]).
		Transition("B", "A", Accept[trace])

	m, err := Create(model, h, opts...)
	assertNoError(t, err)
	t.Cleanup(func() { Free(m) })

	return m
}

func routedModel(t *testing.T) *Model {
	t.Helper()

	model, err := Build(Spec{
		Type:   "Motor",
		States: g.Slice[g.String]{"IDLE", "RUN"},
		Inputs: g.Slice[g.String]{"START", "STOP"},
		Routes: g.Map[g.String, g.Map[g.String, g.String]]{
			"IDLE": {"START": "RUN"},
			"RUN":  {"STOP": "IDLE"},
		},
	})
	assertNoError(t, err)

	return model
}

func TestBuild_Defaults(t *testing.T) {
	model := abcModel(t)

	assertEqual(t, model.Type(), g.String("Fsm"))
	assertEqual(t, model.Options().Type, g.String("FsmOpts"))
	assertEqual(t, model.Options().Name, g.String("fopts"))
	assertEqual(t, model.Initial(), StateID(0))
	assertEqual(t, model.NumStates(), 3)
	assertFalse(t, model.Routed())

	custom, err := Build(Spec{
		Type:    "Door",
		States:  g.Slice[g.String]{"closed"},
		Options: Options{Type: "DoorOpts", Name: "door"},
	})
	assertNoError(t, err)
	assertEqual(t, custom.Type(), g.String("Door"))
	assertEqual(t, custom.Options().Name, g.String("door"))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name  string
		spec  Spec
		check func(t *testing.T, err error)
	}{
		{
			name: "empty states",
			spec: Spec{},
			check: func(t *testing.T, err error) {
				assertTrue(t, errors.Is(err, ErrEmptyStates))
			},
		},
		{
			name: "duplicate state",
			spec: Spec{States: g.Slice[g.String]{"a", "b", "a"}},
			check: func(t *testing.T, err error) {
				var dup *ErrDuplicate
				assertTrue(t, errors.As(err, &dup))
				assertEqual(t, dup.Kind, "state")
				assertEqual(t, dup.Name, g.String("a"))
			},
		},
		{
			name: "duplicate input",
			spec: Spec{States: g.Slice[g.String]{"a"}, Inputs: g.Slice[g.String]{"x", "x"}},
			check: func(t *testing.T, err error) {
				var dup *ErrDuplicate
				assertTrue(t, errors.As(err, &dup))
				assertEqual(t, dup.Kind, "input")
			},
		},
		{
			name: "reserved input",
			spec: Spec{States: g.Slice[g.String]{"a"}, Inputs: g.Slice[g.String]{"NONE"}},
			check: func(t *testing.T, err error) {
				assertTrue(t, errors.Is(err, ErrReservedInput))
			},
		},
		{
			name: "empty state name",
			spec: Spec{States: g.Slice[g.String]{"a", ""}},
			check: func(t *testing.T, err error) {
				assertTrue(t, errors.Is(err, ErrEmptyName))
			},
		},
		{
			name: "empty input name",
			spec: Spec{States: g.Slice[g.String]{"a"}, Inputs: g.Slice[g.String]{""}},
			check: func(t *testing.T, err error) {
				assertTrue(t, errors.Is(err, ErrEmptyName))
			},
		},
		{
			name: "unknown mask source",
			spec: Spec{
				States: g.Slice[g.String]{"a", "b"},
				Mask:   g.Map[g.String, g.Slice[g.String]]{"z": {"a"}},
			},
			check: func(t *testing.T, err error) {
				var unknown *ErrUnknownState
				assertTrue(t, errors.As(err, &unknown))
				assertEqual(t, unknown.State, g.String("z"))
			},
		},
		{
			name: "unknown mask destination",
			spec: Spec{
				States: g.Slice[g.String]{"a", "b"},
				Mask:   g.Map[g.String, g.Slice[g.String]]{"a": {"q"}},
			},
			check: func(t *testing.T, err error) {
				var unknown *ErrUnknownState
				assertTrue(t, errors.As(err, &unknown))
				assertEqual(t, unknown.State, g.String("q"))
			},
		},
		{
			name: "unknown route input",
			spec: Spec{
				States: g.Slice[g.String]{"a", "b"},
				Inputs: g.Slice[g.String]{"go"},
				Routes: g.Map[g.String, g.Map[g.String, g.String]]{"a": {"jump": "b"}},
			},
			check: func(t *testing.T, err error) {
				var unknown *ErrUnknownInput
				assertTrue(t, errors.As(err, &unknown))
				assertEqual(t, unknown.Input, g.String("jump"))
			},
		},
		{
			name: "routes without inputs",
			spec: Spec{
				States: g.Slice[g.String]{"a", "b"},
				Routes: g.Map[g.String, g.Map[g.String, g.String]]{"a": {"go": "b"}},
			},
			check: func(t *testing.T, err error) {
				var unknown *ErrUnknownInput
				assertTrue(t, errors.As(err, &unknown))
			},
		},
		{
			name: "unknown route destination",
			spec: Spec{
				States: g.Slice[g.String]{"a", "b"},
				Inputs: g.Slice[g.String]{"go"},
				Routes: g.Map[g.String, g.Map[g.String, g.String]]{"a": {"go": "c"}},
			},
			check: func(t *testing.T, err error) {
				var unknown *ErrUnknownState
				assertTrue(t, errors.As(err, &unknown))
				assertEqual(t, unknown.State, g.String("c"))
			},
		},
		{
			name: "route against mask",
			spec: Spec{
				States: g.Slice[g.String]{"a", "b", "c"},
				Inputs: g.Slice[g.String]{"go"},
				Mask:   g.Map[g.String, g.Slice[g.String]]{"a": {"b"}},
				Routes: g.Map[g.String, g.Map[g.String, g.String]]{"a": {"go": "c"}},
			},
			check: func(t *testing.T, err error) {
				var illegal *ErrIllegalRoute
				assertTrue(t, errors.As(err, &illegal))
				assertEqual(t, illegal.To, g.String("c"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := Build(tt.spec)
			assertError(t, err)
			assertTrue(t, model == nil)

			var cfg *ErrConfig
			assertTrue(t, errors.As(err, &cfg))
			tt.check(t, err)
		})
	}
}

func TestBuild_DoesNotAliasSpec(t *testing.T) {
	states := g.Slice[g.String]{"a", "b"}
	model, err := Build(Spec{States: states})
	assertNoError(t, err)

	states[0] = "changed"
	assertEqual(t, model.StateName(0), g.String("a"))
}

func TestTables_Legality(t *testing.T) {
	m := abcMachine(t)
	model := m.Model()
	table := m.Dispatch()

	n := StateID(model.NumStates())
	for s := range n {
		assertTrue(t, table[s][s] != nil)

		for d := range n {
			assertEqual(t, table.Legal(s, d), model.Legal(s, d))
		}
	}

	a, _ := model.State("A")
	b, _ := model.State("B")
	c, _ := model.State("C")

	assertTrue(t, table[a][c] == nil)
	assertTrue(t, table[b][c] == nil)
	assertTrue(t, table[c][a] != nil)
	assertTrue(t, table[c][b] != nil)
	assertTrue(t, m.Routing() == nil)
}

func TestTables_Idempotent(t *testing.T) {
	model := routedModel(t)

	first, err := BuildRouting(model, nil)
	assertNoError(t, err)
	second, err := BuildRouting(model, nil)
	assertNoError(t, err)
	assertTrue(t, first.Equal(second))

	d1, err := BuildDispatch[trace](model, nil, nil)
	assertNoError(t, err)
	d2, err := BuildDispatch[trace](model, nil, nil)
	assertNoError(t, err)

	for s := range d1 {
		for d := range d1[s] {
			assertEqual(t, d1[s][d] == nil, d2[s][d] == nil)
		}
	}
}

func TestTables_RoutingDefaultsToSelf(t *testing.T) {
	model := routedModel(t)
	routes, err := BuildRouting(model, nil)
	assertNoError(t, err)

	idle, _ := model.State("IDLE")
	run, _ := model.State("RUN")
	start, _ := model.Input("START")
	stop, _ := model.Input("STOP")

	assertEqual(t, routes[idle][start], run)
	assertEqual(t, routes[idle][stop], idle)
	assertEqual(t, routes[run][stop], idle)
	assertEqual(t, routes[run][start], run)
	assertEqual(t, routes.Lookup(idle, NoInput), idle)
}

func TestRun_AdvanceThenForbidden(t *testing.T) {
	m := abcMachine(t)
	tr := &trace{}

	b, _ := m.Model().State("B")
	c, _ := m.Model().State("C")

	outcome, err := m.Step(tr, b)
	assertNoError(t, err)
	assertEqual(t, outcome, Advance)
	assertEqual(t, m.Current(), b)
	assertEqual(t, m.Requested(), b)
	assertEqual(t, m.Check(), Continue)
	assertEqual(t, tr.String(), "B:advance")

	outcome, err = m.Step(tr, c)
	assertNoError(t, err)
	assertEqual(t, outcome, Retreat)
	assertEqual(t, m.Last(), Retreat)
	assertEqual(t, m.Current(), b)
	assertEqual(t, m.Requested(), b)
	assertEqual(t, m.Check(), Continue)
	assertEqual(t, tr.String(), "B:advance,B:retreat")
}

func TestRun_VetoMatchesForbidden(t *testing.T) {
	model, err := Build(Spec{States: g.Slice[g.String]{"a", "b"}})
	assertNoError(t, err)

	var seen []Check
	h := NewHandlers[trace](model).
		Resident("a", func(m *Machine[trace], _ *trace) { seen = append(seen, m.Check()) }).
		Transition("a", "b", func(m *Machine[trace], _ *trace) {
			// Leaves the flag untouched; an undecided transition is a veto.
		})

	m, err := Create(model, h)
	assertNoError(t, err)
	defer Free(m)

	outcome, err := m.Step(&trace{}, 1)
	assertNoError(t, err)
	assertEqual(t, outcome, Retreat)
	assertEqual(t, m.Current(), StateID(0))
	assertEqual(t, len(seen), 1)
	assertEqual(t, seen[0], Retreat)
}

func TestRun_UnboundTransitionVetoes(t *testing.T) {
	model, err := Build(Spec{States: g.Slice[g.String]{"a", "b"}})
	assertNoError(t, err)

	m, err := Create[trace](model, nil)
	assertNoError(t, err)
	defer Free(m)

	outcome, err := m.Step(&trace{}, 1)
	assertNoError(t, err)
	assertEqual(t, outcome, Retreat)
	assertEqual(t, m.Current(), StateID(0))
}

func TestRun_IdleIsIdempotent(t *testing.T) {
	m := abcMachine(t)
	tr := &trace{}

	for range 3 {
		assertEqual(t, m.Run(tr), Continue)
		assertEqual(t, m.Current(), StateID(0))
		assertEqual(t, m.Requested(), StateID(0))
		assertEqual(t, m.Check(), Continue)
	}

	assertEqual(t, tr.String(), "A:continue,A:continue,A:continue")
	assertEqual(t, len(m.History()), 1)
}

func TestRun_ResidentSeesFreshRetreatOnce(t *testing.T) {
	m := abcMachine(t)
	tr := &trace{}

	c, _ := m.Model().State("C")

	_, err := m.Step(tr, c)
	assertNoError(t, err)
	m.Run(tr)

	assertEqual(t, tr.String(), "A:retreat,A:continue")
}

func TestRun_Routed(t *testing.T) {
	model := routedModel(t)
	h := NewHandlers[trace](model).
		Resident("IDLE", resident("IDLE")).
		Resident("RUN", resident("RUN")).
		TransitionAll(Accept[trace])

	m, err := Create(model, h)
	assertNoError(t, err)
	defer Free(m)

	tr := &trace{}
	idle, _ := model.State("IDLE")
	run, _ := model.State("RUN")
	start, _ := model.Input("START")
	stop, _ := model.Input("STOP")

	assertEqual(t, m.RunInput(tr, stop), BadInput)
	assertEqual(t, m.Current(), idle)
	assertEqual(t, m.Check(), Continue)
	assertEqual(t, m.Input(), NoInput)

	assertEqual(t, m.RunInput(tr, start), Advance)
	assertEqual(t, m.Current(), run)

	assertEqual(t, m.RunName(tr, "START"), BadInput)
	assertEqual(t, m.Current(), run)

	assertEqual(t, m.RunName(tr, "STOP"), Advance)
	assertEqual(t, m.Current(), idle)

	assertEqual(t, tr.String(), "IDLE:badinput,RUN:advance,RUN:badinput,IDLE:advance")
}

func TestRun_RoutedSeesInput(t *testing.T) {
	model := routedModel(t)

	var seen InputID = -2
	h := NewHandlers[trace](model).
		Transition("IDLE", "RUN", func(m *Machine[trace], _ *trace) {
			seen = m.Input()
			m.Advance()
		})

	m, err := Create(model, h)
	assertNoError(t, err)
	defer Free(m)

	start, _ := model.Input("START")
	assertEqual(t, m.RunInput(nil, start), Advance)
	assertEqual(t, seen, start)
}

func TestRun_OutOfRangeInputIsIgnored(t *testing.T) {
	model := routedModel(t)
	m, err := Create[trace](model, nil)
	assertNoError(t, err)
	defer Free(m)

	assertEqual(t, m.RunInput(&trace{}, 42), Continue)
	assertEqual(t, m.RunName(&trace{}, "JUMP"), Continue)
	assertEqual(t, m.Current(), StateID(0))
}

func TestRun_RequestInsideCycle(t *testing.T) {
	model := abcModel(t)

	var reqErr error
	h := NewHandlers[trace](model).
		Resident("A", func(m *Machine[trace], _ *trace) { reqErr = m.Request(1) })

	m, err := Create(model, h)
	assertNoError(t, err)
	defer Free(m)

	m.Run(nil)
	assertTrue(t, errors.Is(reqErr, ErrReentrant))
	assertEqual(t, m.Requested(), StateID(0))
}

func TestRun_FreeInsideCycleIsIgnored(t *testing.T) {
	model := abcModel(t)
	alloc := &countingAlloc{}

	h := NewHandlers[trace](model).
		Transition("A", "B", func(m *Machine[trace], _ *trace) {
			Free(m)
			m.Advance()
		})

	m, err := Create(model, h, WithAllocator(alloc))
	assertNoError(t, err)

	outcome, err := m.Step(&trace{}, 1)
	assertNoError(t, err)
	assertEqual(t, outcome, Advance)
	assertEqual(t, m.Current(), StateID(1))
	assertFalse(t, m.Freed())

	Free(m)
	assertTrue(t, m.Freed())
	assertEqual(t, alloc.live, 0)
}

func TestRun_ResetInsideCycleIsIgnored(t *testing.T) {
	model := abcModel(t)

	h := NewHandlers[trace](model).
		Transition("A", "B", func(m *Machine[trace], _ *trace) {
			m.Reset()
			m.Advance()
		})

	m, err := Create(model, h)
	assertNoError(t, err)
	defer Free(m)

	outcome, err := m.Step(&trace{}, 1)
	assertNoError(t, err)
	assertEqual(t, outcome, Advance)
	assertEqual(t, m.Current(), StateID(1))
	assertEqual(t, len(m.History()), 2)
}

func TestRun_OnChange(t *testing.T) {
	var changes []string
	m := abcMachine(t, WithOnChange(func(from, to StateID) {
		changes = append(changes, string(g.Format("{}->{}", from, to)))
	}))

	_, _ = m.Step(&trace{}, 1)
	_, _ = m.Step(&trace{}, 2)
	_, _ = m.Step(&trace{}, 0)

	assertEqual(t, strings.Join(changes, " "), "0->1 1->0")
}

func TestRequest_UnknownState(t *testing.T) {
	m := abcMachine(t)

	var unknown *ErrUnknownState
	assertTrue(t, errors.As(m.Request(7), &unknown))
	assertTrue(t, errors.As(m.RequestName("Z"), &unknown))
	assertEqual(t, unknown.State, g.String("Z"))
}

func TestHandlers_BindingErrors(t *testing.T) {
	model := abcModel(t)

	tests := map[string]*Handlers[trace]{
		"unknown resident":   NewHandlers[trace](model).Resident("Z", resident("Z")),
		"unknown transition": NewHandlers[trace](model).Transition("A", "Z", Accept[trace]),
		"masked transition":  NewHandlers[trace](model).Transition("A", "C", Accept[trace]),
		"self transition":    NewHandlers[trace](model).Transition("A", "A", Accept[trace]),
	}

	for name, h := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := Create(model, h)
			assertTrue(t, m == nil)

			var cfg *ErrConfig
			assertTrue(t, errors.As(err, &cfg))
		})
	}

	other := routedModel(t)
	_, err := Create(other, NewHandlers[trace](model))
	assertError(t, err)
}

// countingAlloc tracks live allocations and refuses the failAt-th acquisition.
type countingAlloc struct {
	calls    int
	failAt   int
	live     int
	acquired int
	released int
	order    []string
}

func (a *countingAlloc) Acquire(table string, row, _ int) error {
	a.calls++
	if a.calls == a.failAt {
		return errors.New("out of memory")
	}

	a.live++
	a.acquired++

	return nil
}

func (a *countingAlloc) Release(table string, row, _ int) {
	a.live--
	a.released++
	a.order = append(a.order, string(g.Format("{}[{}]", table, row)))
}

func TestLifecycle_NoLeaks(t *testing.T) {
	model := routedModel(t)
	alloc := &countingAlloc{}

	m, err := Create[trace](model, nil, WithAllocator(alloc))
	assertNoError(t, err)
	// instance + dispatch spine and rows + routing spine and rows
	assertEqual(t, alloc.acquired, 1+1+2+1+2)

	Free(m)
	assertEqual(t, alloc.live, 0)
	assertEqual(t, alloc.released, alloc.acquired)
	assertTrue(t, m.Freed())
	assertEqual(t, strings.Join(alloc.order, " "),
		"routing[0] routing[1] routing[-1] dispatch[0] dispatch[1] dispatch[-1] instance[-1]")

	Free(m)
	assertEqual(t, alloc.live, 0)

	var none *Machine[trace]
	Free(none)
}

func TestLifecycle_RollbackOnAllocationFailure(t *testing.T) {
	model := routedModel(t)

	for failAt := 1; failAt <= 7; failAt++ {
		alloc := &countingAlloc{failAt: failAt}

		m, err := Create[trace](model, nil, WithAllocator(alloc))
		assertTrue(t, m == nil)

		var allocErr *ErrAllocation
		assertTrue(t, errors.As(err, &allocErr))
		assertEqual(t, alloc.live, 0)
	}
}

func TestCreate_NilOptionsKeepDefaults(t *testing.T) {
	model := abcModel(t)

	m, err := Create[trace](model, nil, WithAllocator(nil), WithLogger(nil))
	assertNoError(t, err)

	outcome, err := m.Step(&trace{}, 1)
	assertNoError(t, err)
	assertEqual(t, outcome, Retreat)

	Free(m)
	assertTrue(t, m.Freed())
}

func TestLifecycle_RunAfterFree(t *testing.T) {
	m := abcMachine(t)
	Free(m)

	assertEqual(t, m.Run(&trace{}), Continue)
	assertTrue(t, m.Dispatch() == nil)
}

func TestMachine_ResetAndSetState(t *testing.T) {
	m := abcMachine(t)
	tr := &trace{}

	assertNoError(t, m.SetState(2))
	assertEqual(t, m.Current(), StateID(2))
	assertEqual(t, tr.String(), "")

	outcome, err := m.Step(tr, 1)
	assertNoError(t, err)
	assertEqual(t, outcome, Retreat)
	assertEqual(t, m.Current(), StateID(2))
	assertEqual(t, tr.String(), "C:retreat")

	assertError(t, m.SetState(9))

	m.Reset()
	assertEqual(t, m.Current(), StateID(0))
	assertEqual(t, len(m.History()), 1)
}

func TestMachine_History(t *testing.T) {
	m := abcMachine(t)

	_, _ = m.Step(&trace{}, 1)
	_, _ = m.Step(&trace{}, 2)
	_, _ = m.Step(&trace{}, 0)

	h := m.History()
	assertEqual(t, len(h), 3)
	assertEqual(t, h[0], StateID(0))
	assertEqual(t, h[1], StateID(1))
	assertEqual(t, h[2], StateID(0))
}

func TestMachine_Serialization(t *testing.T) {
	m := abcMachine(t)
	_, _ = m.Step(&trace{}, 1)

	data, err := json.Marshal(m)
	assertNoError(t, err)

	restored := abcMachine(t)
	assertNoError(t, json.Unmarshal(data, restored))
	assertEqual(t, restored.Current(), StateID(1))
	assertEqual(t, len(restored.History()), 2)

	_, _ = m.Step(&trace{}, 0)
	assertEqual(t, m.Last(), Advance)
	assertNoError(t, m.Restore(Snapshot{Current: "A", History: g.Slice[g.String]{"A"}}))
	assertEqual(t, m.Current(), StateID(0))
	assertEqual(t, m.Last(), Continue)

	err = json.Unmarshal([]byte(`{"current":"Q","history":["A"]}`), restored)
	var unknown *ErrUnknownState
	assertTrue(t, errors.As(err, &unknown))
	assertEqual(t, restored.Current(), StateID(1))
}

func TestSyncMachine_Concurrent(t *testing.T) {
	model, err := Build(Spec{States: g.Slice[g.String]{"off", "on"}})
	assertNoError(t, err)

	type counter struct{ advances int }

	h := NewHandlers[counter](model).
		TransitionAll(func(m *Machine[counter], c *counter) {
			c.advances++
			m.Advance()
		})

	m, err := Create(model, h)
	assertNoError(t, err)

	sm := m.Sync()
	defer sm.Free()

	c := &counter{}
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)
		go func(to StateID) {
			defer wg.Done()
			_, _ = sm.Step(c, to)
		}(StateID(i % 2))
	}

	wg.Wait()

	assertEqual(t, len(sm.History()), c.advances+1)
	assertEqual(t, sm.Last() == Advance || sm.Last() == Continue, true)
}

func TestModel_ToDOT(t *testing.T) {
	dot := routedModel(t).ToDOT()

	assertTrue(t, dot.Contains("digraph Motor"))
	assertTrue(t, dot.Contains(`"IDLE" -> "RUN" [label=" START "]`))
	assertTrue(t, dot.Contains(`"RUN" -> "IDLE" [label=" STOP "]`))
	assertTrue(t, dot.Contains(`__start -> "IDLE"`))

	masked := abcModel(t).ToDOT()
	assertTrue(t, masked.Contains(`"A" -> "B" []`))
	assertFalse(t, masked.Contains(`"A" -> "C"`))
	assertTrue(t, masked.Contains(`"C" -> "A" [style=dashed`))
}

func TestModel_Names(t *testing.T) {
	model := routedModel(t)

	assertEqual(t, model.HandlerName("motor", 0, 1), g.String("motor_idle_run"))
	assertEqual(t, model.RunName("Motor"), g.String("motor_run"))
	assertEqual(t, model.StateEnumerators("motor").Join(" "), g.String("EMOTOR_ST_IDLE EMOTOR_ST_RUN EMOTOR_NUM_STATES"))
	assertEqual(t, model.InputEnumerators("motor").Join(" "),
		g.String("EMOTOR_IN_START EMOTOR_IN_STOP EMOTOR_NUM_INPUTS EMOTOR_IN_NONE"))
	assertEqual(t, len(model.CheckEnumerators("motor")), 4)
	assertEqual(t, len(abcModel(t).CheckEnumerators("x")), 3)
	assertEqual(t, len(abcModel(t).InputEnumerators("x")), 0)
}

func TestCheck_String(t *testing.T) {
	assertEqual(t, Retreat.String(), "retreat")
	assertEqual(t, Advance.String(), "advance")
	assertEqual(t, Continue.String(), "continue")
	assertEqual(t, BadInput.String(), "badinput")
	assertEqual(t, Check(9).String(), "check(9)")
}
