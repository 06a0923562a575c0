package ecs

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/walker/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{"single", 1, 0, 0},
		{"three_create_destroy_middle", 3, 1, 2},
		{"none_destroy", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
			if got := len(Entities(w)); got != c.wantAlive {
				t.Fatalf("expected %d entities, got %d", c.wantAlive, got)
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must not equal the stale handle")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}

	kind := component.NewComponentKind[int]()
	if err := Add(w, old, kind, intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("Add on stale handle: got %v, want ErrEntityNotAlive", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestSparseWorldComponents(t *testing.T) {
	w := NewWorld()

	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, hInt.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hInt.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, hInt.Kind()) {
					t.Fatalf("e2 should not have int")
				}
			},
			teardown: func() bool { return Remove(w, e1, hInt.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, hStr.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, hStr.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, hStr.Kind()) || !Has(w, e2, hStr.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if w.Count(hStr.Kind()) != 2 {
					t.Fatalf("expected count 2, got %d", w.Count(hStr.Kind()))
				}
			},
			teardown: func() bool { return Remove(w, e1, hStr.Kind()) && Remove(w, e2, hStr.Kind()) },
		},
		{
			name:  "pointer_is_shared",
			setup: func() error { return Add(w, e2, hInt.Kind(), intPtr(1)) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, hInt.Kind())
				*v = 42
				again, _ := Get(w, e2, hInt.Kind())
				if *again != 42 {
					t.Fatalf("mutation through Get pointer was lost: %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, hInt.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add[int](w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("nil value: got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("zero kind: got %v", err)
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	e := CreateEntity(w)
	if err := Add(w, e, kind, intPtr(3)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)

	fresh := CreateEntity(w)
	if Has(w, fresh, kind) {
		t.Fatalf("recycled slot inherited a component")
	}
	if w.Count(kind) != 0 {
		t.Fatalf("expected empty store, got %d", w.Count(kind))
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	seen := map[Entity]int{}
	ForEach(w, h.Kind(), func(e Entity, v *int) { seen[e] = *v })
	if len(seen) != 2 || seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected ForEach result %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if len(Entities(w)) != 0 {
		t.Fatalf("expected all entities destroyed")
	}
}

func TestQueryAndForEach2(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[string]()

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, stringPtr("two")); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb, stringPtr("three")); err != nil {
					t.Fatal(err)
				}

				res := w.Query(ka, kb)
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}

				var got []string
				ForEach2(w, ka, kb, func(_ Entity, _ *int, s *string) { got = append(got, *s) })
				if len(got) != 1 || got[0] != "two" {
					t.Fatalf("ForEach2 got %v", got)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if res := w.Query(ka, kb); len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponentKind[int]()
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				DestroyEntity(w, e)
				if res := w.Query(ka); len(res) != 0 {
					t.Fatalf("expected no entities, got %v", res)
				}
				if _, ok := w.First(ka); ok {
					t.Fatalf("First returned a destroyed entity")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestSingle(t *testing.T) {
	w := NewWorld()
	tag := component.NewComponentKind[struct{}]()

	if _, err := w.Single(tag); !errors.Is(err, ErrNotSingle) {
		t.Fatalf("zero matches: got %v", err)
	}

	a := CreateEntity(w)
	if err := Add(w, a, tag, &struct{}{}); err != nil {
		t.Fatal(err)
	}
	got, err := w.Single(tag)
	if err != nil || got != a {
		t.Fatalf("one match: got %v, %v", got, err)
	}

	b := CreateEntity(w)
	if err := Add(w, b, tag, &struct{}{}); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Single(tag); !errors.Is(err, ErrNotSingle) {
		t.Fatalf("two matches: got %v", err)
	}
}

func TestMustGetPanicsWhenMissing(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustGet(w, e, component.NewComponentKind[int]())
}

func TestBeginTick(t *testing.T) {
	w := NewWorld()
	w.BeginTick(16 * time.Millisecond)
	if w.Delta() != 16*time.Millisecond || w.Ticks() != 1 {
		t.Fatalf("delta=%v ticks=%d", w.Delta(), w.Ticks())
	}
	w.BeginTick(-time.Second)
	if w.Delta() != 0 || w.Ticks() != 2 {
		t.Fatalf("negative delta not clamped: delta=%v ticks=%d", w.Delta(), w.Ticks())
	}
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: "a"})
	w.Events().Push(Event{Type: "b"})
	if w.Events().Len() != 2 {
		t.Fatalf("expected 2 queued events")
	}
	evts := w.Events().Drain()
	if len(evts) != 2 || evts[0].Type != "a" || evts[1].Type != "b" {
		t.Fatalf("unexpected drain order %v", evts)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}
}
