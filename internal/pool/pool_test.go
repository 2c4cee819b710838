package pool

import (
	"testing"

	"github.com/The404Studios/outcasted/internal/domain"
)

// stub - минимальный Poolable для проверки контракта пула.
type stub struct {
	active  bool
	resets  int
	updates int
	payload int // "состояние", которое обязан стирать Reset
}

func (s *stub) IsActive() bool             { return s.active }
func (s *stub) Activate()                  { s.active = true }
func (s *stub) Deactivate()                { s.active = false }
func (s *stub) Update()                    { s.updates++ }
func (s *stub) Render(g *domain.WorldGrid) {}
func (s *stub) Reset()                     { s.resets++; s.payload = 0 }

func newStubPool(initial, max int) *ObjectPool[*stub] {
	return New[*stub](initial, max, func() *stub { return &stub{} })
}

func TestGetReusesInactiveSlot(t *testing.T) {
	p := newStubPool(2, 4)

	a := p.Get()
	if !a.IsActive() {
		t.Fatal("Get must return an activated object")
	}
	a.payload = 42
	a.Deactivate()

	b := p.Get()
	if b != a {
		t.Error("inactive slot must be reused in place")
	}
	if b.payload != 0 {
		t.Error("object must be fully reset before reactivation")
	}
}

func TestGetGrowsUpToMax(t *testing.T) {
	p := newStubPool(1, 3)

	for i := 0; i < 3; i++ {
		p.Get()
	}
	if p.Size() != 3 {
		t.Errorf("pool must grow to max, size=%d", p.Size())
	}
	if p.ActiveCount() != 3 {
		t.Errorf("all 3 must be active, got %d", p.ActiveCount())
	}
}

func TestSaturatedPoolRecyclesSlotZero(t *testing.T) {
	p := newStubPool(3, 3)

	first := p.Get()
	p.Get()
	p.Get()

	// Пул насыщен: (N+1)-й Get обязан принудительно забрать слот 0,
	// даже если тот активен и даже если он не самый старый.
	victim := p.Get()
	if victim != first {
		t.Error("saturated Get must recycle index 0, not any other slot")
	}
	if victim.resets == 0 {
		t.Error("forced recycle must Reset the victim")
	}
	if !victim.IsActive() {
		t.Error("recycled object must come back activated")
	}
	if p.ActiveCount() > 3 {
		t.Errorf("pool must never expose more than max active entries, got %d", p.ActiveCount())
	}
}

func TestReturnAllDeactivatesWithoutReset(t *testing.T) {
	p := newStubPool(2, 2)
	a := p.Get()
	b := p.Get()
	a.payload = 1
	resetsBefore := a.resets + b.resets

	p.ReturnAll()

	if a.IsActive() || b.IsActive() {
		t.Error("ReturnAll must deactivate everything")
	}
	if a.resets+b.resets != resetsBefore {
		t.Error("ReturnAll must not reset objects")
	}
	if a.payload != 1 {
		t.Error("state must survive until the next Get")
	}
}

func TestUpdateTouchesOnlyActive(t *testing.T) {
	p := newStubPool(2, 2)
	a := p.Get()
	idle := p.Get()
	idle.Deactivate()

	p.Update()

	if a.updates != 1 {
		t.Errorf("active object must be updated once, got %d", a.updates)
	}
	if idle.updates != 0 {
		t.Error("inactive object must be skipped")
	}
}

func TestGetActiveObjectsSnapshot(t *testing.T) {
	p := newStubPool(3, 3)
	a := p.Get()
	b := p.Get()
	b.Deactivate()

	active := p.GetActiveObjects()
	if len(active) != 1 || active[0] != a {
		t.Errorf("expected snapshot [a], got %d entries", len(active))
	}
}
