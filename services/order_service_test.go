package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"parrilla-backend/entity"
)

// fakeOrderStore implements OrderStore in memory, optionally rejecting
// writes to exercise the degraded-mode branch.
type fakeOrderStore struct {
	orders     map[string]*entity.Order
	failCreate bool
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]*entity.Order)}
}

func (f *fakeOrderStore) Create(o *entity.Order) error {
	if f.failCreate {
		return errors.New("permission denied")
	}
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderStore) ListActive() ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.Status != entity.StatusDelivered {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) GetStatus(id string) (entity.OrderStatus, error) {
	o, ok := f.orders[id]
	if !ok {
		return "", errors.New("not found")
	}
	return o.Status, nil
}

func (f *fakeOrderStore) UpdateStatusGuard(id string, from, to entity.OrderStatus) (int64, error) {
	o, ok := f.orders[id]
	if !ok || o.Status != from {
		return 0, nil
	}
	o.Status = to
	return 1, nil
}

type eventRecorder struct{ tables []string }

func (r *eventRecorder) Publish(table string) { r.tables = append(r.tables, table) }

func newTestService(store OrderStore) (*OrderService, *eventRecorder) {
	rec := &eventRecorder{}
	svc := NewOrderService(store, rec, 20*time.Minute)
	return svc, rec
}

func sampleCart() Cart {
	return Cart{{ItemID: "b1", Name: "Burger Suprema", Price: 12.50, Quantity: 2}}
}

func TestSubmitCreatesPendingOrder(t *testing.T) {
	store := newFakeOrderStore()
	svc, rec := newTestService(store)

	o, err := svc.Submit("Ana", "", sampleCart())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if o.Status != entity.StatusPending {
		t.Errorf("status = %q, want PENDING", o.Status)
	}
	if o.Total != 25.00 {
		t.Errorf("total = %v, want 25.00", o.Total)
	}
	if o.TableNumber != entity.DefaultTable {
		t.Errorf("table = %q, want %q", o.TableNumber, entity.DefaultTable)
	}
	if o.Local() {
		t.Error("stored order should not be local")
	}
	if _, ok := store.orders[o.ID]; !ok {
		t.Error("order not written to store")
	}
	if len(rec.tables) != 1 || rec.tables[0] != TableOrders {
		t.Errorf("expected one orders event, got %v", rec.tables)
	}

	// Frozen snapshot totals must add up to the order total.
	var sum float64
	for _, it := range o.Items {
		sum += it.Total
	}
	if sum != o.Total {
		t.Errorf("line totals sum to %v, order total is %v", sum, o.Total)
	}
}

func TestSubmitBlocked(t *testing.T) {
	svc, rec := newTestService(newFakeOrderStore())

	if _, err := svc.Submit("", "", sampleCart()); !errors.Is(err, ErrNameRequired) {
		t.Errorf("blank name: err = %v, want ErrNameRequired", err)
	}
	if _, err := svc.Submit("Ana", "", nil); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("empty cart: err = %v, want ErrEmptyCart", err)
	}
	if len(rec.tables) != 0 {
		t.Errorf("blocked submissions must not publish events, got %v", rec.tables)
	}
}

func TestSubmitDegradedMode(t *testing.T) {
	store := newFakeOrderStore()
	store.failCreate = true
	svc, rec := newTestService(store)

	o, err := svc.Submit("Ana", "5", sampleCart())
	if err != nil {
		t.Fatalf("rejected write must not surface as an error: %v", err)
	}
	if !o.Local() || !strings.HasPrefix(o.ID, entity.LocalIDPrefix) {
		t.Errorf("order id %q should carry the local prefix", o.ID)
	}
	if len(rec.tables) != 0 {
		t.Errorf("local orders must not publish events, got %v", rec.tables)
	}

	// The submitting customer still sees their order.
	got, keep, err := svc.ResolveMine(o.ID)
	if err != nil || !keep || got == nil || got.ID != o.ID {
		t.Errorf("ResolveMine(local) = (%v, %v, %v), want the local order", got, keep, err)
	}
}

func TestAdvanceSequence(t *testing.T) {
	store := newFakeOrderStore()
	svc, _ := newTestService(store)

	o, _ := svc.Submit("Ana", "", sampleCart())

	want := []entity.OrderStatus{entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered}
	for _, w := range want {
		got, err := svc.Advance(o.ID)
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if got != w {
			t.Fatalf("Advance = %q, want %q", got, w)
		}
	}

	// Terminal state: advancing again is a no-op, not an error.
	got, err := svc.Advance(o.ID)
	if err != nil {
		t.Fatalf("Advance(delivered): %v", err)
	}
	if got != entity.StatusDelivered {
		t.Errorf("Advance(delivered) = %q, want DELIVERED", got)
	}
}

func TestAdvanceUnknownOrder(t *testing.T) {
	svc, _ := newTestService(newFakeOrderStore())
	if _, err := svc.Advance("missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestAdvanceUnrecognizedStatus(t *testing.T) {
	store := newFakeOrderStore()
	store.orders["x"] = &entity.Order{ID: "x", Status: "CANCELLED"}
	svc, rec := newTestService(store)

	got, err := svc.Advance("x")
	if err != nil {
		t.Fatalf("corrupt status must not crash or error: %v", err)
	}
	if got != "CANCELLED" {
		t.Errorf("displayed state changed: got %q", got)
	}
	if len(rec.tables) != 0 {
		t.Errorf("no event for a refused advance, got %v", rec.tables)
	}
}

func TestAdvanceLostRace(t *testing.T) {
	store := newFakeOrderStore()
	svc, _ := newTestService(store)
	o, _ := svc.Submit("Ana", "", sampleCart())

	// Another staff session moves the ticket between our read and write.
	store.orders[o.ID].Status = entity.StatusPreparing

	got, err := svc.Advance(o.ID)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	// Either outcome is one step forward; never a regression.
	if got != entity.StatusPreparing && got != entity.StatusReady {
		t.Errorf("Advance after race = %q", got)
	}
}

func TestTrackedOrderLifecycle(t *testing.T) {
	store := newFakeOrderStore()
	svc, _ := newTestService(store)

	o, _ := svc.Submit("Ana", "", sampleCart())

	got, keep, _ := svc.ResolveMine(o.ID)
	if !keep || got.Status != entity.StatusPending {
		t.Fatalf("fresh order: (%v, %v)", got, keep)
	}
	if BannerLabel(got.Status) != "Recibido" {
		t.Errorf("banner = %q, want Recibido", BannerLabel(got.Status))
	}

	svc.Advance(o.ID)
	got, keep, _ = svc.ResolveMine(o.ID)
	if !keep || got.Status != entity.StatusPreparing {
		t.Fatalf("after advance: (%v, %v)", got, keep)
	}

	svc.Advance(o.ID) // READY
	svc.Advance(o.ID) // DELIVERED — drops off the active list
	got, keep, _ = svc.ResolveMine(o.ID)
	if keep || got != nil {
		t.Errorf("delivered order must clear the reference, got (%v, %v)", got, keep)
	}
}
