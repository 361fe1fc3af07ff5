package services

import (
	"testing"
	"time"

	"parrilla-backend/entity"
)

func TestBuildTicket(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	threshold := 20 * time.Minute

	tests := []struct {
		name        string
		age         time.Duration
		status      entity.OrderStatus
		wantMinutes int
		wantUrgent  bool
		wantAction  string
	}{
		{"fresh pending", 90 * time.Second, entity.StatusPending, 1, false, "Empezar a cocinar"},
		{"at the threshold", 20 * time.Minute, entity.StatusPreparing, 20, false, "Marcar listo"},
		{"past the threshold", 21 * time.Minute, entity.StatusReady, 21, true, "Entregar"},
	}
	for _, tt := range tests {
		o := entity.Order{ID: "o1", Status: tt.status, CreatedAt: now.Add(-tt.age)}
		ticket := BuildTicket(o, now, threshold)

		if ticket.ElapsedMinutes != tt.wantMinutes {
			t.Errorf("%s: minutes = %d, want %d", tt.name, ticket.ElapsedMinutes, tt.wantMinutes)
		}
		if ticket.Urgent != tt.wantUrgent {
			t.Errorf("%s: urgent = %v, want %v", tt.name, ticket.Urgent, tt.wantUrgent)
		}
		if ticket.Action != tt.wantAction {
			t.Errorf("%s: action = %q, want %q", tt.name, ticket.Action, tt.wantAction)
		}
	}
}

func TestBoardExcludesDelivered(t *testing.T) {
	store := newFakeOrderStore()
	svc, _ := newTestService(store)

	a, _ := svc.Submit("Ana", "", sampleCart())
	b, _ := svc.Submit("Beto", "3", sampleCart())

	// Deliver one of them.
	svc.Advance(a.ID)
	svc.Advance(a.ID)
	svc.Advance(a.ID)

	tickets, err := svc.Board()
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if len(tickets) != 1 {
		t.Fatalf("want 1 ticket, got %d", len(tickets))
	}
	if tickets[0].Order.ID != b.ID {
		t.Errorf("board shows %q, want %q", tickets[0].Order.ID, b.ID)
	}
}
