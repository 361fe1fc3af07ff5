package services

import (
	"testing"

	"parrilla-backend/entity"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		current entity.OrderStatus
		want    entity.OrderStatus
	}{
		{entity.StatusPending, entity.StatusPreparing},
		{entity.StatusPreparing, entity.StatusReady},
		{entity.StatusReady, entity.StatusDelivered},
		{entity.StatusDelivered, entity.StatusDelivered}, // terminal, no-op
		{"CANCELLED", "CANCELLED"},                       // unknown token fails closed
		{"", ""},
	}
	for _, tt := range tests {
		if got := NextStatus(tt.current); got != tt.want {
			t.Errorf("NextStatus(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestNextStatusWalksWholeSequence(t *testing.T) {
	s := entity.StatusPending
	for i := 1; i < len(entity.StatusSequence); i++ {
		s = NextStatus(s)
		if s != entity.StatusSequence[i] {
			t.Fatalf("step %d: got %q, want %q", i, s, entity.StatusSequence[i])
		}
	}
	if !s.Terminal() {
		t.Errorf("sequence should end terminal, got %q", s)
	}
}

func TestLabelsCoverAllStatuses(t *testing.T) {
	for _, st := range entity.StatusSequence {
		if ActionLabel(st) == "" {
			t.Errorf("ActionLabel(%q) is empty", st)
		}
		if BannerLabel(st) == "" {
			t.Errorf("BannerLabel(%q) is empty", st)
		}
	}
	if ActionLabel("BOGUS") != "" || BannerLabel("BOGUS") != "" {
		t.Error("unknown status should have no label")
	}
}
