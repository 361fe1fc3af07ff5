package services

import (
	"time"

	"parrilla-backend/entity"
)

// KitchenTicket is one row of the staff board: the order plus the
// derivations the board renders (age, urgency, next-action label).
// Clients re-poll every 10-15s; minute precision is all that matters.
type KitchenTicket struct {
	Order          entity.Order `json:"order"`
	ElapsedMinutes int          `json:"elapsedMinutes"`
	Urgent         bool         `json:"urgent"`
	Action         string       `json:"action"`
	Banner         string       `json:"banner"`
}

// BuildTicket derives the presentational fields for one order. Pure;
// the urgency threshold is a tunable, not part of the state machine.
func BuildTicket(o entity.Order, now time.Time, urgencyAfter time.Duration) KitchenTicket {
	age := now.Sub(o.CreatedAt)
	return KitchenTicket{
		Order:          o,
		ElapsedMinutes: int(age.Minutes()),
		Urgent:         age > urgencyAfter,
		Action:         ActionLabel(o.Status),
		Banner:         BannerLabel(o.Status),
	}
}

// Board assembles the kitchen view from the active orders.
func (s *OrderService) Board() ([]KitchenTicket, error) {
	active, err := s.Store.ListActive()
	if err != nil {
		return nil, err
	}
	now := s.now()
	tickets := make([]KitchenTicket, 0, len(active))
	for _, o := range active {
		tickets = append(tickets, BuildTicket(o, now, s.UrgencyAfter))
	}
	return tickets, nil
}
