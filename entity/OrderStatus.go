package entity

// OrderStatus is the closed set of states an order moves through.
// Any other token is invalid input and must be rejected, never guessed at.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
)

// StatusSequence is the only legal progression. Forward, one step at a
// time, no branching.
var StatusSequence = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusDelivered}

func (s OrderStatus) Valid() bool {
	for _, st := range StatusSequence {
		if st == s {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered
}
