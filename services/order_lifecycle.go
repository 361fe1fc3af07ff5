package services

import (
	"parrilla-backend/entity"
)

// NextStatus is the single transition rule: the next state in the fixed
// sequence, or the current state unchanged at the terminal step. There
// is no staff-chosen target; the UI only ever offers "move to next".
// Unknown tokens fail closed and come back unchanged.
func NextStatus(s entity.OrderStatus) entity.OrderStatus {
	for i, st := range entity.StatusSequence {
		if st != s {
			continue
		}
		if i+1 < len(entity.StatusSequence) {
			return entity.StatusSequence[i+1]
		}
		return s
	}
	return s
}

// ActionLabel is what the kitchen board shows on the advance button for
// an order in the given state.
func ActionLabel(s entity.OrderStatus) string {
	switch s {
	case entity.StatusPending:
		return "Empezar a cocinar"
	case entity.StatusPreparing:
		return "Marcar listo"
	case entity.StatusReady:
		return "Entregar"
	case entity.StatusDelivered:
		return "Entregado ✓"
	default:
		return ""
	}
}

// BannerLabel is the customer-facing status line for a tracked order.
func BannerLabel(s entity.OrderStatus) string {
	switch s {
	case entity.StatusPending:
		return "Recibido"
	case entity.StatusPreparing:
		return "Preparando"
	case entity.StatusReady:
		return "¡Listo para recoger!"
	case entity.StatusDelivered:
		return "Entregado"
	default:
		return ""
	}
}
