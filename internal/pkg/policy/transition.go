package policy

import (
	"orderservice/internal/entities"
)

// TransitionPolicy — чистая функция решения, без I/O.
type TransitionPolicy struct{}

func New() *TransitionPolicy {
	return &TransitionPolicy{}
}

// RoleFor классифицирует вызывающего относительно заказа.
// Админская роль не зависит от заказа.
func (p *TransitionPolicy) RoleFor(caller entities.Caller, order *entities.Order) entities.ActorRole {
	switch {
	case caller.Admin:
		return entities.RoleAdmin
	case caller.ID == order.BuyerID:
		return entities.RoleBuyer
	case caller.ID == order.SellerID:
		return entities.RoleSeller
	default:
		return entities.RoleUnrelated
	}
}

// CanTransition проверяет правила в фиксированном порядке:
// терминальные статусы, админ, продавец, покупатель, отмена до оплаты.
// Все не разрешенное явно — запрещено.
func (p *TransitionPolicy) CanTransition(role entities.ActorRole, current, requested entities.OrderStatusType) bool {
	if current.IsTerminal() {
		return false
	}

	if role == entities.RoleAdmin {
		return true
	}

	switch role {
	case entities.RoleSeller:
		switch {
		case current == entities.OrderPendingPayment && requested == entities.OrderPaid:
			return true
		// продавец может отгрузить и до подтверждения оплаты (наложенный платеж)
		case current == entities.OrderPendingPayment && requested == entities.OrderShipped:
			return true
		case current == entities.OrderPaid && requested == entities.OrderShipped:
			return true
		}
	case entities.RoleBuyer:
		switch {
		case current == entities.OrderShipped && requested == entities.OrderDelivered:
			return true
		case current == entities.OrderDelivered && requested == entities.OrderCompleted:
			return true
		}
	}

	// обе стороны могут отменить заказ до оплаты
	if (role == entities.RoleBuyer || role == entities.RoleSeller) &&
		current == entities.OrderPendingPayment && requested == entities.OrderCancelled {
		return true
	}

	return false
}
