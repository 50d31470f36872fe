//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"orderservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	ListByParticipant(ctx context.Context, identityID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, current, next entities.OrderStatusType) (*entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type TransitionPolicy interface {
	RoleFor(caller entities.Caller, order *entities.Order) entities.ActorRole
	CanTransition(role entities.ActorRole, current, requested entities.OrderStatusType) bool
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
