package order

import (
	"context"
	"fmt"

	"orderservice/internal/entities"
	"orderservice/pkg/logger"
)

type Service struct {
	log        logger.Logger
	repository Repository
	policy     TransitionPolicy
	txManager  TxManager
}

func New(log logger.Logger, repository Repository, policy TransitionPolicy, txManager TxManager) *Service {
	return &Service{
		log:        log.With(),
		repository: repository,
		policy:     policy,
		txManager:  txManager,
	}
}

// CreateOrder вызывается только доверенным внутренним потоком после принятия
// оффера, поэтому авторизация здесь — только наличие вызывающего.
func (s *Service) CreateOrder(ctx context.Context, caller entities.Caller, draft entities.OrderDraft) (*entities.Order, error) {
	if !caller.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	// total_price — витринное поле, сервис его не перепроверяет
	if draft.TotalPrice.IsZero() {
		draft.TotalPrice = draft.Price.Mul(draft.Quantity)
	}

	orderEntity, err := s.repository.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return orderEntity, nil
}

func (s *Service) GetOrder(ctx context.Context, caller entities.Caller, orderID string) (*entities.Order, error) {
	if !caller.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	role := s.policy.RoleFor(caller, orderEntity)
	if role == entities.RoleUnrelated {
		return nil, fmt.Errorf("read order %s as %s: %w", orderID, role, ErrPermissionDenied)
	}

	return orderEntity, nil
}

func (s *Service) ListMyOrders(ctx context.Context, caller entities.Caller) ([]entities.Order, error) {
	if !caller.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	orders, err := s.repository.ListByParticipant(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, caller entities.Caller, orderID string, requested entities.OrderStatusType) (*entities.Order, error) {
	if !caller.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	// нераспознанный статус отклоняем до вычисления роли
	if !requested.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, requested)
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		role := s.policy.RoleFor(caller, orderEntity)
		if !s.policy.CanTransition(role, orderEntity.Status, requested) {
			return fmt.Errorf("%w: %s: %s -> %s",
				ErrPermissionDenied, role, orderEntity.Status, requested)
		}

		updated, err = s.repository.UpdateStatus(ctx, orderID, orderEntity.Status, requested)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		s.log.With(
			logger.NewField("order", orderID),
			logger.NewField("role", role.String()),
			logger.NewField("from", orderEntity.Status.String()),
			logger.NewField("to", requested.String()),
		).Info("order status transition")

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// OrderStatusCounts — внутренняя отчетная поверхность для фоновой задачи статистики.
func (s *Service) OrderStatusCounts(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}

	return counts, nil
}
