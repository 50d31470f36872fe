package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"orderservice/internal/entities"
	"orderservice/internal/repository"
	"orderservice/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, buyer_id, seller_id, listing_id, category,
		price, quantity, total_price, currency, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	query := `
		INSERT INTO orders (id, buyer_id, seller_id, listing_id, category,
			price, quantity, total_price, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending_payment', NOW(), NOW())
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		draft.BuyerID,
		draft.SellerID,
		draft.ListingID,
		draft.Category,
		draft.Price,
		draft.Quantity,
		draft.TotalPrice,
		draft.Currency,
	).Scan(
		&orderModel.ID,
		&orderModel.BuyerID,
		&orderModel.SellerID,
		&orderModel.ListingID,
		&orderModel.Category,
		&orderModel.Price,
		&orderModel.Quantity,
		&orderModel.TotalPrice,
		&orderModel.Currency,
		&orderModel.Status,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		// коллизия сгенерированного id: не конкурентное изменение статуса,
		// наружу уходит как неожиданная ошибка хранилища
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("unexpected order repository create error: duplicate id: %w", err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&orderModel.ID,
			&orderModel.BuyerID,
			&orderModel.SellerID,
			&orderModel.ListingID,
			&orderModel.Category,
			&orderModel.Price,
			&orderModel.Quantity,
			&orderModel.TotalPrice,
			&orderModel.Currency,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) ListByParticipant(ctx context.Context, identityID string) ([]entities.Order, error) {
	builder := qb.
		Select("id", "buyer_id", "seller_id", "listing_id", "category",
			"price", "quantity", "total_price", "currency", "status", "created_at", "updated_at").
		From("orders").
		Where(sq.Or{
			sq.Eq{"buyer_id": identityID},
			sq.Eq{"seller_id": identityID},
		}).
		OrderBy("created_at DESC", "id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.BuyerID,
			&orderModel.SellerID,
			&orderModel.ListingID,
			&orderModel.Category,
			&orderModel.Price,
			&orderModel.Quantity,
			&orderModel.TotalPrice,
			&orderModel.Currency,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// UpdateStatus переводит заказ из current в next одной охраняемой записью.
// Ноль затронутых строк означает либо исчезнувший заказ, либо проигрыш
// конкурентной записи — различаем повторным чтением.
func (r *Repository) UpdateStatus(ctx context.Context, orderID string, current, next entities.OrderStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = $1,
			updated_at = NOW()
		WHERE id = $2
		  AND status = $3
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, next.String(), orderID, current.String()).
		Scan(
			&orderModel.ID,
			&orderModel.BuyerID,
			&orderModel.SellerID,
			&orderModel.ListingID,
			&orderModel.Category,
			&orderModel.Price,
			&orderModel.Quantity,
			&orderModel.TotalPrice,
			&orderModel.Currency,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveGuardMiss(ctx, orderID)
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) resolveGuardMiss(ctx context.Context, orderID string) error {
	query := `SELECT 1 FROM orders WHERE id = $1`

	var one int
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return order.ErrStatusConflict
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64, 6)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return counts, nil
}
