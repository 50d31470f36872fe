package offer_accepted

import (
	"context"

	"orderservice/internal/entities"
	"orderservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateOrder(ctx context.Context, caller entities.Caller, draft entities.OrderDraft) (*entities.Order, error)
}
