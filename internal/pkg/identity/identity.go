package identity

import (
	"context"

	"orderservice/internal/entities"
)

type ctxKey struct{}

// WithCaller кладет вызывающего в контекст запроса.
func WithCaller(ctx context.Context, caller entities.Caller) context.Context {
	return context.WithValue(ctx, ctxKey{}, caller)
}

// CallerFromContext возвращает вызывающего, положенного middleware.
// Пустой Caller означает неаутентифицированный запрос.
func CallerFromContext(ctx context.Context) entities.Caller {
	caller, ok := ctx.Value(ctxKey{}).(entities.Caller)
	if !ok {
		return entities.Caller{}
	}
	return caller
}
