package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"orderservice/internal/generated/dto"
	"orderservice/internal/pkg/identity"
	"orderservice/internal/service/order"
	"orderservice/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := identity.CallerFromContext(r.Context())

	orders, err := h.service.ListMyOrders(r.Context(), caller)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderList{
		Orders: make([]dto.Order, 0, len(orders)),
	}
	for i := range orders {
		orderEntity := &orders[i]
		response.Orders = append(response.Orders, dto.Order{
			ID:         orderEntity.ID,
			BuyerID:    orderEntity.BuyerID,
			SellerID:   orderEntity.SellerID,
			ListingID:  orderEntity.ListingID,
			Category:   orderEntity.Category,
			Price:      orderEntity.Price,
			Quantity:   orderEntity.Quantity,
			TotalPrice: orderEntity.TotalPrice,
			Currency:   orderEntity.Currency,
			Status:     orderEntity.Status.String(),
			CreatedAt:  orderEntity.CreatedAt,
			UpdatedAt:  orderEntity.UpdatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
