package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	orderID := mux.Vars(r)["id"]
	caller := identity.CallerFromContext(r.Context())

	orderEntity, err := h.service.GetOrder(r.Context(), caller, orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrPermissionDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
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
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
