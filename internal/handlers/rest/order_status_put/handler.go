package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"orderservice/internal/entities"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var statusUpdateDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	caller := identity.CallerFromContext(r.Context())
	requested := entities.OrderStatusType(statusUpdateDTO.Status)

	orderEntity, err := h.service.UpdateOrderStatus(r.Context(), caller, orderID, requested)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrUnknownStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrPermissionDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Order{
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
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
