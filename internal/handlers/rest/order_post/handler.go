package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.OrderDraft{
		BuyerID:   orderCreateDTO.BuyerID,
		SellerID:  orderCreateDTO.SellerID,
		ListingID: orderCreateDTO.ListingID,
		Category:  orderCreateDTO.Category,
		Price:     orderCreateDTO.Price,
		Quantity:  orderCreateDTO.Quantity,
		Currency:  orderCreateDTO.Currency,
	}
	if orderCreateDTO.TotalPrice != nil {
		draft.TotalPrice = *orderCreateDTO.TotalPrice
	}

	caller := identity.CallerFromContext(r.Context())

	orderEntity, err := h.service.CreateOrder(r.Context(), caller, draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrSameParty),
			errors.Is(err, order.ErrInvalidPrice),
			errors.Is(err, order.ErrInvalidQuantity):
			w.WriteHeader(http.StatusBadRequest)
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
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
