package offer_accepted

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
	"orderservice/internal/entities"
	orderservice "orderservice/internal/service/order"
	"orderservice/pkg/logger"
)

// событие публикует сервис офферов после принятия оффера продавцом
type acceptedEvent struct {
	OfferID    string          `json:"offer_id"`
	BuyerID    string          `json:"buyer_id"`
	SellerID   string          `json:"seller_id"`
	ListingID  string          `json:"listing_id"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Quantity   decimal.Decimal `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Currency   string          `json:"currency"`
}

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("offer.accepted: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("offer.accepted: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim, не коммитя offset:
// при отмене контекста и при транзиентных ошибках создания заказа.
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event acceptedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("offer.accepted handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("offer", event.OfferID),
		logger.NewField("buyer", event.BuyerID),
		logger.NewField("seller", event.SellerID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("offer.accepted processing")

	draft := entities.OrderDraft{
		BuyerID:    event.BuyerID,
		SellerID:   event.SellerID,
		ListingID:  event.ListingID,
		Category:   event.Category,
		Price:      event.Price,
		Quantity:   event.Quantity,
		TotalPrice: event.TotalPrice,
		Currency:   event.Currency,
	}

	// consumer — доверенный внутренний поток, ходит от системного identity
	systemCaller := entities.Caller{ID: "system:offer-worker"}

	order, err := h.orderService.CreateOrder(ctx, systemCaller, draft)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("offer.accepted handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrMissingRequiredFields),
			errors.Is(err, orderservice.ErrSameParty),
			errors.Is(err, orderservice.ErrInvalidPrice),
			errors.Is(err, orderservice.ErrInvalidQuantity):
			// битый payload никогда не станет валидным, коммитим и идем дальше
			msgLog.With(
				logger.NewField("error", err),
			).Warn("offer.accepted handler received invalid offer payload")
			sess.MarkMessage(message, "")
			return false

		default:
			// транзиентная ошибка (БД недоступна и т.п.): offset не коммитим,
			// сообщение будет переработано после пересоздания claim
			msgLog.With(
				logger.NewField("error", err),
			).Error("offer.accepted handler failed to create order, message will be reprocessed")
			return true
		}
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("offer", event.OfferID),
		logger.NewField("order", order.ID),
		logger.NewField("status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("offer.accepted: order created")

	sess.MarkMessage(message, "")
	return false
}
