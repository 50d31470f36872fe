package order

import (
	"strings"

	"orderservice/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func validateDraft(draft entities.OrderDraft) error {
	if strings.TrimSpace(draft.BuyerID) == "" ||
		strings.TrimSpace(draft.SellerID) == "" ||
		strings.TrimSpace(draft.ListingID) == "" ||
		strings.TrimSpace(draft.Category) == "" {
		return ErrMissingRequiredFields
	}

	if draft.BuyerID == draft.SellerID {
		return ErrSameParty
	}

	if draft.Price.IsNegative() {
		return ErrInvalidPrice
	}

	if !draft.Quantity.IsPositive() {
		return ErrInvalidQuantity
	}

	return nil
}
