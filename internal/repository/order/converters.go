package order

import "orderservice/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:         o.ID,
		BuyerID:    o.BuyerID,
		SellerID:   o.SellerID,
		ListingID:  o.ListingID,
		Category:   o.Category,
		Price:      o.Price,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Currency:   o.Currency,
		Status:     entities.OrderStatusType(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func ToDomainList(models []OrderDB) []entities.Order {
	orders := make([]entities.Order, 0, len(models))
	for i := range models {
		orders = append(orders, *ToDomain(&models[i]))
	}
	return orders
}
