package catalog

import (
	"fmt"
	"strings"

	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
)

// Service serves the fixed product catalog and delivery slots. The assortment
// is compiled in; pricing changes ship as a new release.
type Service struct {
	productIndex map[string]Product
	slotIndex    map[string]DeliverySlot
}

func NewService() *Service {
	productIndex := make(map[string]Product, len(products))
	for _, p := range products {
		productIndex[p.ID] = p
	}
	slotIndex := make(map[string]DeliverySlot, len(deliverySlots))
	for _, s := range deliverySlots {
		slotIndex[s.ID] = s
	}
	return &Service{productIndex: productIndex, slotIndex: slotIndex}
}

// ListFilter narrows the catalog listing.
type ListFilter struct {
	Category string
	Search   string
}

// Products returns catalog entries in browse order, optionally filtered by
// category and a case-insensitive name/description search.
func (s *Service) Products(filter ListFilter) []Product {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && string(p.Category) != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ProductByID looks up a single product.
func (s *Service) ProductByID(id string) (Product, error) {
	p, ok := s.productIndex[id]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %q not found", id))
	}
	return p, nil
}

// Slots returns the delivery windows offered at checkout.
func (s *Service) Slots() []DeliverySlot {
	out := make([]DeliverySlot, len(deliverySlots))
	copy(out, deliverySlots)
	return out
}

// SlotByID looks up a single delivery slot.
func (s *Service) SlotByID(id string) (DeliverySlot, error) {
	slot, ok := s.slotIndex[id]
	if !ok {
		return DeliverySlot{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("delivery slot %q not found", id))
	}
	return slot, nil
}
