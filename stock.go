package stockmarket

import (
	"fmt"
	"strings"
)

// Stock is a named quantity of shares at a unit price.
//
// In a Portfolio a Stock is a holding, and quantity is the number of shares
// owned. In a Market it is an offer, and quantity is unused (zero).
//
// Stock is a value type: copies never share state.
type Stock struct {
	name     string
	price    int64
	quantity int64
}

// NewStock returns a validated Stock.
func NewStock(name string, price, quantity int64) (Stock, error) {
	if name == "" {
		return Stock{}, fmt.Errorf("stock name cannot be empty")
	}
	if strings.ContainsAny(name, reserved) {
		return Stock{}, fmt.Errorf("stock name %q cannot contain any of %q", name, reserved)
	}
	s := Stock{name: name}
	if err := s.SetPrice(price); err != nil {
		return Stock{}, err
	}
	if err := s.SetQuantity(quantity); err != nil {
		return Stock{}, err
	}
	return s, nil
}

// MustStock is like NewStock but panics on invalid values. Meant for
// literals in defaults and tests.
func MustStock(name string, price, quantity int64) Stock {
	s, err := NewStock(name, price, quantity)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Stock) Name() string    { return s.name }
func (s Stock) Price() int64    { return s.price }
func (s Stock) Quantity() int64 { return s.quantity }

// Value returns price times quantity.
func (s Stock) Value() int64 { return s.price * s.quantity }

// SetPrice sets the unit price, it must be strictly positive.
func (s *Stock) SetPrice(price int64) error {
	if price <= 0 {
		return fmt.Errorf("stock %q price must be positive, got %d", s.name, price)
	}
	s.price = price
	return nil
}

// SetQuantity sets the quantity, it cannot be negative.
func (s *Stock) SetQuantity(quantity int64) error {
	if quantity < 0 {
		return fmt.Errorf("stock %q quantity cannot be negative, got %d", s.name, quantity)
	}
	s.quantity = quantity
	return nil
}

// String returns the menu view of a holding.
func (s Stock) String() string {
	return fmt.Sprintf("%s: price %d, quantity %d", s.name, s.price, s.quantity)
}
