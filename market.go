package stockmarket

import (
	"fmt"
	"slices"
)

// PriceSource gives the authoritative offer of a stock by name.
type PriceSource interface {
	FindByName(name string) (Stock, bool)
}

// Market holds the ordered list of tradable stocks.
type Market struct {
	stocks []Stock
	index  map[string]int
}

// NewMarket returns a market with the given stocks, in order. Stocks with a
// name already listed are ignored.
func NewMarket(stocks ...Stock) *Market {
	m := &Market{index: make(map[string]int)}
	for _, s := range stocks {
		_ = m.Add(s)
	}
	return m
}

// DefaultMarket returns the built-in market used when no stocks file can be
// read.
func DefaultMarket() *Market {
	return NewMarket(
		MustStock("TechCorp", 152, 0),
		MustStock("GreenEnergy", 88, 0),
		MustStock("HealthPlus", 210, 0),
		MustStock("BioGen", 75, 0),
	)
}

// Add appends a stock offer to the market. The offer quantity is reset to
// zero.
func (m *Market) Add(s Stock) error {
	if s.name == "" || s.price <= 0 {
		return fmt.Errorf("invalid stock offer %q at %d", s.name, s.price)
	}
	if m.Has(s.name) {
		return fmt.Errorf("stock %q is already listed", s.name)
	}
	s.quantity = 0
	m.index[s.name] = len(m.stocks)
	m.stocks = append(m.stocks, s)
	return nil
}

// Has returns true if a stock with this name is listed.
func (m *Market) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// AllStocks returns a copy of the market's stocks.
func (m *Market) AllStocks() []Stock { return slices.Clone(m.stocks) }

// Len returns the number of listed stocks.
func (m *Market) Len() int { return len(m.stocks) }

// FindByIndex returns the i-th stock (0-based).
func (m *Market) FindByIndex(i int) (Stock, bool) {
	if i < 0 || i >= len(m.stocks) {
		return Stock{}, false
	}
	return m.stocks[i], true
}

// FindByName returns the stock listed under name.
func (m *Market) FindByName(name string) (Stock, bool) {
	i, ok := m.index[name]
	if !ok {
		return Stock{}, false
	}
	return m.stocks[i], true
}
