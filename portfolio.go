package stockmarket

import (
	"iter"
	"math"
	"slices"
)

// Portfolio holds a player's stocks, at most one holding per stock name.
//
// Holdings are kept in insertion order, and a holding never has a quantity
// of zero or less: it is removed as soon as it is liquidated.
type Portfolio struct {
	holdings map[string]*Stock
	order    []string
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{holdings: make(map[string]*Stock)}
}

// AddOrUpdate merges a purchase into the portfolio.
//
// If a holding with the same name exists, its price becomes the incoming
// price (the latest traded price, not an average) and its quantity is
// increased by the incoming quantity. Otherwise the stock is inserted as a
// new holding.
//
// A purchase whose quantity does not fit in the holding is ignored, see
// CanAdd.
func (p *Portfolio) AddOrUpdate(s Stock) {
	if !p.CanAdd(s) {
		return
	}
	if h, ok := p.holdings[s.name]; ok {
		h.price = s.price
		h.quantity += s.quantity
		return
	}
	if s.name == "" || s.quantity <= 0 {
		return
	}
	p.holdings[s.name] = &s
	p.order = append(p.order, s.name)
}

// CanAdd returns false if merging s would overflow the holding quantity.
func (p *Portfolio) CanAdd(s Stock) bool {
	h, ok := p.holdings[s.name]
	return !ok || s.quantity <= 0 || h.quantity <= math.MaxInt64-s.quantity
}

// Update replaces the price and quantity of an existing holding with the
// given absolute values. The holding is removed if the new quantity is zero
// or less. Update does nothing if there is no holding with that name.
func (p *Portfolio) Update(s Stock) {
	h, ok := p.holdings[s.name]
	if !ok {
		return
	}
	if s.quantity <= 0 {
		p.remove(s.name)
		return
	}
	h.price = s.price
	h.quantity = s.quantity
}

func (p *Portfolio) remove(name string) {
	delete(p.holdings, name)
	if i := slices.Index(p.order, name); i >= 0 {
		p.order = slices.Delete(p.order, i, i+1)
	}
}

// FindByName returns a copy of the holding for name.
func (p *Portfolio) FindByName(name string) (Stock, bool) {
	h, ok := p.holdings[name]
	if !ok {
		return Stock{}, false
	}
	return *h, true
}

// AllStocks iterates over copies of the holdings in insertion order.
func (p *Portfolio) AllStocks() iter.Seq[Stock] {
	return func(yield func(Stock) bool) {
		for _, name := range p.order {
			if !yield(*p.holdings[name]) {
				return
			}
		}
	}
}

// StocksAsList returns a snapshot of the holdings in insertion order. It is
// safe to keep while the portfolio is modified.
func (p *Portfolio) StocksAsList() []Stock {
	list := make([]Stock, 0, len(p.order))
	for s := range p.AllStocks() {
		list = append(list, s)
	}
	return list
}

// Len returns the number of holdings.
func (p *Portfolio) Len() int { return len(p.order) }

// Value returns the market value of the portfolio. Holdings missing from the
// market are valued at their own recorded price.
func (p *Portfolio) Value(prices PriceSource) int64 {
	var total int64
	for s := range p.AllStocks() {
		if m, ok := prices.FindByName(s.name); ok {
			total += m.price * s.quantity
			continue
		}
		total += s.Value()
	}
	return total
}
