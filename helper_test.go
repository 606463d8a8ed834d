package stockmarket

import "testing"

// newTestPlayer returns a player or fails the test.
func newTestPlayer(t *testing.T, id string, money int64, holdings ...Stock) *Player {
	t.Helper()
	p, err := NewPlayer(id, money)
	if err != nil {
		t.Fatalf("NewPlayer(%q, %d): %v", id, money, err)
	}
	for _, s := range holdings {
		p.Portfolio().AddOrUpdate(s)
	}
	return p
}

// holdingsOf returns the holdings of p keyed by name.
func holdingsOf(p *Player) map[string]Stock {
	holdings := make(map[string]Stock)
	for s := range p.Portfolio().AllStocks() {
		holdings[s.Name()] = s
	}
	return holdings
}

// mustHolding returns the holding for name or fails the test.
func mustHolding(t *testing.T, p *Player, name string) Stock {
	t.Helper()
	s, ok := p.Portfolio().FindByName(name)
	if !ok {
		t.Fatalf("holding %q not found in %s's portfolio", name, p.ID())
	}
	return s
}
