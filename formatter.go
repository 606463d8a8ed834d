package stockmarket

import (
	"fmt"
	"strings"
)

// PortfolioFormatter turns a portfolio into text. The caller picks the
// implementation for the view it needs.
type PortfolioFormatter interface {
	Format(p *Portfolio) string
}

// MenuFormatter formats holdings as a numbered list, one per line.
type MenuFormatter struct{}

func (MenuFormatter) Format(p *Portfolio) string {
	var b strings.Builder
	i := 1
	for s := range p.AllStocks() {
		fmt.Fprintf(&b, "%d. %s\n", i, s)
		i++
	}
	return b.String()
}

// FileFormatter formats holdings the way the players file stores them:
// name:price:quantity entries joined by '|'.
type FileFormatter struct{}

func (FileFormatter) Format(p *Portfolio) string {
	entries := make([]string, 0, p.Len())
	for s := range p.AllStocks() {
		entries = append(entries, fmt.Sprintf("%s%c%d%c%d", s.name, holdingSep, s.price, holdingSep, s.quantity))
	}
	return strings.Join(entries, string(holdingsSep))
}
