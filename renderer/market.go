// Package renderer turns the simulator state into markdown, ready to be
// printed raw or rendered for a terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stockmarket"
)

// MarketMarkdown renders the market as a numbered table. Numbers are the
// 1-based indexes players type to pick a stock.
func MarketMarkdown(m *stockmarket.Market) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market\n\n")
	fmt.Fprintln(&b, "| # | Stock | Price |")
	fmt.Fprintln(&b, "|---:|:---|---:|")
	for i, s := range m.AllStocks() {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, s.Name(), Money(s.Price()))
	}
	return b.String()
}
