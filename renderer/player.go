package renderer

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/etnz/stockmarket"
)

// PlayerMarkdown renders a player's cash and numbered holdings, valued at
// the prices of the market.
func PlayerMarkdown(p *stockmarket.Player, prices stockmarket.PriceSource) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Player %s\n\n", p.ID())
	fmt.Fprintf(&b, "**Cash**: %s\n\n", Money(p.Money()))

	fmt.Fprintf(&b, "## Holdings\n\n")
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| # | Stock | Quantity | Bought | Market | Change | Value |")
		fmt.Fprintln(w, "|---:|:---|---:|---:|---:|---:|---:|")
		i := 0
		for s := range p.Portfolio().AllStocks() {
			i++
			current := s.Price()
			market := "n/a"
			if offer, ok := prices.FindByName(s.Name()); ok {
				current = offer.Price()
				market = Money(current)
			}
			fmt.Fprintf(w, "| %d | %s | %d | %s | %s | %s | %s |\n",
				i,
				s.Name(),
				s.Quantity(),
				Money(s.Price()),
				market,
				Change(s.Price(), current),
				Money(current*s.Quantity()),
			)
		}
		fmt.Fprintln(w)
		return i > 0
	})
	if p.Portfolio().Len() == 0 {
		fmt.Fprintf(&b, "_No holdings._\n\n")
	}

	value := p.Portfolio().Value(prices)
	fmt.Fprintf(&b, "**Portfolio value**: %s\n\n", Money(value))
	fmt.Fprintf(&b, "**Total**: %s\n", Money(value+p.Money()))
	return b.String()
}

// PlayersMarkdown renders a summary table of players.
func PlayersMarkdown(players iter.Seq[*stockmarket.Player], prices stockmarket.PriceSource) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Players\n\n")
	fmt.Fprintln(&b, "| Player | Cash | Holdings | Portfolio value | Total |")
	fmt.Fprintln(&b, "|:---|---:|:---|---:|---:|")
	for p := range players {
		value := p.Portfolio().Value(prices)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			p.ID(),
			Money(p.Money()),
			holdingsSummary(p.Portfolio()),
			Money(value),
			Money(value+p.Money()),
		)
	}
	return b.String()
}

// holdingsSummary lists holdings as "3 TechCorp, 1 BioGen".
func holdingsSummary(p *stockmarket.Portfolio) string {
	if p.Len() == 0 {
		return "-"
	}
	parts := make([]string, 0, p.Len())
	for s := range p.AllStocks() {
		parts = append(parts, fmt.Sprintf("%d %s", s.Quantity(), s.Name()))
	}
	return strings.Join(parts, ", ")
}
