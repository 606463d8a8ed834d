package renderer

import (
	"bytes"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the currency amounts are displayed in. The simulator itself
// only deals with integer units.
var Currency = money.KRW

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// Money formats an amount in Currency, with thousands separators.
func Money(amount int64) string {
	return money.New(amount, Currency).Display()
}

// Change returns the signed percentage change from paid to current, like
// "+12.50%". No change, or no reference price, is rendered "-".
func Change(paid, current int64) string {
	if paid == 0 || paid == current {
		return "-"
	}
	pct := decimal.NewFromInt(current - paid).
		Div(decimal.NewFromInt(paid)).
		Mul(decimal.NewFromInt(100))
	s := pct.StringFixed(2) + "%"
	if pct.IsPositive() {
		return "+" + s
	}
	return s
}
