package stockmarket

import (
	"fmt"
	"math"
)

// Broker validates and settles buy and sell requests.
//
// Each call is a single in-memory state transition: on error, neither the
// player's cash nor their portfolio has changed.
type Broker struct {
	market PriceSource
}

// NewBroker returns a Broker settling sales at the prices of market.
func NewBroker(market PriceSource) *Broker {
	return &Broker{market: market}
}

// Buy purchases quantity shares of stock at the stock's price.
//
// The price is the one carried by stock, that is the offer displayed to the
// player when they chose it.
func (b *Broker) Buy(player *Player, stock Stock, quantity int64) (string, error) {
	if quantity <= 0 {
		return "", fmt.Errorf("%w, got %d", ErrInvalidQuantity, quantity)
	}
	if stock.price <= 0 || quantity > math.MaxInt64/stock.price {
		return "", fmt.Errorf("%w: cannot buy %d shares of %s", ErrInsufficientFunds, quantity, stock.name)
	}
	cost := stock.price * quantity
	if player.money < cost {
		return "", fmt.Errorf("%w: cost is %d, cash is %d", ErrInsufficientFunds, cost, player.money)
	}

	if !player.portfolio.CanAdd(Stock{name: stock.name, quantity: quantity}) {
		return "", fmt.Errorf("%w: cannot hold %d more shares of %s", ErrAmountOverflow, quantity, stock.name)
	}

	player.money -= cost
	player.portfolio.AddOrUpdate(Stock{name: stock.name, price: stock.price, quantity: quantity})
	return fmt.Sprintf("bought %d shares of %s (remaining cash: %d)", quantity, stock.name, player.money), nil
}

// Sell sells quantity shares of held, a holding of the player, at the
// current market price.
//
// The price carried by held is ignored: settlement always reads the market,
// so the player realizes the price drift since the purchase. The quantity
// sold is bounded by both held and the player's actual holding, a stale
// held never creates shares.
func (b *Broker) Sell(player *Player, held Stock, quantity int64) (string, error) {
	if quantity <= 0 {
		return "", fmt.Errorf("%w, got %d", ErrInvalidQuantity, quantity)
	}
	if quantity > held.quantity {
		return "", fmt.Errorf("%w: cannot sell %d shares of %s, holding is only %d", ErrInsufficientHoldings, quantity, held.name, held.quantity)
	}
	owned, ok := player.portfolio.FindByName(held.name)
	if !ok {
		return "", fmt.Errorf("%w: %s is not in the portfolio", ErrInsufficientHoldings, held.name)
	}
	if quantity > owned.quantity {
		return "", fmt.Errorf("%w: cannot sell %d shares of %s, holding is only %d", ErrInsufficientHoldings, quantity, held.name, owned.quantity)
	}
	offer, ok := b.market.FindByName(held.name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrStockNotFound, held.name)
	}
	if offer.price > 0 && quantity > math.MaxInt64/offer.price {
		return "", fmt.Errorf("%w: proceeds of %d shares of %s", ErrAmountOverflow, quantity, held.name)
	}
	earnings := offer.price * quantity
	if player.money > math.MaxInt64-earnings {
		return "", fmt.Errorf("%w: cash %d cannot receive %d more", ErrAmountOverflow, player.money, earnings)
	}

	player.money += earnings
	player.portfolio.Update(Stock{name: held.name, price: offer.price, quantity: owned.quantity - quantity})
	return fmt.Sprintf("sold %d shares of %s (current cash: %d)", quantity, held.name, player.money), nil
}
