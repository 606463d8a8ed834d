package stockmarket

import (
	"fmt"
	"strings"
)

// Player is the owner of a cash balance and of exactly one Portfolio.
type Player struct {
	id        string
	money     int64
	portfolio *Portfolio
}

// NewPlayer returns a player with an empty portfolio.
func NewPlayer(id string, money int64) (*Player, error) {
	if id == "" {
		return nil, fmt.Errorf("player id cannot be empty")
	}
	if strings.ContainsAny(id, reserved) {
		return nil, fmt.Errorf("player id %q cannot contain any of %q", id, reserved)
	}
	if money < 0 {
		return nil, fmt.Errorf("player %q money cannot be negative, got %d", id, money)
	}
	return &Player{id: id, money: money, portfolio: NewPortfolio()}, nil
}

func (p *Player) ID() string            { return p.id }
func (p *Player) Money() int64          { return p.money }
func (p *Player) Portfolio() *Portfolio { return p.portfolio }
func (p *Player) String() string        { return fmt.Sprintf("%s (cash %d)", p.id, p.money) }
