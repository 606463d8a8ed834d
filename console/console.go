// Package console implements the interactive trading session: startup
// prompts, the main menu and the buy and sell flows.
//
// It only reads lines, prints markdown and messages, and delegates every
// decision to the stockmarket.Broker.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/stockmarket"
	"github.com/etnz/stockmarket/renderer"
	"github.com/rs/zerolog"
)

// ErrInvalidSelection is reported when a menu entry or a list index is out
// of range.
var ErrInvalidSelection = errors.New("invalid selection")

// Players is the player registry the session logs in against.
type Players interface {
	Find(id string) (*stockmarket.Player, bool)
	Add(p *stockmarket.Player)
}

// Layout selects the main menu.
type Layout string

const (
	// LayoutClassic: 1 player, 2 buy, 3 sell, 0 exit.
	LayoutClassic Layout = "classic"
	// LayoutTable: 1 market, 2 buy, 3 sell, 4 save and exit, 5 portfolio.
	LayoutTable Layout = "table"
)

// ParseLayout parses a layout name.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(s)); l {
	case LayoutClassic, LayoutTable:
		return l, nil
	}
	return "", fmt.Errorf("unknown layout %q, want %q or %q", s, LayoutClassic, LayoutTable)
}

// Session is one interactive run for one player.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	market  *stockmarket.Market
	players Players
	broker  *stockmarket.Broker
	layout  Layout
	render  func(md string) (string, error)
	log     zerolog.Logger

	player *stockmarket.Player
}

// Option configures a Session.
type Option func(*Session)

// WithLayout selects the main menu layout.
func WithLayout(l Layout) Option { return func(s *Session) { s.layout = l } }

// WithRenderer sets the function turning markdown into terminal output. By
// default markdown is printed as is.
func WithRenderer(render func(md string) (string, error)) Option {
	return func(s *Session) { s.render = render }
}

// WithLogger sets the session logger.
func WithLogger(l zerolog.Logger) Option { return func(s *Session) { s.log = l } }

// New returns a session reading from in and writing to out.
func New(in io.Reader, out io.Writer, market *stockmarket.Market, players Players, opts ...Option) *Session {
	s := &Session{
		in:      bufio.NewScanner(in),
		out:     out,
		market:  market,
		players: players,
		broker:  stockmarket.NewBroker(market),
		layout:  LayoutClassic,
		render:  func(md string) (string, error) { return md, nil },
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Player returns the logged in player, nil before login.
func (s *Session) Player() *stockmarket.Player { return s.player }

// Run logs the player in and serves the main menu until the player exits,
// the input ends, or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, io.EOF) {
		s.log.Info().Msg("end-of-input")
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	if err := s.login(); err != nil {
		return err
	}
	s.showPlayer()

	menu := s.menu()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu(menu)
		key, err := s.readInt("Select: ")
		if err != nil {
			return err
		}
		item, ok := menu.find(key)
		if !ok {
			s.fail(fmt.Errorf("%w: choose one of the listed numbers", ErrInvalidSelection))
			continue
		}
		if item.action == nil {
			fmt.Fprintln(s.out, "Bye.")
			return nil
		}
		if err := item.action(); err != nil {
			return err
		}
	}
}

func (s *Session) login() error {
	for {
		id, err := s.readLine("Player ID: ")
		if err != nil {
			return err
		}
		if p, ok := s.players.Find(id); ok {
			s.player = p
			s.log.Info().Str("player", id).Msg("login")
			fmt.Fprintf(s.out, "Welcome back, %s.\n", id)
			return nil
		}
		if _, err := stockmarket.NewPlayer(id, 0); err != nil {
			s.fail(err)
			continue
		}

		money, err := s.readPositive("Initial cash: ")
		if err != nil {
			return err
		}
		p, err := stockmarket.NewPlayer(id, money)
		if err != nil {
			s.fail(err)
			continue
		}
		s.players.Add(p)
		s.player = p
		s.log.Info().Str("player", id).Int64("money", money).Msg("create-player")
		return nil
	}
}

func (s *Session) showPlayer() { s.print(renderer.PlayerMarkdown(s.player, s.market)) }
func (s *Session) showMarket() { s.print(renderer.MarketMarkdown(s.market)) }

func (s *Session) buy() error {
	s.showMarket()
	i, err := s.readInt("Stock number: ")
	if err != nil {
		return err
	}
	stock, ok := s.market.FindByIndex(i - 1)
	if !ok {
		s.fail(fmt.Errorf("%w: no stock number %d", ErrInvalidSelection, i))
		return nil
	}
	quantity, err := s.readInt("Quantity: ")
	if err != nil {
		return err
	}
	msg, err := s.broker.Buy(s.player, stock, int64(quantity))
	s.report("buy", stock.Name(), quantity, msg, err)
	return nil
}

func (s *Session) sell() error {
	holdings := s.player.Portfolio().StocksAsList()
	if len(holdings) == 0 {
		fmt.Fprintln(s.out, "You have no stock to sell.")
		return nil
	}
	s.showPlayer()
	i, err := s.readInt("Stock number: ")
	if err != nil {
		return err
	}
	if i < 1 || i > len(holdings) {
		s.fail(fmt.Errorf("%w: no holding number %d", ErrInvalidSelection, i))
		return nil
	}
	held := holdings[i-1]
	quantity, err := s.readInt("Quantity: ")
	if err != nil {
		return err
	}
	msg, err := s.broker.Sell(s.player, held, int64(quantity))
	s.report("sell", held.Name(), quantity, msg, err)
	return nil
}

// report prints the broker outcome and logs it.
func (s *Session) report(op, stock string, quantity int, msg string, err error) {
	if err != nil {
		s.log.Debug().Err(err).Str("player", s.player.ID()).Str("stock", stock).Int("quantity", quantity).Msg(op + "-rejected")
		s.fail(err)
		return
	}
	s.log.Info().Str("player", s.player.ID()).Str("stock", stock).Int("quantity", quantity).Int64("money", s.player.Money()).Msg(op)
	fmt.Fprintln(s.out, "✔ "+msg)
}

func (s *Session) fail(err error) { fmt.Fprintln(s.out, "✘ "+err.Error()) }

func (s *Session) print(md string) {
	out, err := s.render(md)
	if err != nil {
		s.log.Warn().Err(err).Msg("render-markdown")
		out = md
	}
	fmt.Fprintln(s.out, out)
}

// readLine prompts and returns the next trimmed line.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("cannot read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// readInt prompts until an integer is entered.
func (s *Session) readInt(prompt string) (int, error) {
	for {
		txt, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(txt)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(s.out, "✘ %q is not a number\n", txt)
	}
}

// readPositive prompts until a strictly positive integer is entered.
func (s *Session) readPositive(prompt string) (int64, error) {
	for {
		n, err := s.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return int64(n), nil
		}
		fmt.Fprintln(s.out, "✘ enter a positive amount")
	}
}
