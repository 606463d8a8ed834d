package stockmarket

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// This file contains the text encoding of the market and of the players.
// Both are line oriented and human-readable:
//
//	stocks file:  name,price
//	players file: id,money[,name:price:quantity|name:price:quantity...]
//
// Decoding a stream skips malformed lines instead of failing the whole load.

const (
	fieldSep    = ','
	holdingsSep = '|'
	holdingSep  = ':'
)

// reserved are the characters that cannot be part of a name or an id.
const reserved = string(fieldSep) + string(holdingsSep) + string(holdingSep)

// DecodeStock decodes a market line "name,price".
func DecodeStock(line string) (Stock, error) {
	fields := strings.Split(strings.TrimSpace(line), string(fieldSep))
	if len(fields) != 2 {
		return Stock{}, fmt.Errorf("stock line %q: want 2 fields, got %d", line, len(fields))
	}
	price, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Stock{}, fmt.Errorf("stock line %q: invalid price: %w", line, err)
	}
	return NewStock(fields[0], price, 0)
}

// EncodeStock encodes a market offer as "name,price".
func EncodeStock(s Stock) string {
	return s.name + string(fieldSep) + strconv.FormatInt(s.price, 10)
}

// DecodePlayer decodes a players file line. Holding entries that cannot be
// decoded are skipped, the player is still returned.
func DecodePlayer(line string) (*Player, error) {
	fields := strings.SplitN(strings.TrimSpace(line), string(fieldSep), 3)
	if len(fields) < 2 {
		return nil, fmt.Errorf("player line %q: want at least 2 fields, got %d", line, len(fields))
	}
	money, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("player line %q: invalid money: %w", line, err)
	}
	player, err := NewPlayer(fields[0], money)
	if err != nil {
		return nil, fmt.Errorf("player line %q: %w", line, err)
	}
	if len(fields) < 3 || fields[2] == "" {
		return player, nil
	}

	for _, entry := range strings.Split(fields[2], string(holdingsSep)) {
		s, err := decodeHolding(entry)
		if err != nil {
			log.Debug().Err(err).Str("player", player.id).Msg("skip-holding")
			continue
		}
		if !player.portfolio.CanAdd(s) {
			log.Debug().Str("player", player.id).Str("stock", s.name).Msg("skip-holding-overflow")
			continue
		}
		player.portfolio.AddOrUpdate(s)
	}
	return player, nil
}

// decodeHolding decodes "name:price:quantity".
func decodeHolding(entry string) (Stock, error) {
	props := strings.Split(entry, string(holdingSep))
	if len(props) != 3 {
		return Stock{}, fmt.Errorf("holding %q: want 3 properties, got %d", entry, len(props))
	}
	price, err := strconv.ParseInt(props[1], 10, 64)
	if err != nil {
		return Stock{}, fmt.Errorf("holding %q: invalid price: %w", entry, err)
	}
	quantity, err := strconv.ParseInt(props[2], 10, 64)
	if err != nil {
		return Stock{}, fmt.Errorf("holding %q: invalid quantity: %w", entry, err)
	}
	if quantity == 0 {
		return Stock{}, fmt.Errorf("holding %q: empty holding", entry)
	}
	return NewStock(props[0], price, quantity)
}

// EncodePlayer encodes a player and its portfolio on a single line.
func EncodePlayer(p *Player) string {
	var b strings.Builder
	b.WriteString(p.id)
	b.WriteByte(fieldSep)
	b.WriteString(strconv.FormatInt(p.money, 10))
	if p.portfolio.Len() > 0 {
		b.WriteByte(fieldSep)
		b.WriteString(FileFormatter{}.Format(p.portfolio))
	}
	return b.String()
}

// DecodeMarket reads a stocks file. Malformed lines and duplicated names are
// skipped. The only error returned is a read error, along with the stocks
// decoded before it.
func DecodeMarket(r io.Reader) (*Market, error) {
	m := NewMarket()
	err := eachLine(r, func(i int, txt string) {
		s, err := DecodeStock(txt)
		if err != nil {
			log.Debug().Err(err).Int("line", i).Msg("skip-stock-line")
			return
		}
		if err := m.Add(s); err != nil {
			log.Debug().Err(err).Int("line", i).Msg("skip-stock-line")
		}
	})
	if err != nil {
		return m, fmt.Errorf("error reading stocks: %w", err)
	}
	return m, nil
}

// EncodeMarket writes the market, one stock per line.
func EncodeMarket(w io.Writer, m *Market) error {
	for _, s := range m.stocks {
		if _, err := fmt.Fprintln(w, EncodeStock(s)); err != nil {
			return fmt.Errorf("persist error: cannot write stock %q: %w", s.name, err)
		}
	}
	return nil
}

// DecodePlayers reads a players file. Malformed lines are skipped. When an
// id appears twice, the last line wins. The only error returned is a read
// error, along with the players decoded before it.
func DecodePlayers(r io.Reader) ([]*Player, error) {
	var players []*Player
	err := eachLine(r, func(i int, txt string) {
		p, err := DecodePlayer(txt)
		if err != nil {
			log.Debug().Err(err).Int("line", i).Msg("skip-player-line")
			return
		}
		players = append(players, p)
	})
	if err != nil {
		return players, fmt.Errorf("error reading players: %w", err)
	}
	return players, nil
}

// eachLine calls f with every non blank line of r, numbered from 1. Lines
// have no length limit: a player with many holdings is a single long line.
func eachLine(r io.Reader, f func(i int, line string)) error {
	br := bufio.NewReader(r)
	for i := 1; ; i++ {
		txt, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if strings.TrimSpace(txt) != "" {
			f(i, strings.TrimRight(txt, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
	}
}

// EncodePlayers writes every player, one per line.
func EncodePlayers(w io.Writer, players iter.Seq[*Player]) error {
	for p := range players {
		if _, err := fmt.Fprintln(w, EncodePlayer(p)); err != nil {
			return fmt.Errorf("persist error: cannot write player %q: %w", p.id, err)
		}
	}
	return nil
}
