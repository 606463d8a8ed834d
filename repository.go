package stockmarket

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// StockRepository persists the Market in a stocks file.
//
// It is loaded once at startup and saved once at exit. There is no locking:
// a single process owns the file for the duration of a run.
type StockRepository struct {
	path   string
	market *Market
}

// NewStockRepository returns a repository for the stocks file at path. Until
// Load is called, it holds the default market.
func NewStockRepository(path string) *StockRepository {
	return &StockRepository{path: path, market: DefaultMarket()}
}

// Path returns the stocks file path.
func (r *StockRepository) Path() string { return r.path }

// Market returns the loaded market.
func (r *StockRepository) Market() *Market { return r.market }

// SetMarket replaces the market, to be persisted by the next Save.
func (r *StockRepository) SetMarket(m *Market) { r.market = m }

// Load reads the stocks file.
//
// If the file cannot be read, or contains no valid stock, the repository
// falls back to the default market and returns an error wrapping
// ErrPersistenceUnavailable. The repository is usable in every case.
func (r *StockRepository) Load() error {
	m, err := r.decode()
	if err != nil {
		r.market = DefaultMarket()
		return err
	}
	r.market = m
	log.Info().Str("file", r.path).Int("stocks", m.Len()).Msg("load-stocks")
	return nil
}

func (r *StockRepository) decode() (*Market, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open stocks file %q: %w", ErrPersistenceUnavailable, r.path, err)
	}
	defer f.Close()

	m, err := DecodeMarket(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPersistenceUnavailable, r.path, err)
	}
	if m.Len() == 0 {
		return nil, fmt.Errorf("%w: no valid stock in %q", ErrPersistenceUnavailable, r.path)
	}
	return m, nil
}

// Save overwrites the stocks file with the current market.
func (r *StockRepository) Save() error {
	err := writeFile(r.path, func(w io.Writer) error { return EncodeMarket(w, r.market) })
	if err != nil {
		return err
	}
	log.Info().Str("file", r.path).Int("stocks", r.market.Len()).Msg("save-stocks")
	return nil
}

// PlayerRepository persists every known player in a players file.
//
// Save overwrites the whole file: the last writer wins.
type PlayerRepository struct {
	path    string
	players map[string]*Player
	order   []string
}

// NewPlayerRepository returns an empty repository for the players file at
// path.
func NewPlayerRepository(path string) *PlayerRepository {
	return &PlayerRepository{path: path, players: make(map[string]*Player)}
}

// Path returns the players file path.
func (r *PlayerRepository) Path() string { return r.path }

// Load replaces the players in memory with the content of the players file.
//
// A missing or unreadable file leaves the repository empty and returns an
// error wrapping ErrPersistenceUnavailable: the repository is usable. Only
// a missing file (fs.ErrNotExist) means there are no players yet, on any
// other error the file still holds players and must not be overwritten.
func (r *PlayerRepository) Load() error {
	r.players = make(map[string]*Player)
	r.order = nil

	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("%w: cannot open players file %q: %w", ErrPersistenceUnavailable, r.path, err)
	}
	defer f.Close()

	// Players decoded before a read error are kept.
	players, err := DecodePlayers(f)
	for _, p := range players {
		r.Add(p)
	}
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrPersistenceUnavailable, r.path, err)
	}
	log.Info().Str("file", r.path).Int("players", len(r.order)).Msg("load-players")
	return nil
}

// Save overwrites the players file with every player in memory.
func (r *PlayerRepository) Save() error {
	err := writeFile(r.path, func(w io.Writer) error { return EncodePlayers(w, r.All()) })
	if err != nil {
		return err
	}
	log.Info().Str("file", r.path).Int("players", len(r.order)).Msg("save-players")
	return nil
}

// Find returns the player with id.
func (r *PlayerRepository) Find(id string) (*Player, bool) {
	p, ok := r.players[id]
	return p, ok
}

// Add registers a player. A player with the same id is replaced, keeping its
// position.
func (r *PlayerRepository) Add(p *Player) {
	if _, exists := r.players[p.id]; !exists {
		r.order = append(r.order, p.id)
	}
	r.players[p.id] = p
}

// All iterates over the players in registration order.
func (r *PlayerRepository) All() iter.Seq[*Player] {
	return func(yield func(*Player) bool) {
		for _, id := range r.order {
			if !yield(r.players[id]) {
				return
			}
		}
	}
}

// Len returns the number of players.
func (r *PlayerRepository) Len() int { return len(r.order) }

// writeFile writes a file through a temporary file in the same folder, so
// that a failed write never truncates the previous content.
func writeFile(filename string, encode func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+"-*")
	if err != nil {
		return fmt.Errorf("persist error: cannot create file for %q: %w", filename, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("persist error: cannot create file for %q: %w", filename, err)
	}

	w := bufio.NewWriter(tmp)
	if err := encode(w); err != nil {
		tmp.Close()
		return fmt.Errorf("persist error: %q: %w", filename, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("persist error: cannot write %q: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persist error: cannot close %q: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("persist error: cannot replace %q: %w", filename, err)
	}
	return nil
}
