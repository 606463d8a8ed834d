package stockmarket

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
)

func assertDefaultMarket(t *testing.T, m *Market) {
	t.Helper()
	want := DefaultMarket().AllStocks()
	if got := m.AllStocks(); !slices.Equal(got, want) {
		t.Errorf("got market %v, want the default market %v", got, want)
	}
}

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %q: %v", filename, err)
	}
	return filename
}

func TestStockRepository_LoadFallsBackToDefaults(t *testing.T) {
	testCases := []struct {
		name     string
		filename func(t *testing.T) string
	}{
		{name: "missing file", filename: func(t *testing.T) string { return filepath.Join(t.TempDir(), "stocks.txt") }},
		{name: "empty file", filename: func(t *testing.T) string { return writeTestFile(t, "") }},
		{name: "corrupt file", filename: func(t *testing.T) string { return writeTestFile(t, "garbage\nTechCorp;12\nBioGen,x\n") }},
		{name: "a folder", filename: func(t *testing.T) string { return t.TempDir() }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewStockRepository(tc.filename(t))
			err := repo.Load()
			if !errors.Is(err, ErrPersistenceUnavailable) {
				t.Errorf("Load() error = %v, want ErrPersistenceUnavailable", err)
			}
			assertDefaultMarket(t, repo.Market())
		})
	}
}

func TestStockRepository_LoadKeepsValidLines(t *testing.T) {
	repo := NewStockRepository(writeTestFile(t, "Acme,12\nbroken\nZeta,7\n"))
	if err := repo.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := names(repo.Market().AllStocks()), []string{"Acme", "Zeta"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStockRepository_SaveAndLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "stocks.txt")
	repo := NewStockRepository(filename)
	if err := repo.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load() error = %v, want fs.ErrNotExist", err)
	}
	if err := repo.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if want := "TechCorp,152\nGreenEnergy,88\nHealthPlus,210\nBioGen,75\n"; string(content) != want {
		t.Errorf("stocks file:\n%s\nwant:\n%s", content, want)
	}

	reloaded := NewStockRepository(filename)
	reloaded.SetMarket(NewMarket())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertDefaultMarket(t, reloaded.Market())
}

func TestPlayerRepository_MissingFile(t *testing.T) {
	repo := NewPlayerRepository(filepath.Join(t.TempDir(), "players.txt"))
	if err := repo.Load(); !errors.Is(err, ErrPersistenceUnavailable) {
		t.Errorf("Load() error = %v, want ErrPersistenceUnavailable", err)
	}
	if repo.Len() != 0 {
		t.Errorf("Len() = %d, want 0", repo.Len())
	}
	if _, ok := repo.Find("alice"); ok {
		t.Error("Find(alice) found a player in an empty repository")
	}
}

func TestPlayerRepository_SaveAndLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "players.txt")
	repo := NewPlayerRepository(filename)
	alice := newTestPlayer(t, "alice", 700, MustStock("TechCorp", 152, 3), MustStock("BioGen", 75, 1))
	repo.Add(alice)
	repo.Add(newTestPlayer(t, "bob", 50))
	if err := repo.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := NewPlayerRepository(filename)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reloaded.Len())
	}
	got, ok := reloaded.Find("alice")
	if !ok {
		t.Fatal("alice not found after reload")
	}
	if got.Money() != 700 {
		t.Errorf("money: got %d, want 700", got.Money())
	}
	if gotH, wantH := holdingsOf(got), holdingsOf(alice); len(gotH) != len(wantH) || gotH["TechCorp"] != wantH["TechCorp"] || gotH["BioGen"] != wantH["BioGen"] {
		t.Errorf("holdings: got %v, want %v", gotH, wantH)
	}
}

func TestPlayerRepository_SkipsMalformedLines(t *testing.T) {
	repo := NewPlayerRepository(writeTestFile(t, "alice,100\nlonely\nbob,many\ncarol,5,BioGen:75:1\nalice,300\n"))
	if err := repo.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	var ids []string
	for p := range repo.All() {
		ids = append(ids, p.ID())
	}
	if want := []string{"alice", "carol"}; !slices.Equal(ids, want) {
		t.Errorf("players: got %v, want %v", ids, want)
	}
	// The last line for an id wins.
	if p, _ := repo.Find("alice"); p.Money() != 300 {
		t.Errorf("alice money: got %d, want 300", p.Money())
	}
}

func TestPlayerRepository_LongLines(t *testing.T) {
	var many strings.Builder
	many.WriteString("dave,10,")
	for i := range 5000 {
		if i > 0 {
			many.WriteByte('|')
		}
		fmt.Fprintf(&many, "S%d:10:1", i)
	}
	garbage := strings.Repeat("x", 100_000)
	content := "alice,100\n" + many.String() + "\n" + garbage + "\nbob,200\n"

	repo := NewPlayerRepository(writeTestFile(t, content))
	if err := repo.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	var ids []string
	for p := range repo.All() {
		ids = append(ids, p.ID())
	}
	if want := []string{"alice", "dave", "bob"}; !slices.Equal(ids, want) {
		t.Errorf("players: got %v, want %v", ids, want)
	}
	if p, _ := repo.Find("dave"); p.Portfolio().Len() != 5000 {
		t.Errorf("dave holdings: got %d, want 5000", p.Portfolio().Len())
	}
}

func TestDecodePlayers_KeepsPlayersBeforeReadError(t *testing.T) {
	broken := errors.New("disk on fire")
	r := io.MultiReader(strings.NewReader("alice,100\nbob,200\n"), iotest.ErrReader(broken))

	players, err := DecodePlayers(r)
	if !errors.Is(err, broken) {
		t.Fatalf("DecodePlayers error: got %v, want %v", err, broken)
	}
	if len(players) != 2 {
		t.Errorf("players: got %d, want the 2 decoded before the error", len(players))
	}
}

func TestStockRepository_LongLine(t *testing.T) {
	content := "Acme,10\n" + strings.Repeat("y", 100_000) + "\nZeta,20\n"
	repo := NewStockRepository(writeTestFile(t, content))
	if err := repo.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := names(repo.Market().AllStocks()), []string{"Acme", "Zeta"}; !slices.Equal(got, want) {
		t.Errorf("names: got %v, want %v", got, want)
	}
}

func TestPlayerRepository_AddReplaces(t *testing.T) {
	repo := NewPlayerRepository("unused")
	repo.Add(newTestPlayer(t, "alice", 1))
	repo.Add(newTestPlayer(t, "bob", 2))
	repo.Add(newTestPlayer(t, "alice", 3))

	if repo.Len() != 2 {
		t.Errorf("Len() = %d, want 2", repo.Len())
	}
	if p, _ := repo.Find("alice"); p.Money() != 3 {
		t.Errorf("alice money: got %d, want 3", p.Money())
	}
}
