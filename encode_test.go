package stockmarket

import (
	"bytes"
	"maps"
	"slices"
	"strings"
	"testing"
)

func TestPlayer_RoundTrip(t *testing.T) {
	want := newTestPlayer(t, "alice", 1234,
		MustStock("TechCorp", 152, 3),
		MustStock("BioGen", 75, 10),
		MustStock("HealthPlus", 210, 1),
	)

	line := EncodePlayer(want)
	if got, wantLine := line, "alice,1234,TechCorp:152:3|BioGen:75:10|HealthPlus:210:1"; got != wantLine {
		t.Errorf("EncodePlayer() = %q, want %q", got, wantLine)
	}

	got, err := DecodePlayer(line)
	if err != nil {
		t.Fatalf("DecodePlayer(%q): %v", line, err)
	}
	if got.ID() != want.ID() || got.Money() != want.Money() {
		t.Errorf("got %v, want %v", got, want)
	}
	if !maps.Equal(holdingsOf(got), holdingsOf(want)) {
		t.Errorf("holdings: got %v, want %v", holdingsOf(got), holdingsOf(want))
	}
}

func TestEncodePlayer_EmptyPortfolio(t *testing.T) {
	p := newTestPlayer(t, "bob", 500)
	if got, want := EncodePlayer(p), "bob,500"; got != want {
		t.Errorf("EncodePlayer() = %q, want %q", got, want)
	}
}

func TestDecodePlayer(t *testing.T) {
	testCases := []struct {
		line         string
		wantErr      bool
		wantID       string
		wantMoney    int64
		wantHoldings []string
	}{
		{line: "bob,500", wantID: "bob", wantMoney: 500},
		{line: "bob,500,", wantID: "bob", wantMoney: 500},
		{line: "bob,500,BioGen:75:2", wantID: "bob", wantMoney: 500, wantHoldings: []string{"BioGen: price 75, quantity 2"}},
		{
			// Broken entries are skipped, the player survives.
			line:         "bob,500,BioGen:75:2|Broken:1|Bad:x:1|Neg:10:-1|Zero:10:0|Free:0:1",
			wantID:       "bob",
			wantMoney:    500,
			wantHoldings: []string{"BioGen: price 75, quantity 2"},
		},
		{
			// Duplicated entries merge.
			line:         "bob,500,BioGen:75:2|BioGen:80:1",
			wantID:       "bob",
			wantMoney:    500,
			wantHoldings: []string{"BioGen: price 80, quantity 3"},
		},
		{
			// A merge past the largest quantity is skipped.
			line:         "bob,500,BioGen:75:9223372036854775807|BioGen:80:1",
			wantID:       "bob",
			wantMoney:    500,
			wantHoldings: []string{"BioGen: price 75, quantity 9223372036854775807"},
		},
		{line: "bob", wantErr: true},
		{line: "", wantErr: true},
		{line: "bob,lots", wantErr: true},
		{line: "bob,-1", wantErr: true},
		{line: ",100", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			p, err := DecodePlayer(tc.line)
			if tc.wantErr {
				if err == nil {
					t.Errorf("DecodePlayer(%q) = %v, want an error", tc.line, p)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodePlayer(%q): %v", tc.line, err)
			}
			if p.ID() != tc.wantID || p.Money() != tc.wantMoney {
				t.Errorf("got %v, want %s with %d", p, tc.wantID, tc.wantMoney)
			}
			var got []string
			for s := range p.Portfolio().AllStocks() {
				got = append(got, s.String())
			}
			if !slices.Equal(got, tc.wantHoldings) {
				t.Errorf("holdings: got %q, want %q", got, tc.wantHoldings)
			}
		})
	}
}

func TestDecodeStock(t *testing.T) {
	testCases := []struct {
		line    string
		want    string
		wantErr bool
	}{
		{line: "TechCorp,152", want: "TechCorp,152"},
		{line: "TechCorp,152\r", want: "TechCorp,152"},
		{line: "TechCorp", wantErr: true},
		{line: "TechCorp,152,3", wantErr: true},
		{line: "TechCorp,abc", wantErr: true},
		{line: "TechCorp,1.5", wantErr: true},
		{line: "TechCorp,0", wantErr: true},
		{line: ",10", wantErr: true},
	}
	for _, tc := range testCases {
		s, err := DecodeStock(tc.line)
		if tc.wantErr {
			if err == nil {
				t.Errorf("DecodeStock(%q) = %v, want an error", tc.line, s)
			}
			continue
		}
		if err != nil {
			t.Errorf("DecodeStock(%q): %v", tc.line, err)
			continue
		}
		if got := EncodeStock(s); got != tc.want {
			t.Errorf("DecodeStock(%q) encodes back to %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestDecodeMarket_SkipsMalformedLines(t *testing.T) {
	input := `TechCorp,152

GreenEnergy,eighty
HealthPlus,210,1
BioGen,75
TechCorp,999
`
	m, err := DecodeMarket(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeMarket: %v", err)
	}
	var got bytes.Buffer
	if err := EncodeMarket(&got, m); err != nil {
		t.Fatalf("EncodeMarket: %v", err)
	}
	if want := "TechCorp,152\nBioGen,75\n"; got.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", got.String(), want)
	}
}

func TestPlayers_RoundTrip(t *testing.T) {
	repo := NewPlayerRepository("unused")
	repo.Add(newTestPlayer(t, "alice", 10, MustStock("BioGen", 75, 2)))
	repo.Add(newTestPlayer(t, "bob", 20))

	var buf bytes.Buffer
	if err := EncodePlayers(&buf, repo.All()); err != nil {
		t.Fatalf("EncodePlayers: %v", err)
	}
	if want := "alice,10,BioGen:75:2\nbob,20\n"; buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}

	players, err := DecodePlayers(&buf)
	if err != nil {
		t.Fatalf("DecodePlayers: %v", err)
	}
	if len(players) != 2 || players[0].ID() != "alice" || players[1].ID() != "bob" {
		t.Fatalf("got %v, want alice and bob", players)
	}
}
