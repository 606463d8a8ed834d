package stockmarket

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

/*
ImportMarketJSON builds a market out of a local JSON quote document, for
instance:

	{
	    "quotes": [
	        {"symbol": "TechCorp", "last": 151.6},
	        {"symbol": "BioGen", "last": "75"}
	    ]
	}

imported with namePath "$.quotes[*].symbol" and pricePath "$.quotes[*].last".

Both paths must select lists of the same length. Prices can be numbers or
numeric strings, they are rounded to the nearest integer. Entries without a
name, with a non-positive price, or with a name already imported are skipped.
*/
func ImportMarketJSON(r io.Reader, namePath, pricePath string) (*Market, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("import error: not a correct json: %w", err)
	}

	names, err := selectList(jobj, namePath)
	if err != nil {
		return nil, err
	}
	prices, err := selectList(jobj, pricePath)
	if err != nil {
		return nil, err
	}
	if len(names) != len(prices) {
		return nil, fmt.Errorf("import error: %q selects %d names but %q selects %d prices", namePath, len(names), pricePath, len(prices))
	}

	m := NewMarket()
	for i, jname := range names {
		name, ok := jname.(string)
		if !ok {
			log.Debug().Int("entry", i).Msg("skip-import-entry")
			continue
		}
		price, err := parsePrice(prices[i])
		if err != nil {
			log.Debug().Err(err).Str("name", name).Msg("skip-import-entry")
			continue
		}
		s, err := NewStock(name, price, 0)
		if err != nil {
			log.Debug().Err(err).Msg("skip-import-entry")
			continue
		}
		if err := m.Add(s); err != nil {
			log.Debug().Err(err).Msg("skip-import-entry")
		}
	}
	return m, nil
}

// selectList evaluates path and always returns a list.
func selectList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("import error: cannot evaluate %q: %w", path, err)
	}
	// jsonpath returns a single value for a definite path, a list otherwise.
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}

func parsePrice(jval any) (int64, error) {
	var d decimal.Decimal
	switch v := jval.(type) {
	case float64:
		d = decimal.NewFromFloat(v)
	case string:
		var err error
		d, err = decimal.NewFromString(v)
		if err != nil {
			return 0, fmt.Errorf("price %q is not a number: %w", v, err)
		}
	default:
		return 0, fmt.Errorf("price %v is not a number", jval)
	}
	return d.Round(0).IntPart(), nil
}
