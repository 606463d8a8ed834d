package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockmarket"
	"github.com/etnz/stockmarket/renderer"
	"github.com/google/subcommands"
)

// marketCmd prints the market.
type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "display the stocks on offer" }
func (*marketCmd) Usage() string {
	return `sms market

  Displays the market loaded from the stocks file, or the default market.
`
}
func (*marketCmd) SetFlags(*flag.FlagSet) {}

func (*marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	setupLogger()
	stocks, _ := OpenStocks()
	printMarkdown(renderer.MarketMarkdown(stocks.Market()))
	return subcommands.ExitSuccess
}

// importCmd replaces the stocks file with quotes from a JSON document.
type importCmd struct {
	file      string
	namePath  string
	pricePath string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import the market from a JSON quote file" }
func (*importCmd) Usage() string {
	return `sms import -f <file.json> [-name <jsonpath>] [-price <jsonpath>]

  Reads stock names and prices from a local JSON document using JSONPath
  expressions, and replaces the stocks file with them.

Usage Examples:
$ sms import -f quotes.json -name '$.quotes[*].symbol' -price '$.quotes[*].last'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON file to import")
	f.StringVar(&c.namePath, "name", "$[*].name", "JSONPath selecting the stock names")
	f.StringVar(&c.pricePath, "price", "$[*].price", "JSONPath selecting the stock prices")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	setupLogger()

	r, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	m, err := stockmarket.ImportMarketJSON(r, c.namePath, c.pricePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	if m.Len() == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid stock found in %q\n", c.file)
		return subcommands.ExitFailure
	}

	repo := stockmarket.NewStockRepository(*stocksFile)
	repo.SetMarket(m)
	if err := repo.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving stocks: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d stocks into %s\n", m.Len(), repo.Path())
	return subcommands.ExitSuccess
}
