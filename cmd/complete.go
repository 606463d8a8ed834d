package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/stockmarket/config"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion: global flags
// from fs and every command with its own flags.
func Completion(fs *flag.FlagSet, cfg *config.Config) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(fs),
	}
	for _, cmds := range Commands(cfg) {
		for _, cmd := range cmds {
			cfs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
			cmd.SetFlags(cfs)
			root.Sub[cmd.Name()] = &complete.Command{Flags: flagPredictors(cfs)}
		}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

// flagPredictors guesses a predictor for each flag from its name.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			predictors[f.Name] = nil // boolean flags take no value
			return
		}
		switch {
		case f.Name == "layout":
			predictors[f.Name] = predict.Set{"classic", "table"}
		case f.Name == "log-level":
			predictors[f.Name] = predict.Set{"debug", "info", "warn", "error", "disabled"}
		case f.Name == "f":
			predictors[f.Name] = predict.Files("*.json")
		case strings.HasSuffix(f.Name, "-file"):
			predictors[f.Name] = predict.Files("*")
		default:
			predictors[f.Name] = predict.Something
		}
	})
	return predictors
}
