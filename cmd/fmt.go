package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// markdownRenderer returns the function used to display markdown: glamour
// for terminals, identity with -plain.
func markdownRenderer() func(md string) (string, error) {
	identity := func(md string) (string, error) { return md, nil }
	if *plain {
		return identity
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Warn().Err(err).Msg("cannot create markdown renderer, printing raw markdown")
		return identity
	}
	return r.Render
}

// printMarkdown renders md and prints it to stdout.
func printMarkdown(md string) {
	out, err := markdownRenderer()(md)
	if err != nil {
		log.Warn().Err(err).Msg("render-markdown")
		out = md
	}
	fmt.Print(out)
}
