// Command ngram prints the Jaccard similarity of the character n-gram sets of
// two strings, followed by both sets.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := newRootCmd(configPaths()...).Execute(); err != nil {
		log.Error().Err(err).Msg("ngram failed")
		os.Exit(1)
	}
}
