// Command plstr exposes the plstr slice algorithms on files and stdin.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/pavanmanishd/plstr/internal/log"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.SetStd(zerolog.ErrorLevel)
		log.Error().Err(err).Msg("plstr failed")
		os.Exit(1)
	}
}
