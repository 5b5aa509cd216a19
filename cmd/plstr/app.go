package main

import (
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/pavanmanishd/plstr"
	"github.com/pavanmanishd/plstr/arena"
	"github.com/pavanmanishd/plstr/internal/config"
	"github.com/pavanmanishd/plstr/internal/log"
)

// runner carries the state shared by every subcommand of one invocation.
type runner struct {
	cfg   *config.Config
	arena *arena.Arena
	out   plstr.Buffer
}

func newApp() *cli.App {
	r := &runner{}
	return &cli.App{
		Name:  "plstr",
		Usage: "search, split and decode byte strings without copying",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config `FILE` (default: ./plstr.yaml, $HOME/.plstr/plstr.yaml)",
			},
			&cli.IntFlag{
				Name:  "chunk-size",
				Usage: "Arena chunk size in `BYTES` (0 for the default)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "zerolog `LEVEL` for diagnostics on stderr",
			},
		},
		Before: r.setup,
		After:  r.teardown,
		Commands: []*cli.Command{
			r.stripCommand(),
			r.linesCommand(),
			r.findCommand(),
			r.splitCommand(),
			r.spanCommand(),
			r.hexCommand(),
			r.hashCommand(),
		},
	}
}

func (r *runner) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("chunk-size") {
		cfg.ChunkSize = c.Int("chunk-size")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.cfg = cfg

	log.SetOutput(zerolog.ConsoleWriter{Out: c.App.ErrWriter, NoColor: true}, cfg.Level())
	r.arena = arena.NewArena(cfg.ChunkSize)
	return nil
}

func (r *runner) teardown(c *cli.Context) error {
	if r.arena == nil {
		return nil
	}
	m := r.arena.Metrics()
	log.Debug().
		Int("in_use", m.SizeInUse).
		Int("capacity", m.Capacity).
		Int("chunks", m.NumChunks).
		Int("resizes", m.Resizes).
		Int("in_place", m.InPlaceResizes).
		Msg("arena usage")
	r.arena.Release()
	r.arena = nil
	return nil
}

// flush writes the accumulated output to the app's writer.
func (r *runner) flush(c *cli.Context) error {
	_, err := c.App.Writer.Write(r.out.Slice())
	r.out.Reset()
	return err
}
