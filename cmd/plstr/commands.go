package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pavanmanishd/plstr"
)

var errUsage = errors.New("usage")

func (r *runner) stripCommand() *cli.Command {
	return &cli.Command{
		Name:      "strip",
		Usage:     "Print the input without leading and trailing whitespace",
		ArgsUsage: "[FILE]",
		Action: func(c *cli.Context) error {
			in, err := r.input(c, 0)
			if err != nil {
				return err
			}
			r.out.Append(r.arena, in.Strip())
			return r.flush(c)
		},
	}
}

func (r *runner) linesCommand() *cli.Command {
	return &cli.Command{
		Name:      "lines",
		Usage:     "Print each input line with its number",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "strip", Usage: "Strip whitespace from every line"},
			&cli.BoolFlag{Name: "skip-empty", Usage: "Leave out lines that are empty (after --strip)"},
		},
		Action: func(c *cli.Context) error {
			rest, err := r.input(c, 0)
			if err != nil {
				return err
			}
			for n := 1; len(rest) > 0; n++ {
				var line plstr.Slice
				line, rest = rest.GetLine()
				if c.Bool("strip") {
					line = line.Strip()
				}
				if c.Bool("skip-empty") && len(line) == 0 {
					continue
				}
				r.out.Appendf(r.arena, "%d\t", n)
				r.out.Append(r.arena, line)
				r.out.AppendByte(r.arena, '\n')
			}
			return r.flush(c)
		},
	}
}

func (r *runner) findCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "Print the offset of NEEDLE in the input, or -1",
		ArgsUsage: "NEEDLE [FILE]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Usage: "Print every non-overlapping offset"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("%w: find NEEDLE [FILE]", errUsage)
			}
			needle := plstr.FromString(c.Args().First())
			in, err := r.input(c, 1)
			if err != nil {
				return err
			}

			if !c.Bool("all") {
				r.out.Appendf(r.arena, "%d\n", in.Find(needle))
				return r.flush(c)
			}
			base := 0
			for len(in) > 0 {
				i := in.Find(needle)
				if i < 0 || len(needle) == 0 {
					break
				}
				r.out.Appendf(r.arena, "%d\n", base+i)
				base += i + len(needle)
				in = in.Drop(i + len(needle))
			}
			return r.flush(c)
		},
	}
}

func (r *runner) splitCommand() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "Print the fields of the input separated by SEP, one per line",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sep", Aliases: []string{"s"}, Usage: "Field separator `SEP`", Required: true},
			&cli.IntFlag{Name: "max", Usage: "Stop after `N` fields, leaving the rest unsplit (0 for no limit)"},
			&cli.BoolFlag{Name: "strip", Usage: "Strip whitespace from every field"},
		},
		Action: func(c *cli.Context) error {
			sep := c.String("sep")
			if sep == "" {
				return fmt.Errorf("%w: --sep must not be empty", errUsage)
			}
			rest, err := r.input(c, 0)
			if err != nil {
				return err
			}

			limit := c.Int("max")
			for n := 1; len(rest) > 0; n++ {
				var field plstr.Slice
				switch {
				case limit > 0 && n == limit:
					field, rest = rest, nil
				case len(sep) == 1:
					field, rest = rest.SplitChar(sep[0])
				default:
					field, rest = rest.SplitString(sep)
				}
				if c.Bool("strip") {
					field = field.Strip()
				}
				r.out.Append(r.arena, field)
				r.out.AppendByte(r.arena, '\n')
			}
			return r.flush(c)
		},
	}
}

func (r *runner) spanCommand() *cli.Command {
	return &cli.Command{
		Name:      "span",
		Usage:     "Print the length of the input prefix made of (or free of) a byte set",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "accept", Usage: "Count bytes that are in `SET`"},
			&cli.StringFlag{Name: "reject", Usage: "Count bytes that are not in `SET`"},
		},
		Action: func(c *cli.Context) error {
			if c.IsSet("accept") == c.IsSet("reject") {
				return fmt.Errorf("%w: span needs exactly one of --accept or --reject", errUsage)
			}
			in, err := r.input(c, 0)
			if err != nil {
				return err
			}
			n := in.CSpan(c.String("reject"))
			if c.IsSet("accept") {
				n = in.Span(c.String("accept"))
			}
			r.out.Appendf(r.arena, "%d\n", n)
			return r.flush(c)
		},
	}
}

func (r *runner) hexCommand() *cli.Command {
	return &cli.Command{
		Name:      "hex",
		Usage:     "Decode hex digits from the input and write the raw bytes",
		ArgsUsage: "[FILE]",
		Action: func(c *cli.Context) error {
			in, err := r.input(c, 0)
			if err != nil {
				return err
			}
			raw, err := plstr.DecodeHex(r.arena, in.Strip())
			if err != nil {
				return err
			}
			r.out.Append(r.arena, raw)
			return r.flush(c)
		},
	}
}

func (r *runner) hashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Print the 64-bit fingerprint of the input",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "lines", Usage: "Hash every line separately"},
		},
		Action: func(c *cli.Context) error {
			in, err := r.input(c, 0)
			if err != nil {
				return err
			}
			if !c.Bool("lines") {
				r.appendHash(in.Hash())
				return r.flush(c)
			}
			for rest := in; len(rest) > 0; {
				var line plstr.Slice
				line, rest = rest.GetLine()
				r.appendHash(line.Hash())
			}
			return r.flush(c)
		},
	}
}

func (r *runner) appendHash(h uint64) {
	if r.cfg.HashHex {
		r.out.Appendf(r.arena, "%016x\n", h)
		return
	}
	r.out.Appendf(r.arena, "%d\n", h)
}
