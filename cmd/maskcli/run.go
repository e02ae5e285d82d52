package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"

	"crosswarped.com/maskgen"
	"crosswarped.com/maskgen/internal/output"
	"crosswarped.com/maskgen/internal/reader"
	"crosswarped.com/maskgen/pkg/primitives"
)

var version = "dev"

func (cfg Config) mode() primitives.SymbolMode {
	if cfg.Unicode {
		return primitives.ModeUnicode
	}
	return primitives.ModeBytes
}

func (cfg Config) delimiter() output.Delimiter {
	switch {
	case cfg.NoDelim:
		return output.None
	case cfg.Zero:
		return output.NUL
	default:
		return output.Newline
	}
}

// charsetTable returns the builtin charsets with the command line definitions
// pushed over them.
func charsetTable(cfg Config, d reader.Decoder) (*primitives.Table, error) {
	t := primitives.NewDefaultTable(cfg.mode())
	for _, c := range cfg.Charsets {
		var name rune
		var symbols []rune
		var err error
		if c.Name != 0 {
			name = c.Name
			symbols, err = reader.ReadCharset(d, c.Def)
		} else {
			name, symbols, err = reader.ParseCharsetArg(d, c.Def)
		}
		if err != nil {
			return nil, err
		}
		if err := reader.AddCharset(t, name, symbols); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// wordRange returns the words to generate out of total.
func wordRange(cfg Config, total uint64) (primitives.Range, error) {
	if cfg.Job != "" {
		j, n, err := primitives.ParseJob(cfg.Job)
		if err != nil {
			return primitives.Range{}, err
		}
		return primitives.JobRange(total, j, n)
	}
	return primitives.ClampRange(total, cfg.Begin, cfg.End)
}

// Run generates the words described by cfg into stdout or the output file.
func Run(ctx context.Context, cfg Config, stdout io.Writer) error {
	if cfg.Version {
		fmt.Fprintf(stdout, "maskcli %s\n", version)
		return nil
	}

	d := reader.Decoder{Mode: cfg.mode(), NFC: cfg.NFC}
	t, err := charsetTable(cfg, d)
	if err != nil {
		return err
	}

	var gen maskgen.Generator
	var list *primitives.MaskList
	if cfg.Bruteforce {
		spec, err := reader.ReadBruteforce(d, cfg.Spec, t)
		if err != nil {
			return err
		}
		if gen, err = maskgen.NewBruteforceGenerator(spec); err != nil {
			return fmt.Errorf("%s: %w", cfg.Spec, err)
		}
	} else {
		if list, err = reader.ReadMasks(d, cfg.Spec, t); err != nil {
			return err
		}
		gen = maskgen.NewMaskListGenerator(list)
	}

	total, _, err := maskgen.Total(gen)
	if err != nil {
		return err
	}
	r, err := wordRange(cfg, total)
	if err != nil {
		return err
	}
	if cfg.Size {
		fmt.Fprintln(stdout, r.Len())
		return nil
	}

	out := stdout
	var file *os.File
	if cfg.Output != "" {
		if file, err = os.Create(cfg.Output); err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	var words iter.Seq[[]rune]
	if list != nil {
		words = maskgen.ListWords(ctx, list, r)
	} else {
		words = maskgen.Words(ctx, gen, r)
	}

	w := output.NewWriter(out, cfg.mode(), cfg.delimiter())
	for word := range words {
		if err := w.WriteWord(word); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if file != nil {
		return file.Close()
	}
	return nil
}
