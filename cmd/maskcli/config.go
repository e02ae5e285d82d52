package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// charsetArg is a charset definition from the command line, kept in the order
// it was given. Name is 0 for "K:def" definitions.
type charsetArg struct {
	Name rune
	Def  string
}

// envConfig holds the settings that can also come from the environment.
type envConfig struct {
	Unicode bool   `env:"MASKGEN_UNICODE"`
	Output  string `env:"MASKGEN_OUTPUT"`
	Zero    bool   `env:"MASKGEN_ZERO"`
	NoDelim bool   `env:"MASKGEN_NO_DELIM"`
	NFC     bool   `env:"MASKGEN_NFC"`
}

// Config holds the maskcli configuration.
type Config struct {
	envConfig

	Bruteforce bool
	Job        string
	Begin      *uint64
	End        *uint64
	Size       bool
	Version    bool
	Charsets   []charsetArg

	// Spec is the mask, mask file or bruteforce file.
	Spec string
}

const usage = `Usage:
  maskcli [-mask] [flags] (mask|maskfile)
  maskcli -bruteforce [flags] brutefile

Generate the words described by masks, one charset per position.

Flags:
`

func uintFlag(dst **uint64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg.envConfig); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	var mask bool
	fs.BoolVar(&mask, "mask", false, "iterate through a mask or a mask file (default)")
	fs.BoolVar(&cfg.Bruteforce, "bruteforce", false, "generate the masks from a bruteforce description file")
	fs.BoolVar(&cfg.Unicode, "unicode", cfg.Unicode, "allow UTF-8 characters in the charsets and masks")
	fs.BoolVar(&cfg.NFC, "nfc", cfg.NFC, "normalize UTF-8 inputs to NFC (with -unicode)")
	fs.StringVar(&cfg.Job, "job", "", "generate the `J/N`th part of the words")
	fs.Func("begin", "start at the `N`th word, counting from 0", uintFlag(&cfg.Begin))
	fs.Func("end", "stop after the `N`th word, counting from 0", uintFlag(&cfg.End))
	fs.StringVar(&cfg.Output, "output", cfg.Output, "write the words to `FILE`")
	fs.BoolVar(&cfg.Zero, "zero", cfg.Zero, "use NUL as the word delimiter")
	fs.BoolVar(&cfg.NoDelim, "no-delim", cfg.NoDelim, "do not write any word delimiter")
	fs.BoolVar(&cfg.Size, "size", false, "print the number of words to generate and exit")
	fs.BoolVar(&cfg.Version, "version", false, "print the version and exit")
	for n := '1'; n <= '4'; n++ {
		fs.Func(string(n), fmt.Sprintf("define the charset %c as `CS`, a file or the symbols themselves", n), func(s string) error {
			cfg.Charsets = append(cfg.Charsets, charsetArg{Name: n, Def: s})
			return nil
		})
	}
	fs.Func("charset", "define the charset K as CS (`K:CS`), may be repeated", func(s string) error {
		cfg.Charsets = append(cfg.Charsets, charsetArg{Def: s})
		return nil
	})
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Version {
		return cfg, nil
	}

	if mask && cfg.Bruteforce {
		return Config{}, errors.New("-mask and -bruteforce are exclusive")
	}
	if cfg.Job != "" && (cfg.Begin != nil || cfg.End != nil) {
		return Config{}, errors.New("-job cannot be used with -begin or -end")
	}
	if fs.NArg() != 1 {
		return Config{}, fmt.Errorf("expected a single mask or file, got %d arguments", fs.NArg())
	}
	cfg.Spec = fs.Arg(0)
	return cfg, nil
}
