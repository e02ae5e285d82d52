package main

import (
	"errors"
	"log"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/caarlos0/env/v11"
)

// Config holds the function settings, read from the environment.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	LocalOnly bool   `env:"LOCAL_ONLY"`
	// BigQueryProject enables loading charsets by scope when set.
	BigQueryProject string `env:"MASKGEN_BQ_PROJECT"`
	BigQueryTable   string `env:"MASKGEN_BQ_TABLE" envDefault:"maskgen.charsets"`
	MaxWords        int    `env:"MASKGEN_MAX_WORDS" envDefault:"10000"`
}

var errMaxWords = errors.New("MASKGEN_MAX_WORDS must be positive")

func parseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxWords <= 0 {
		return Config{}, errMaxWords
	}
	return cfg, nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatalf("parse env: %v\n", err)
	}

	srv := &server{maxWords: cfg.MaxWords}
	if cfg.BigQueryProject != "" {
		srv.layers = &bigQueryLayers{project: cfg.BigQueryProject, table: cfg.BigQueryTable}
	}
	funcframework.RegisterHTTPFunction("/generate-words", srv.generateWords)

	hostname := ""
	if cfg.LocalOnly {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, cfg.Port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
