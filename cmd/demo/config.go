package main

import "github.com/comalice/staticcell"

// Limits caps per-worker resource use.
type Limits struct {
	MaxConns     int   `yaml:"max_conns" toml:"max_conns" json:"max_conns" env:"MAX_CONNS"`
	MaxBodyBytes int64 `yaml:"max_body_bytes" toml:"max_body_bytes" json:"max_body_bytes" env:"MAX_BODY_BYTES"`
}

// Config is the process-wide demo configuration.
type Config struct {
	Service   string   `yaml:"service" toml:"service" json:"service" env:"SERVICE"`
	Region    string   `yaml:"region" toml:"region" json:"region" env:"REGION"`
	Workers   int      `yaml:"workers" toml:"workers" json:"workers" env:"WORKERS"`
	Upstreams []string `yaml:"upstreams" toml:"upstreams" json:"upstreams" env:"UPSTREAMS"`
	Limits    Limits   `yaml:"limits" toml:"limits" json:"limits" envPrefix:"LIMITS_"`
}

var configCell staticcell.Cell[Config]

func (Config) Holder() staticcell.Ptr[Config] { return configCell.Ptr() }
