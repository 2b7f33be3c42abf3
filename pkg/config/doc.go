// Package config loads typed configuration from environment variables.
//
// Configuration structs declare their variables with caarlos0/env tags.
// Load parses a struct type once per process and serves later calls from a
// cache, so packages can load the same configuration independently. Before
// the first load an optional .env file is read with godotenv; variables
// already set in the environment take precedence.
//
//	var cfg flash.Config
//	config.MustLoad(&cfg)
//	fm := flash.NewFromConfig(cfg)
//
// Parsing failures wrap ErrParsingConfig. A failed type stays failed for
// the lifetime of the process.
package config
