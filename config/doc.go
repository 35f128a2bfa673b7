// Package config provides configuration loading and validation for
// speechkit applications.
//
// It uses Viper to load configuration from a YAML file and environment
// variables, with .env files loaded via godotenv. Config sections follow
// the ApplyDefaults/Validate convention: defaults are applied first, then
// the whole tree is validated before use.
//
// # Usage
//
//	var cfg config.Config
//	if err := config.Load("speechkit", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
package config
