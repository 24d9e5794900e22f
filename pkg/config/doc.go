// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv, which reads .env files into the process
// environment, and github.com/caarlos0/env/v11, which parses the environment
// into struct fields annotated with env tags.
//
// # Usage
//
//	type Config struct {
//		LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
//		Timeout  time.Duration `env:"VALIDATE_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMCHECK_")); err != nil {
//		// handle error
//	}
//
// Without WithEnvFiles the default .env file is loaded when present; a
// missing default file is not an error. Explicitly listed files must exist.
package config
