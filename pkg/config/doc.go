// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with github.com/caarlos0/env/v11 tags.
// The first Load call also reads a .env file from the working directory,
// when one exists, through github.com/joho/godotenv. Successfully parsed
// configs are cached per type, so repeated Load calls are cheap:
//
//	type Config struct {
//		Secret   string        `env:"JWT_SECRET,required"`
//		Lifetime time.Duration `env:"TOKEN_LIFETIME" envDefault:"30s"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Parse skips both the .env file and the cache and reads from an explicit
// variable map, which is what tests use.
package config
