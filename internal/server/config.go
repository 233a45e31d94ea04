package server

import (
	"bufio"
	"os"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
)

type Config struct {
	// Addr is the listen address, host:port.
	Addr string

	// AllowedOrigins is passed to the CORS layer. "*" allows any origin.
	AllowedOrigins []string

	// MaxExpressionLen caps the request expression, in bytes. Longer
	// expressions are rejected before the pipeline runs.
	MaxExpressionLen int
}

func DefaultConfig() Config {
	return Config{
		Addr:             ":8547",
		AllowedOrigins:   []string{"*"},
		MaxExpressionLen: 4096,
	}
}

// LoadConfig overlays the TOML file onto cfg. Fields absent from the file
// keep their current values.
func LoadConfig(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer f.Close()

	if err := toml.NewDecoder(bufio.NewReader(f)).Decode(cfg); err != nil {
		return errors.Wrapf(err, "decode %s", file)
	}

	return nil
}
