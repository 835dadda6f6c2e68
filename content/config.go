package content

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the site configuration file at the site root.
const ConfigFile = "penquinx.cfg"

// Config contains configuration data from the penquinx.cfg file.
type Config struct {
	Expires       Duration          `toml:"expires" validate:"gte=0"`
	StaticExpires Duration          `toml:"staticexpires" validate:"gte=0"`
	Headers       map[string]string `toml:"headers"`
	BasePath      string            `toml:"basepath" validate:"required,startswith=/,ne=/,ne=/docs"`
	CacheBytes    int64             `toml:"cachebytes" validate:"gte=0"`
	CacheDuration Duration          `toml:"cacheduration" validate:"gte=0"`
}

// DefaultConfig returns the settings used when penquinx.cfg is absent.
func DefaultConfig() *Config {
	return &Config{
		BasePath:      "/v1",
		CacheBytes:    8 << 20,
		CacheDuration: Duration(30 * time.Second),
	}
}

// LoadConfig reads penquinx.cfg from the root of fsys on top of the defaults.
// It is not an error if the file does not exist.
func LoadConfig(fsys fs.FS) (*Config, error) {
	cfg := DefaultConfig()
	b, err := fs.ReadFile(fsys, ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("Cannot read config file: %w", err)
	}
	err = toml.Unmarshal(b, cfg)
	if err != nil {
		return nil, fmt.Errorf("Cannot parse config file: %w", err)
	}
	if len(cfg.BasePath) > 1 && cfg.BasePath[len(cfg.BasePath)-1] == '/' {
		cfg.BasePath = cfg.BasePath[:len(cfg.BasePath)-1]
	}
	err = validator.New().Struct(cfg)
	if err != nil {
		return nil, fmt.Errorf("Invalid config file: %w", err)
	}
	return cfg, nil
}

// Duration is a time.Duration that reads and writes as text, such as "1h30m".
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() (text []byte, err error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	p, err := time.ParseDuration(string(text))
	*d = Duration(p)
	return err
}
