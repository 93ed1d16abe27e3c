package models

import (
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// AppConfig type is used to describe application config.
type AppConfig struct {
	LogFormat  string     `env:"ONETRC_LOG_FORMAT" json:"log_format" yaml:"log_format"`
	HTTPConfig HTTPConfig `json:"http"             yaml:"http"`
}

// HTTPConfig type is used to describe config for the builder HTTP API.
type HTTPConfig struct {
	ListenAddress string        `env:"ONETRC_LISTEN_ADDRESS" json:"listen_address" yaml:"listen_address"`
	ReadTimeout   time.Duration `json:"read_timeout"         yaml:"read_timeout"`
	WriteTimeout  time.Duration `json:"write_timeout"        yaml:"write_timeout"`
	IdleTimeout   time.Duration `json:"idle_timeout"         yaml:"idle_timeout"`
}

func (m *AppConfig) ParseFromFile(path string) error {
	if path != "" {
		err := DecodeFile(path, m)
		if err != nil {
			return errors.WithMessagef(err, "failed to parse app config file %q", path)
		}
	}

	err := m.PostProcess()
	if err != nil {
		return errors.WithMessagef(err, "failed to post process app config file %q", path)
	}

	return nil
}

func (m *AppConfig) PostProcess() error {
	if err := cleanenv.ReadEnv(m); err != nil {
		return errors.New(err.Error())
	}

	m.FillDefaults()

	errs := m.Validate()
	if len(errs) != 0 {
		return errors.Errorf("failed to validate app config:\n%v", parseErrsToString(errs))
	}

	return nil
}

func (m *AppConfig) FillDefaults() {
	if m.LogFormat == "" {
		m.LogFormat = "text"
	}

	m.HTTPConfig.FillDefaults()
}

func (m *AppConfig) Validate() []error {
	var errs []error

	if !slices.Contains([]string{"text", "json"}, m.LogFormat) {
		errs = append(errs, errors.Errorf("unknown log format: %s", m.LogFormat))
	}

	httpErrs := m.HTTPConfig.Validate()
	if len(httpErrs) != 0 {
		errs = append(errs, errors.New("failed to validate HTTP configuration:"))
		errs = append(errs, httpErrs...)
	}

	return errs
}

func (c *HTTPConfig) FillDefaults() {
	const (
		defaultListenAddress = ":8080"
		defaultTimeout       = 30 * time.Second
	)

	if c.ListenAddress == "" {
		c.ListenAddress = defaultListenAddress
	}

	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaultTimeout
	}

	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaultTimeout
	}

	if c.IdleTimeout == 0 {
		c.IdleTimeout = defaultTimeout
	}
}

func (c *HTTPConfig) Validate() []error {
	var errs []error

	if c.ReadTimeout < 0 {
		errs = append(errs, errors.Errorf("read timeout must not be negative, got %v", c.ReadTimeout))
	}

	if c.WriteTimeout < 0 {
		errs = append(errs, errors.Errorf("write timeout must not be negative, got %v", c.WriteTimeout))
	}

	if c.IdleTimeout < 0 {
		errs = append(errs, errors.Errorf("idle timeout must not be negative, got %v", c.IdleTimeout))
	}

	return errs
}
