package helpers

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go-physx-glue/pkg/pxmath"
)

type Config struct {
	POLICY    string  `yaml:"policy"`
	TOLERANCE float32 `yaml:"tolerance"`
	LOG_LEVEL string  `yaml:"log_level"`

	policy pxmath.Policy
}

var configInstance *Config

func SetConfig(inst *Config) { configInstance = inst }
func GetConfig() *Config     { return configInstance }

func GetConfiguredPolicy() pxmath.Policy {
	if configInstance == nil {
		return pxmath.DefaultPolicy
	}
	return configInstance.policy
}

func GetConfiguredTolerance() float32 {
	if configInstance == nil || configInstance.TOLERANCE == 0 {
		return pxmath.DefaultTolerance
	}
	return configInstance.TOLERANCE
}

func GetConfiguredLogLevel() string {
	if configInstance == nil || configInstance.LOG_LEVEL == "" {
		return "info"
	}
	return configInstance.LOG_LEVEL
}

// DecomposeOptions turns the configuration into pxmath options.
func (c *Config) DecomposeOptions() []pxmath.Option {
	return []pxmath.Option{
		pxmath.WithPolicy(c.policy),
		pxmath.WithTolerance(c.TOLERANCE),
	}
}

func DefaultConfig() *Config {
	var c Config
	c.POLICY = pxmath.DefaultPolicy.String()
	c.TOLERANCE = pxmath.DefaultTolerance
	c.LOG_LEVEL = "info"
	c.policy = pxmath.DefaultPolicy
	return &c
}

// LoadConfig reads YAML over DefaultConfig. Missing keys keep their defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate parses the policy name and checks the tolerance. It must be called
// after POLICY is changed by hand.
func (c *Config) Validate() error {
	p, err := pxmath.ParsePolicy(c.POLICY)
	if err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if c.TOLERANCE < 0 {
		return errors.Errorf("invalid config: negative tolerance %g", c.TOLERANCE)
	}
	if c.TOLERANCE == 0 {
		c.TOLERANCE = pxmath.DefaultTolerance
	}
	c.policy = p
	return nil
}
