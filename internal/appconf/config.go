package appconf

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Environment names the operating environment of the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment converts an environment flag value into an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// Config holds all the configuration settings for the application. Values are
// read from command-line flags and the environment when the application
// starts.
type Config struct {
	Port      int         `validate:"gte=1,lte=65535"`
	Env       Environment `validate:"gte=0,lte=2"`
	ApiKeys   []string    `validate:"min=1,dive,required"`
	RateLimit int         `validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration for obviously broken values so the
// application fails at startup instead of at request time.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
