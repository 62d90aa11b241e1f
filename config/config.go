package config

import (
	"github.com/mitchellh/mapstructure"
)

// Config collects all configuration options.
type Config struct {
	Assembler   Assembler   `yaml:"assembler"`
	Credentials Credentials `yaml:"credentials"`
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if err := c.Assembler.Validate(); err != nil {
		return err
	}

	if err := c.Credentials.Validate(); err != nil {
		return err
	}

	return nil
}

func decode(input any, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     output,
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
