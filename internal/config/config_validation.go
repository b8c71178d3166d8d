package config

import (
	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

// ValidateConfig performs structural validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return uikiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}
