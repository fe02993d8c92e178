package config

import (
	"path/filepath"

	"github.com/cockroachdb/errors"

	modegenerrors "github.com/thoreinstein/modegen/internal/errors"
	"github.com/thoreinstein/modegen/internal/mode"
)

// Validate checks the configuration for problems that would only surface
// mid-run otherwise.
func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.Wrap(modegenerrors.ErrInvalidConfig, "output filename is empty")
	}
	if filepath.Base(c.Output) != c.Output {
		return errors.Wrapf(modegenerrors.ErrInvalidConfig,
			"output %q must be a bare filename, not a path", c.Output)
	}

	_, err := c.DialectOverrides()
	return err
}

// DialectOverrides converts the configured dialect names into the closed
// dialect set, rejecting unknown names.
func (c *Config) DialectOverrides() (map[string]mode.Dialect, error) {
	if len(c.Dialects) == 0 {
		return nil, nil
	}

	overrides := make(map[string]mode.Dialect, len(c.Dialects))
	for filename, name := range c.Dialects {
		d, err := mode.ParseDialect(name)
		if err != nil {
			return nil, errors.Wrapf(err, "dialect for %q", filename)
		}
		overrides[filename] = d
	}

	return overrides, nil
}
