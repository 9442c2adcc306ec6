package config

import (
	"fmt"
	"strconv"
	"time"
)

// SetValue sets a configuration value by key.
// Supported keys:
//   - destination_dir: string - Default download directory
//   - http_timeout: duration - HTTP request timeout (e.g. 30s)
//   - hooks_dir: string - Directory holding hook scripts
//   - color_output: bool - Whether to use colored output
//   - log_level: string - Logging level (debug, info, warn, error)
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "destination_dir":
		c.Settings.DestinationDir = value
	case "http_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", key, value)
		}
		c.Settings.HTTPTimeout = d
	case "hooks_dir":
		c.Settings.HooksDir = value
	case "color_output":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		c.Settings.ColorOutput = boolVal
	case "log_level":
		c.Settings.LogLevel = value
	case "oauth.client_id":
		c.OAuth.ClientID = value
	case "oauth.client_secret":
		c.OAuth.ClientSecret = value
	case "oauth.redirect_uri":
		c.OAuth.RedirectURI = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// GetValue returns a configuration value by key as a string.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "destination_dir":
		return c.Settings.DestinationDir, nil
	case "http_timeout":
		return c.Settings.HTTPTimeout.String(), nil
	case "hooks_dir":
		return c.Settings.HooksDir, nil
	case "color_output":
		return strconv.FormatBool(c.Settings.ColorOutput), nil
	case "log_level":
		return c.Settings.LogLevel, nil
	case "oauth.client_id":
		return c.OAuth.ClientID, nil
	case "oauth.redirect_uri":
		return c.OAuth.RedirectURI, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}
