package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by ApplyEnv.
const (
	EnvClientID     = "BOXFETCH_CLIENT_ID"
	EnvClientSecret = "BOXFETCH_CLIENT_SECRET"
	EnvAccessToken  = "BOXFETCH_ACCESS_TOKEN"
	EnvDestDir      = "BOXFETCH_DEST_DIR"
)

// ApplyEnv overlays environment variables onto the config. A .env file
// in the working directory is loaded first when present; variables
// already set in the process environment win over the file. The access
// token never lands in the config file, so it is returned separately.
func ApplyEnv(c *Config) (accessToken string) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv(EnvClientID); v != "" {
		c.OAuth.ClientID = v
	}
	if v := os.Getenv(EnvClientSecret); v != "" {
		c.OAuth.ClientSecret = v
	}
	if v := os.Getenv(EnvDestDir); v != "" {
		c.Settings.DestinationDir = v
	}
	return os.Getenv(EnvAccessToken)
}
