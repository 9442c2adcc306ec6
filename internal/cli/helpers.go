package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/glorpus-work/boxfetch/pkg/boxurl"
	"github.com/glorpus-work/boxfetch/pkg/config"
	"github.com/glorpus-work/boxfetch/pkg/download"
	"github.com/glorpus-work/boxfetch/pkg/fsutil"
	"github.com/glorpus-work/boxfetch/pkg/hooks"
	"github.com/glorpus-work/boxfetch/pkg/orchestrator"
	"github.com/glorpus-work/boxfetch/pkg/resolve"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration from the flag-provided path or the
// default location, then applies flag overrides.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	if configPath == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		configPath = defaultPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if NoColor != nil && *NoColor {
		cfg.Settings.ColorOutput = false
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	color.NoColor = !cfg.Settings.ColorOutput

	return cfg, nil
}

// buildOrchestrator wires the resolver and download manager into an
// orchestrator using the configured timeout.
func buildOrchestrator(cfg *config.Config, h orchestrator.Hooks) *orchestrator.Orchestrator {
	timeout := timeoutOrDefault(cfg)
	resolver := resolve.New(timeout)
	manager := download.NewManager(timeout, download.WithScraper(resolver))
	return orchestrator.New(resolver, manager, afero.NewOsFs(), h)
}

// loadHookManager reads hook scripts from the configured directory. A
// missing directory yields an empty manager.
func loadHookManager(cfg *config.Config) (hooks.Manager, error) {
	dir := cfg.Settings.HooksDir
	if dir == "" {
		defaultDir, err := fsutil.GetHooksDir()
		if err != nil {
			return nil, err
		}
		dir = defaultDir
	}
	manager := hooks.NewManager()
	if err := hooks.LoadFromDir(manager, dir); err != nil {
		return nil, err
	}
	return manager, nil
}

// validateHost rejects links that do not point at a Box host. The
// check is suffix-based so custom subdomains (acme.app.box.com) pass.
func validateHost(link string, anyHost bool) error {
	if anyHost {
		return nil
	}
	host := boxurl.Host(link)
	if host == "" {
		return fmt.Errorf("invalid URL: %s", link)
	}
	for _, allowed := range []string{"box.com", "box.net"} {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return nil
		}
	}
	return fmt.Errorf("%s does not look like a Box link (use --any-host to override)", link)
}

// timeoutOrDefault picks the HTTP timeout from config.
func timeoutOrDefault(cfg *config.Config) time.Duration {
	if cfg.Settings.HTTPTimeout > 0 {
		return cfg.Settings.HTTPTimeout
	}
	return config.DefaultHTTPTimeout
}
