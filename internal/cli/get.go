package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/glorpus-work/boxfetch/internal/logger"
	"github.com/glorpus-work/boxfetch/pkg/archive"
	"github.com/glorpus-work/boxfetch/pkg/config"
	"github.com/glorpus-work/boxfetch/pkg/download"
	"github.com/glorpus-work/boxfetch/pkg/errors"
	"github.com/glorpus-work/boxfetch/pkg/hooks"
	"github.com/glorpus-work/boxfetch/pkg/model"
	"github.com/glorpus-work/boxfetch/pkg/orchestrator"
)

// NewGetCmd creates the get command.
func NewGetCmd() *cobra.Command {
	var (
		password string
		token    string
		destDir  string
		extract  bool
		anyHost  bool
	)

	cmd := &cobra.Command{
		Use:   "get URL",
		Short: "Download a shared file or folder",
		Long: `Download the file or folder behind a Box shared link. Folders are
delivered as zip archives. Several download mechanisms are tried in
order until one succeeds; protected links may need --password or
--token.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args[0], password, token, destDir, extract, anyHost)
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password for protected shared links")
	cmd.Flags().StringVarP(&token, "token", "t", "", "OAuth access token")
	cmd.Flags().StringVarP(&destDir, "dest", "d", "", "Destination directory (defaults to config)")
	cmd.Flags().BoolVarP(&extract, "extract", "x", false, "Extract downloaded folder archives")
	cmd.Flags().BoolVar(&anyHost, "any-host", false, "Skip the Box hostname check")

	return cmd
}

func runGet(cmd *cobra.Command, link, password, token, destDir string, extract, anyHost bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.InitLogger(cfg.Settings.LogLevel)

	if err := validateHost(link, anyHost); err != nil {
		return err
	}

	envToken := config.ApplyEnv(cfg)
	if token == "" {
		token = envToken
	}
	if destDir == "" {
		destDir = cfg.Settings.DestinationDir
	}

	hookManager, err := loadHookManager(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	orch := buildOrchestrator(cfg, progressHooks())

	desc, err := orch.Resolve(ctx, link, orchestrator.ResolveOptions{
		Password:    password,
		AccessToken: token,
	})
	if err != nil {
		return err
	}

	printItem(desc)

	ses := download.NewSession(token)

	// A first interrupt cancels the transfer cooperatively so the
	// partial file can be reported. Stopping the handler afterwards
	// restores the default disposition, so a second interrupt kills
	// the process.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			ses.Cancel()
			signal.Stop(sigCh)
		case <-ctx.Done():
		}
	}()

	if err := hookManager.Execute(hooks.PreDownload, hookContext(desc, "")); err != nil {
		return err
	}

	res := orch.Download(ctx, ses, desc, orchestrator.DownloadOptions{
		DestDir:  destDir,
		Password: password,
	})
	fmt.Println()

	switch res.Outcome {
	case model.OutcomeCancelled:
		color.Yellow("Download cancelled")
		return nil
	case model.OutcomeFailed:
		return res.Err
	}

	color.Green("Saved to %s", res.Path)

	if err := hookManager.Execute(hooks.PostDownload, hookContext(desc, res.Path)); err != nil {
		return err
	}

	if extract && strings.HasSuffix(res.Path, ".zip") {
		extractDir := strings.TrimSuffix(res.Path, ".zip")
		if err := archive.NewManager().ExtractAll(ctx, res.Path, extractDir); err != nil {
			return errors.Wrap(err, "extraction failed")
		}
		color.Green("Extracted to %s", extractDir)
	}

	return nil
}

// progressHooks renders strategy events and a single-line progress
// counter that overwrites itself.
func progressHooks() orchestrator.Hooks {
	return orchestrator.Hooks{
		OnEvent: func(e orchestrator.Event) {
			switch e.Phase {
			case "strategy-failed":
				logger.Debug("strategy failed", logger.Fields{"reason": e.Msg})
			case "downloading":
				fmt.Printf("Downloading %s\n", e.Msg)
			default:
				logger.Debug(e.Phase, logger.Fields{"msg": e.Msg})
			}
		},
		OnProgress: func(p model.Progress) {
			if pct, ok := p.Percent(); ok {
				fmt.Printf("\r  %s / %s (%.1f%%)",
					model.FormatSize(p.BytesDownloaded), model.FormatSize(p.TotalBytes), pct)
			} else {
				fmt.Printf("\r  %s", model.FormatSize(p.BytesDownloaded))
			}
		},
	}
}

func printItem(desc *model.ItemDescriptor) {
	size := "unknown size"
	if desc.Size > 0 {
		size = model.FormatSize(desc.Size)
	}
	fmt.Printf("%s (%s, %s)\n", desc.Name, desc.Type, size)
}

func hookContext(desc *model.ItemDescriptor, destPath string) hooks.Context {
	return hooks.Context{
		ItemName:   desc.Name,
		ItemType:   desc.Type,
		ItemSize:   desc.Size,
		SharedLink: desc.SharedLink,
		DestPath:   destPath,
	}
}
