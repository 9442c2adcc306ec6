package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/boxfetch/internal/logger"
	"github.com/glorpus-work/boxfetch/pkg/config"
	"github.com/glorpus-work/boxfetch/pkg/model"
	"github.com/glorpus-work/boxfetch/pkg/orchestrator"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	var (
		password string
		token    string
		anyHost  bool
	)

	cmd := &cobra.Command{
		Use:   "info URL",
		Short: "Show metadata for a shared link",
		Long: `Resolve a Box shared link and display the item's name, type, size
and ID without downloading anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0], password, token, anyHost)
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password for protected shared links")
	cmd.Flags().StringVarP(&token, "token", "t", "", "OAuth access token")
	cmd.Flags().BoolVar(&anyHost, "any-host", false, "Skip the Box hostname check")

	return cmd
}

func runInfo(cmd *cobra.Command, link, password, token string, anyHost bool) error {
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

	orch := buildOrchestrator(cfg, orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
		logger.Debug("resolve", logger.Fields{"phase": e.Phase, "msg": e.Msg})
	}})

	desc, err := orch.Resolve(cmd.Context(), link, orchestrator.ResolveOptions{
		Password:    password,
		AccessToken: token,
	})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Name:\t%s\n", desc.Name)
	_, _ = fmt.Fprintf(tw, "Type:\t%s\n", desc.Type)
	if desc.Size > 0 {
		_, _ = fmt.Fprintf(tw, "Size:\t%s\n", model.FormatSize(desc.Size))
	} else {
		_, _ = fmt.Fprintf(tw, "Size:\tunknown\n")
	}
	if desc.ID != "" {
		_, _ = fmt.Fprintf(tw, "ID:\t%s\n", desc.ID)
	}
	if desc.DirectDownloadURL != "" {
		_, _ = fmt.Fprintf(tw, "Direct URL:\t%s\n", desc.DirectDownloadURL)
	}
	return tw.Flush()
}
