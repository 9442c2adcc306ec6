package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/glorpus-work/boxfetch/internal/logger"
	"github.com/glorpus-work/boxfetch/pkg/config"
	"github.com/glorpus-work/boxfetch/pkg/oauth"
)

// NewTokenCmd creates the token command.
func NewTokenCmd() *cobra.Command {
	var (
		clientID     string
		clientSecret string
		redirectURI  string
		code         string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Obtain an OAuth access token",
		Long: `Run the OAuth authorization-code flow. Without --code the command
prints the URL to open in a browser; after granting access, copy the
code from the redirect URL and re-run with --code to receive the
access token. Client credentials come from flags, the config file or
the environment.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToken(cmd, clientID, clientSecret, redirectURI, code)
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth application client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth application client secret")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "OAuth redirect URI")
	cmd.Flags().StringVar(&code, "code", "", "Authorization code from the redirect URL")

	return cmd
}

func runToken(cmd *cobra.Command, clientID, clientSecret, redirectURI, code string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.InitLogger(cfg.Settings.LogLevel)
	_ = config.ApplyEnv(cfg)

	if clientID == "" {
		clientID = cfg.OAuth.ClientID
	}
	if clientSecret == "" {
		clientSecret = cfg.OAuth.ClientSecret
	}
	if redirectURI == "" {
		redirectURI = cfg.OAuth.RedirectURI
	}
	if clientID == "" {
		return fmt.Errorf("no client ID configured (use --client-id, the config file or %s)", config.EnvClientID)
	}

	creds := oauth.Credentials{ClientID: clientID, ClientSecret: clientSecret, RedirectURI: redirectURI}
	client := oauth.New(timeoutOrDefault(cfg))

	if code == "" {
		authURL, _ := client.AuthorizationURL(creds)
		fmt.Println("Open this URL in a browser and grant access:")
		fmt.Println()
		fmt.Printf("  %s\n", authURL)
		fmt.Println()
		fmt.Println("Then re-run with --code <code from the redirect URL>.")
		return nil
	}

	if clientSecret == "" {
		return fmt.Errorf("no client secret configured (use --client-secret, the config file or %s)", config.EnvClientSecret)
	}

	tok, err := client.ExchangeCode(cmd.Context(), creds, code)
	if err != nil {
		return err
	}

	color.Green("Access token obtained (expires in %ds)", tok.ExpiresIn)
	fmt.Println(tok.AccessToken)
	if tok.RefreshToken != "" {
		logger.Debug("refresh token received")
	}
	return nil
}
