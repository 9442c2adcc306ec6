package errors

import (
	"errors"
	"fmt"
)

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")

	// Resolution errors. The permission-class values are surfaced to the
	// user verbatim; ErrNoInfo is an expected outcome that triggers the
	// API fallback and must never abort a fetch on its own.
	ErrNoInfo           = fmt.Errorf("no download info found on shared link page")
	ErrAuthRequired     = fmt.Errorf("authentication required, please provide an access token")
	ErrPasswordRequired = fmt.Errorf("this shared link is password protected")
	ErrAccessDenied     = fmt.Errorf("access denied, the shared link may have expired")
	ErrResolveFailed    = fmt.Errorf("failed to get shared item info")

	// Download errors.
	ErrDownloadFailed    = fmt.Errorf("download failed")
	ErrNoSharedToken     = fmt.Errorf("could not extract shared name from URL")
	ErrNoFileID          = fmt.Errorf("could not determine file ID from URL")
	ErrNoRedirectURL     = fmt.Errorf("no download URL in redirect")
	ErrAllStrategies     = fmt.Errorf("could not download file, the link may require authentication")
	ErrDownloadCancelled = fmt.Errorf("download cancelled")
	ErrInvalidPath       = fmt.Errorf("invalid path")

	// OAuth errors.
	ErrTokenExchange = fmt.Errorf("token exchange failed")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
	ErrHookLoad      = fmt.Errorf("failed to load hook")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
