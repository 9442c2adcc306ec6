// Package hooks runs user-provided Tengo scripts around downloads.
// Scripts live in the hooks directory, named after the hook type
// (pre-download.tengo, post-download.tengo), and see the item being
// fetched through script variables.
package hooks

// HookType represents the type of hook.
type HookType string

// Supported hook types.
const (
	PreDownload  HookType = "pre-download"
	PostDownload HookType = "post-download"
)

// Hook represents a hook script with its type and content.
type Hook struct {
	Type    HookType
	Content string
}

// Context contains information passed to hook scripts.
type Context struct {
	ItemName   string
	ItemType   string
	ItemSize   int64
	SharedLink string
	DestPath   string
	Vars       map[string]interface{}
}

// Manager defines the interface for managing hooks.
type Manager interface {
	// Execute runs the specified hook type with the given context
	Execute(hookType HookType, ctx Context) error

	// AddHook adds a new hook
	AddHook(hook Hook) error

	// RemoveHook removes a hook of the specified type
	RemoveHook(hookType HookType) error

	// HasHook checks if a hook of the specified type exists
	HasHook(hookType HookType) bool
}
