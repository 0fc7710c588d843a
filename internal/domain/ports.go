package domain

// ProjectRepository manages persistence of the project document.
//
// No locking is performed: two overlapping units of work on the same
// document race, and the later writer wins. That is an accepted limitation
// of a single-user local tool.
type ProjectRepository interface {
	// Load reads the document, migrates the raw content to the current
	// schema and parses it into the typed model.
	Load() (*Project, error)

	// Save serializes the full project state and overwrites the document.
	Save(p *Project) error

	// WithProject is the scoped unit of work and the sole entry point for
	// mutations: it loads the project, passes it to fn and, unless readOnly
	// is set, saves it when fn returns nil. If fn returns an error the
	// in-memory changes are discarded and nothing is written.
	WithProject(readOnly bool, fn func(p *Project) error) error

	// Init creates a fresh document. Fails with ErrAlreadyInitialized if
	// one already exists.
	Init(p *Project) error
}

// Git provides branch operations for task branches.
type Git interface {
	// CurrentBranch returns the name of the checked-out branch.
	CurrentBranch() (string, error)

	// BranchExists checks if a local branch exists.
	BranchExists(branch string) (bool, error)

	// CreateBranch creates a branch at HEAD and checks it out.
	CreateBranch(branch string) error

	// CheckoutBranch checks out an existing branch.
	CheckoutBranch(branch string) error
}

// Logger records operational events.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Config holds the tool configuration loaded from .taskdeck.toml files.
// Fields are ordered to minimize memory padding.
type Config struct {
	Store StoreConfig `toml:"store"`
	UI    UIConfig    `toml:"ui"`
	Log   LogConfig   `toml:"log"`
}

// StoreConfig configures the document location.
type StoreConfig struct {
	File string `toml:"file"` // Document file name relative to the repo root
}

// UIConfig configures output rendering.
type UIConfig struct {
	Color string `toml:"color"` // "auto", "always" or "never"
}

// LogConfig configures the operation log.
type LogConfig struct {
	File  string `toml:"file"`  // Log file path; empty disables logging
	Level string `toml:"level"` // "debug", "info", "warn" or "error"
}

// ConfigFileName is the per-repository config file name.
const ConfigFileName = ".taskdeck.toml"

// DefaultStoreFile is the document file name used when no config overrides it.
const DefaultStoreFile = "tasks.json"

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{File: DefaultStoreFile},
		UI:    UIConfig{Color: "auto"},
		Log:   LogConfig{Level: "info"},
	}
}
