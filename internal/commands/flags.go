package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/kvdoc/internal/core/config"
	"github.com/colonyops/kvdoc/internal/core/document"
	"github.com/colonyops/kvdoc/internal/core/editor"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// config returns the loaded config, or the defaults when none was loaded.
func (f *Flags) config() *config.Config {
	if f.Config == nil {
		def := config.DefaultConfig()
		f.Config = &def
	}
	return f.Config
}

// sessionOptions returns editor options derived from the config.
func (f *Flags) sessionOptions() editor.Options {
	return editor.Options{
		Parse: document.ParseOptions{Strict: f.config().Load.Strict},
	}
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "kvdoc", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/kvdoc/kvdoc.log
// On Linux: $XDG_STATE_HOME/kvdoc/kvdoc.log (defaults to ~/.local/state/kvdoc/kvdoc.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "kvdoc", "kvdoc.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "kvdoc", "kvdoc.log")
	}

	return filepath.Join(home, ".local", "state", "kvdoc", "kvdoc.log")
}
