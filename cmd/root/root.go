// Package root contains the root command for the application
package root

import (
	"fmt"
	"strings"

	"fjacquet/event-budget/internal/config"
	"fjacquet/event-budget/internal/container"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/session"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	File     string
	LogLevel string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded before each command
	AppConfig *config.Config

	// AppContainer wires the dependencies for the running command
	AppContainer *container.Container

	// SharedFlags holds the persistent flag values
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "event-budget",
		Short: "Plan an event budget and explore how attendance and price move the result.",
		Long: `event-budget keeps a budget for one event in a YAML document: fixed and
variable income and expense lines plus project details. It prints totals,
projects the net result over a 5x5 grid of attendance and price changes,
exports CSV, renders a printable report and can ask Gemini for suggested lines.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(nil)

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			if SharedFlags.LogLevel != "" {
				cfg.Log.Level = strings.ToLower(SharedFlags.LogLevel)
			}
			AppConfig = cfg
			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))

			c, err := container.NewContainer(cfg,
				container.WithLogger(Log),
				container.WithDocumentPath(SharedFlags.File))
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			AppContainer = c
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if AppContainer == nil {
				return nil
			}
			return AppContainer.Close()
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.File, "file", "f", "", "Budget document (default: budget.file from config)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Override the configured log level")
}

// GetContainer returns the container built for the running command.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	return AppConfig
}

// LoadSession reads the budget document through the container.
func LoadSession() (*session.Session, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return AppContainer.LoadSession()
}

// UpdateSession loads the budget, applies fn and saves the result. Nothing is
// written when fn fails.
func UpdateSession(fn func(s *session.Session) error) (*session.Session, error) {
	s, err := LoadSession()
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	if err := AppContainer.SaveSession(s); err != nil {
		return nil, err
	}
	return s, nil
}
