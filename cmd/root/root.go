// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/voice-expense/internal/config"
	"fjacquet/voice-expense/internal/container"
	"fjacquet/voice-expense/internal/fileutils"
	"fjacquet/voice-expense/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	LogLevel  string
	LogFormat string
	Taxonomy  string
	Timezone  string
	AI        bool
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "voice-expense",
		Short: "A CLI tool to turn spoken expense transcripts into structured expenses.",
		Long: `voice-expense extracts a description, amount, category and date from
speech-to-text transcripts such as "I spent $15 at McDonald's".

A remote Gemini model is tried first when AI is enabled; the local
rule-based extractor is used otherwise or whenever the remote call fails.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			Teardown()
		},
	}

	// SharedFlags holds the persistent flags accessible to all commands
	SharedFlags = CommonFlags{}

	mu           sync.RWMutex
	appContainer *container.Container
	initOnce     sync.Once
)

// Init initializes the root command and all flags
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text or json)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.Taxonomy, "taxonomy", "", "Taxonomy YAML file overriding the built-in categories")
		Cmd.PersistentFlags().StringVar(&SharedFlags.Timezone, "timezone", "", "Time zone deciding what \"today\" is")
		Cmd.PersistentFlags().BoolVar(&SharedFlags.AI, "ai", false, "Try the remote Gemini extractor first (needs GEMINI_API_KEY)")
	})
}

// Setup loads the configuration, applies flag overrides and builds the container.
func Setup(cmd *cobra.Command) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	if err := ApplyFlags(cmd, cfg); err != nil {
		return err
	}

	Log = config.ConfigureLoggingFromConfig(cfg)
	logging.SetDefaultLogger(Log)
	fileutils.SetLogger(Log)

	c, err := container.NewContainer(cfg, container.WithLogger(Log))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	SetContainer(c)

	Log.Debug("Application initialized",
		logging.Field{Key: "ai_enabled", Value: cfg.AI.Enabled},
		logging.Field{Key: logging.FieldModel, Value: cfg.AI.Model})
	return nil
}

// ApplyFlags copies explicitly set persistent flags over the loaded configuration.
func ApplyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if flags.Changed("taxonomy") {
		cfg.Taxonomy.File = SharedFlags.Taxonomy
	}
	if flags.Changed("timezone") {
		cfg.Dates.Timezone = SharedFlags.Timezone
	}
	if flags.Changed("ai") {
		cfg.AI.Enabled = SharedFlags.AI
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Teardown releases the container resources.
func Teardown() {
	c := GetContainer()
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		Log.WithError(err).Warn("Failed to close application resources")
	}
}

// GetContainer returns the container built for the running command, or nil.
func GetContainer() *container.Container {
	mu.RLock()
	defer mu.RUnlock()
	return appContainer
}

// SetContainer replaces the container used by the commands.
func SetContainer(c *container.Container) {
	mu.Lock()
	appContainer = c
	mu.Unlock()
}
