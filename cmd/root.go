package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/webcmstools/webcms-cli/config"
	"github.com/webcmstools/webcms-cli/webcms"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *webcms.Client

	// Command flags
	filterExpr string
	noCheck    bool

	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build metadata for the version command.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "webcms",
	Short: "Fetch content from a WebCMS site over its HTTP API",
	Long: `webcms is a CLI for the WebCMS content API. It fetches web content,
events, media galleries, system data and website menus, and can narrow
list payloads with a client-side filter expression.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noCheck, "no-check", false, "skip the connection test at startup")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = webcms.NewClient(cfg.WebCMS.URL, cfg.WebCMS.APIKey, logger,
		webcms.WithTimeout(time.Duration(cfg.WebCMS.Timeout)*time.Second),
		webcms.WithUserAgent("webcms-cli/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create WebCMS client: %w", err)
	}

	if !noCheck {
		if err := client.TestConnection(commandContext(cmd)); err != nil {
			return err
		}
		logger.Debug().Str("url", client.APIURL()).Msg("WebCMS connection verified")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("webcms %s (built %s)\n", version, buildTime)
	},
}

// commandContext returns the cobra context, falling back to Background
// for direct invocations in tests.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
