// witctl is a command-line wrapper around the wit client SDK, useful for
// poking at an app's entities, intents, traits and utterances and for
// sending ad-hoc message, language and audio requests.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	wit "github.com/conversekit/wit-client"
)

var (
	flagToken   string
	flagVersion string
	flagAPIHost string
	debug       bool
)

// config is populated from WIT_* environment variables; flags take
// precedence when set.
type config struct {
	Token   string `envconfig:"TOKEN"`
	Version string `envconfig:"VERSION" default:"20240215"`
	APIHost string `envconfig:"API_HOST"`
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "witctl",
		Short: "witctl manages a Wit.ai app and sends analysis requests",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("WIT_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Bearer token (default $WIT_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&flagVersion, "version", "", "API version, yyyymmdd (default $WIT_VERSION or 20240215)")
	rootCmd.PersistentFlags().StringVar(&flagAPIHost, "api-host", "", "Base URL of the service (default $WIT_API_HOST)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newEntitiesCmd())
	rootCmd.AddCommand(newIntentsCmd())
	rootCmd.AddCommand(newTraitsCmd())
	rootCmd.AddCommand(newUtterancesCmd())
	rootCmd.AddCommand(newMessageCmd())
	rootCmd.AddCommand(newLanguageCmd())
	rootCmd.AddCommand(newDictationCmd())
	rootCmd.AddCommand(newSpeechCmd())

	return rootCmd
}

// newClient builds a client from environment config and flag overrides.
func newClient() (*wit.Client, error) {
	var cfg config
	if err := envconfig.Process("wit", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if flagToken != "" {
		cfg.Token = flagToken
	}
	if flagVersion != "" {
		cfg.Version = flagVersion
	}
	if flagAPIHost != "" {
		cfg.APIHost = flagAPIHost
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("no token: set WIT_TOKEN or pass --token")
	}

	opts := []wit.Option{}
	if cfg.APIHost != "" {
		opts = append(opts, wit.WithAPIHost(cfg.APIHost))
	}
	return wit.New(cfg.Token, cfg.Version, opts...), nil
}

// withRetry runs fn, retrying transient failures (5xx, throttling,
// transport errors) with exponential backoff. The SDK itself never
// retries; the retry policy belongs to the caller.
func withRetry(ctx context.Context, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	return backoff.Retry(func() error {
		err := fn()
		if err != nil && !wit.IsTransient(err) {
			return backoff.Permanent(err)
		}
		if err != nil {
			log.Warn().Err(err).Msg("transient failure, retrying")
		}
		return err
	}, backoff.WithContext(bo, ctx))
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
