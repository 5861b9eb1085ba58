// Package ctl implements petstorectl, the command line driver for the black-box suite.
package ctl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Apurer/petstore-api/internal/clients/http/petstore"
	"github.com/Apurer/petstore-api/internal/harness"
	platformobservability "github.com/Apurer/petstore-api/internal/platform/observability"
)

type options struct {
	configPath string
	baseURL    string
	logDir     string
	logLevel   string
}

// NewRootCommand builds the petstorectl command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "petstorectl",
		Short:         "Drive the Petstore API black-box suite",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.configPath, "config", harness.DefaultConfigPath, "Harness config file (JSON or YAML)")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "API base URL, overrides base_url from the config file")
	root.PersistentFlags().StringVar(&opts.logDir, "log-dir", "", "Directory for curl logs, overrides log_dir from the config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		newRunCommand(opts),
		newListCommand(),
		newRequestCommand(opts),
	)
	return root
}

// Execute runs petstorectl with the process arguments.
func Execute(ctx context.Context, out io.Writer) error {
	return NewRootCommand(out).ExecuteContext(ctx)
}

// settings resolves the config file and flag overrides. The file is optional when
// --base-url is given.
func (o *options) settings() (harness.Config, error) {
	var cfg harness.Config
	if strings.TrimSpace(o.baseURL) == "" {
		loaded, err := harness.LoadConfig(o.configPath)
		if err != nil {
			return harness.Config{}, err
		}
		cfg = loaded
	} else {
		cfg.BaseURL = o.baseURL
		if loaded, err := harness.LoadConfig(o.configPath); err == nil {
			cfg.LogDir = loaded.LogDir
		}
	}
	if o.logDir != "" {
		cfg.LogDir = o.logDir
	}
	return cfg, nil
}

func (o *options) client(cfg harness.Config) (*petstore.Client, *petstore.CurlRecorder, error) {
	var clientOpts []petstore.Option
	var recorder *petstore.CurlRecorder
	if cfg.LogDir != "" {
		rec, err := petstore.NewCurlRecorder(cfg.LogDir)
		if err != nil {
			return nil, nil, err
		}
		recorder = rec
		clientOpts = append(clientOpts, petstore.WithCurlRecorder(recorder))
	}
	client, err := petstore.New(cfg.BaseURL, clientOpts...)
	if err != nil {
		return nil, nil, err
	}
	return client, recorder, nil
}

func (o *options) logger(w io.Writer) *slog.Logger {
	return platformobservability.NewLogger(w, o.logLevel)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
