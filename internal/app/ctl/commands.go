package ctl

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Apurer/petstore-api/internal/harness"
)

func newRunCommand(opts *options) *cobra.Command {
	var filter string
	var keepLogs bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scenarios against a running API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings()
			if err != nil {
				return err
			}
			client, recorder, err := opts.client(cfg)
			if err != nil {
				return err
			}
			if recorder != nil && !keepLogs {
				if err := recorder.Clear(); err != nil {
					return fmt.Errorf("clear curl logs: %w", err)
				}
			}
			scenarios := harness.Select(harness.Scenarios(), filter)
			if len(scenarios) == 0 {
				return fmt.Errorf("no scenario matches %q", filter)
			}
			runner := harness.NewRunner(client, recorder, opts.logger(cmd.ErrOrStderr()))
			results := runner.Run(cmd.Context(), scenarios)
			for _, result := range results {
				verdict := "PASS"
				if !result.Passed() {
					verdict = "FAIL"
				}
				printf(cmd, "%s %s (%s)\n", verdict, result.Scenario, result.Duration.Round(time.Millisecond))
			}
			passed, failed, report := harness.Summary(results)
			if report != "" {
				printf(cmd, "\n%s", report)
			}
			printf(cmd, "\n%d passed, %d failed\n", passed, failed)
			if failed > 0 {
				return fmt.Errorf("%d scenario(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Only run scenarios whose suite/name contains this text")
	cmd.Flags().BoolVar(&keepLogs, "keep-logs", false, "Append to existing curl logs instead of clearing them")
	return cmd
}

func newListCommand() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, scenario := range harness.Select(harness.Scenarios(), filter) {
				printf(cmd, "%s\n", scenario.ID())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Only list scenarios whose suite/name contains this text")
	return cmd
}

func newRequestCommand(opts *options) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "request METHOD PATH",
		Short: "Send a single request and print the status and body",
		Example: `  petstorectl request GET /pet/findByStatus?status=available
  petstorectl request POST /pet --data '{"name":"Rex","category":"Dog","status":"available"}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings()
			if err != nil {
				return err
			}
			client, _, err := opts.client(cfg)
			if err != nil {
				return err
			}
			method := strings.ToUpper(args[0])
			path := args[1]
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}
			var payload any
			if data != "" {
				var raw json.RawMessage
				if err := json.Unmarshal([]byte(data), &raw); err != nil {
					return fmt.Errorf("--data must be valid JSON: %w", err)
				}
				payload = raw
			}
			resp, err := client.Do(cmd.Context(), method, path, payload, nil)
			if err != nil {
				return err
			}
			printf(cmd, "%d %s\n%s\n", resp.Status, http.StatusText(resp.Status), resp.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	return cmd
}
