package harness

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Apurer/petstore-api/internal/clients/http/petstore"
)

// Scenario is one black-box check. Suite groups scenarios that share a curl log.
type Scenario struct {
	Suite string
	Name  string
	Run   func(ctx context.Context, env *Env) error
}

// ID is the suite-qualified name used for filtering.
func (s Scenario) ID() string {
	return s.Suite + "/" + s.Name
}

// Result is the outcome of one scenario.
type Result struct {
	Scenario string
	Err      error
	Duration time.Duration
}

func (r Result) Passed() bool {
	return r.Err == nil
}

// Scenarios lists every scenario in execution order.
func Scenarios() []Scenario {
	var all []Scenario
	all = append(all, petScenarios()...)
	all = append(all, inventoryScenarios()...)
	all = append(all, orderScenarios()...)
	all = append(all, userScenarios()...)
	all = append(all, serviceScenarios()...)
	return all
}

// Select keeps the scenarios whose ID contains filter. An empty filter keeps all.
func Select(scenarios []Scenario, filter string) []Scenario {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return scenarios
	}
	var selected []Scenario
	for _, s := range scenarios {
		if strings.Contains(s.ID(), filter) {
			selected = append(selected, s)
		}
	}
	return selected
}

// Runner executes scenarios suite by suite and removes what they created after each suite.
type Runner struct {
	client   *petstore.Client
	recorder *petstore.CurlRecorder
	logger   *slog.Logger
}

// NewRunner builds a runner. recorder may be nil.
func NewRunner(client *petstore.Client, recorder *petstore.CurlRecorder, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{client: client, recorder: recorder, logger: logger}
}

// Run executes scenarios in order and returns one result per scenario.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) []Result {
	results := make([]Result, 0, len(scenarios))
	env := NewEnv(r.client)
	suite := ""
	for _, scenario := range scenarios {
		if scenario.Suite != suite {
			r.cleanup(ctx, env, suite)
			suite = scenario.Suite
			if r.recorder != nil {
				r.recorder.SetSuite(suite)
			}
		}
		start := time.Now()
		err := scenario.Run(ctx, env)
		result := Result{Scenario: scenario.ID(), Err: err, Duration: time.Since(start)}
		if err != nil {
			r.logger.Error("scenario failed", slog.String("scenario", result.Scenario), slog.String("error", err.Error()))
		} else {
			r.logger.Info("scenario passed", slog.String("scenario", result.Scenario), slog.Duration("duration", result.Duration))
		}
		results = append(results, result)
	}
	r.cleanup(ctx, env, suite)
	return results
}

func (r *Runner) cleanup(ctx context.Context, env *Env, suite string) {
	if suite == "" {
		return
	}
	if err := env.Cleanup(ctx); err != nil {
		r.logger.Warn("suite cleanup failed", slog.String("suite", suite), slog.String("error", err.Error()))
	}
}

// Summary counts results and renders failures.
func Summary(results []Result) (passed, failed int, report string) {
	var b strings.Builder
	for _, result := range results {
		if result.Passed() {
			passed++
			continue
		}
		failed++
		fmt.Fprintf(&b, "FAIL %s\n%v\n", result.Scenario, result.Err)
	}
	return passed, failed, b.String()
}
