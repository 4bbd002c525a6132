// Package app implements the application layer for modelc.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.trai.ch/modelc/internal/adapters/telemetry"
	"go.trai.ch/modelc/internal/adapters/telemetry/progrock"
	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/modelc/internal/engine/scheduler"
	"go.trai.ch/modelc/internal/rulekey"
	"go.trai.ch/modelc/internal/tui"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	hasher       ports.FileHasher
	logger       ports.Logger
	workDir      string
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sched *scheduler.Scheduler,
	hasher ports.FileHasher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scheduler:    sched,
		hasher:       hasher,
		logger:       log,
		workDir:      ".",
	}
}

// WithWorkDir sets the directory the configuration is searched from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	NoCache bool
	// Jobs bounds the number of actions built at once. Zero selects the number of CPUs.
	Jobs int
	// StepJobs bounds the compile steps of one action running at once.
	StepJobs int
	// ProgressLog, when set, receives the build progress as JSON lines.
	ProgressLog string
	// Interactive renders live progress in the terminal instead of logging it.
	Interactive bool
}

// Run builds the specified targets and their dependencies.
func (a *App) Run(ctx context.Context, targetNames []string, opts RunOptions) error {
	project, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if len(targetNames) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	runErr := a.execute(ctx, project, targetNames, opts)
	a.logger.Info(summarize(a.scheduler.Statuses()))
	if runErr != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, runErr)
	}
	return nil
}

// execute runs the scheduler with the progress sinks selected by opts. All
// sinks are closed when it returns.
func (a *App) execute(ctx context.Context, project *ports.Project, targetNames []string, opts RunOptions) error {
	buildID := uuid.NewString()
	schedOpts := scheduler.Options{
		NoCache:         opts.NoCache,
		Parallelism:     opts.Jobs,
		StepParallelism: opts.StepJobs,
		BuildID:         buildID,
	}

	var sinks []ports.Telemetry
	if !opts.Interactive {
		sinks = append(sinks, a.scheduler.Telemetry())
	}

	if opts.ProgressLog != "" {
		journal, err := progrock.OpenJournal(opts.ProgressLog)
		if err != nil {
			return err
		}
		recorder := progrock.NewRecorder(journal, buildID)
		defer func() {
			if err := recorder.Close(); err != nil {
				a.logger.Error(err)
			}
		}()
		sinks = append(sinks, recorder)
	}

	if opts.Interactive {
		feed := tui.NewFeed()
		recorder := progrock.NewRecorder(feed, buildID)
		program := tea.NewProgram(tui.NewModel(feed),
			append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(os.Stderr)}, a.teaOptions...)...)

		done := make(chan error, 1)
		go func() {
			_, err := program.Run()
			done <- err
		}()
		defer func() {
			// Closing the feed lets the program drain the remaining updates and quit.
			_ = recorder.Close()
			if err := <-done; err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				a.logger.Error(zerr.Wrap(err, "progress display failed"))
			}
		}()
		sinks = append(sinks, recorder)
	}

	if opts.Interactive || opts.ProgressLog != "" {
		schedOpts.Telemetry = telemetry.NewTee(sinks...)
	}

	return a.scheduler.Run(ctx, project, targetNames, schedOpts)
}

func summarize(statuses map[string]domain.ActionStatus) string {
	counts := make(map[domain.ActionStatus]int)
	for _, status := range statuses {
		counts[status]++
	}
	return fmt.Sprintf("%d built, %d cached, %d failed, %d skipped",
		counts[domain.ActionStatusCompleted],
		counts[domain.ActionStatusCached],
		counts[domain.ActionStatusFailed],
		counts[domain.ActionStatusSkipped],
	)
}

// ActionSteps lists the steps of one action.
type ActionSteps struct {
	Target string
	Steps  []string
}

// Steps returns the step descriptions of the selected actions in build order
// without running anything.
func (a *App) Steps(_ context.Context, targetNames []string) ([]ActionSteps, error) {
	project, actions, err := a.selectActions(targetNames)
	if err != nil {
		return nil, err
	}

	buildCtx := ports.BuildContext{Resolver: project.Resolver}
	result := make([]ActionSteps, 0, len(actions))
	for _, action := range actions {
		steps := action.BuildSteps(buildCtx)
		descriptions := make([]string, len(steps))
		for i, step := range steps {
			descriptions[i] = step.Description()
		}
		result = append(result, ActionSteps{
			Target: action.Target().FullyQualifiedName(),
			Steps:  descriptions,
		})
	}
	return result, nil
}

// ActionRuleKey is the rule key of one action.
type ActionRuleKey struct {
	Target string
	Key    domain.RuleKey
	// Fields is only populated when requested.
	Fields []rulekey.Field
}

// RuleKeys computes the rule keys of the selected actions in build order.
func (a *App) RuleKeys(_ context.Context, targetNames []string, withFields bool) ([]ActionRuleKey, error) {
	project, actions, err := a.selectActions(targetNames)
	if err != nil {
		return nil, err
	}

	result := make([]ActionRuleKey, 0, len(actions))
	for _, action := range actions {
		key, err := rulekey.Compute(project.Resolver, a.hasher, action)
		if err != nil {
			return nil, err
		}
		entry := ActionRuleKey{Target: action.Target().FullyQualifiedName(), Key: key}
		if withFields {
			entry.Fields = rulekey.Describe(action)
		}
		result = append(result, entry)
	}
	return result, nil
}

func (a *App) selectActions(targetNames []string) (*ports.Project, []ports.Buildable, error) {
	project, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	selected, err := project.Graph.Select(targetNames)
	if err != nil {
		return nil, nil, err
	}

	var actions []ports.Buildable
	for action := range project.Graph.Walk() {
		if selected[action.Target().FullyQualifiedName()] {
			actions = append(actions, action)
		}
	}
	return project, actions, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// All also removes the artifact cache.
	All bool
}

// Clean removes generated outputs and build info.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	root, err := a.configLoader.DiscoverRoot(a.workDir)
	if err != nil {
		return err
	}

	var errs error
	remove := func(rel string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(filepath.Join(root, rel)); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)), "path", rel))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(domain.DefaultGenPath(), "generated outputs")
	remove(domain.DefaultStorePath(), "build info store")
	if options.All {
		remove(domain.DefaultArtifactCachePath(), "artifact cache")
	}

	return errs
}
