// Package scheduler executes the actions of a build graph.
package scheduler

import (
	"context"
	"errors"
	"maps"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/modelc/internal/rulekey"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options controls a single Run.
type Options struct {
	// NoCache rebuilds every selected action regardless of cached state.
	NoCache bool
	// Parallelism bounds the number of actions running at once.
	// Zero selects the number of CPUs.
	Parallelism int
	// StepParallelism bounds the compile steps of one action running at once.
	// Zero runs them one at a time.
	StepParallelism int
	// BuildID stamps the stored build info. A random ID is used when empty.
	BuildID string
	// Telemetry replaces the scheduler's telemetry for this run when set.
	Telemetry ports.Telemetry
}

// Scheduler manages the execution of actions in the dependency graph.
type Scheduler struct {
	executor  ports.StepExecutor
	store     ports.BuildInfoStore
	cache     ports.ArtifactCache
	hasher    ports.FileHasher
	verifier  ports.Verifier
	telemetry ports.Telemetry

	mu     sync.RWMutex
	status map[string]domain.ActionStatus
	now    func() time.Time
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(
	executor ports.StepExecutor,
	store ports.BuildInfoStore,
	cache ports.ArtifactCache,
	hasher ports.FileHasher,
	verifier ports.Verifier,
	telemetry ports.Telemetry,
) *Scheduler {
	return &Scheduler{
		executor:  executor,
		store:     store,
		cache:     cache,
		hasher:    hasher,
		verifier:  verifier,
		telemetry: telemetry,
		status:    make(map[string]domain.ActionStatus),
		now:       time.Now,
	}
}

// Telemetry returns the telemetry used when a run does not override it.
func (s *Scheduler) Telemetry() ports.Telemetry {
	return s.telemetry
}

// Statuses returns a copy of the status of every action of the last run.
func (s *Scheduler) Statuses() map[string]domain.ActionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.status)
}

func (s *Scheduler) updateStatus(name string, status domain.ActionStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[name] = status
}

func (s *Scheduler) getStatus(name string) domain.ActionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[name]
}

// Run builds the actions selected by targets and all their dependencies.
// Failures of independent actions are joined into the returned error.
func (s *Scheduler) Run(ctx context.Context, project *ports.Project, targets []string, opts Options) error {
	if err := project.Graph.Validate(); err != nil {
		return err
	}

	selected, err := project.Graph.Select(targets)
	if err != nil {
		return err
	}

	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.NumCPU()
	}
	if opts.StepParallelism <= 0 {
		opts.StepParallelism = 1
	}
	if opts.BuildID == "" {
		opts.BuildID = uuid.NewString()
	}
	if opts.Telemetry == nil {
		opts.Telemetry = s.telemetry
	}

	state := s.newRunState(ctx, project, selected, opts)
	return state.runExecutionLoop()
}

type result struct {
	action string
	err    error
}

type runState struct {
	s         *Scheduler
	ctx       context.Context
	project   *ports.Project
	opts      Options
	actions   map[string]ports.Buildable
	inDegree  map[string]int
	ready     []string
	active    int
	resultsCh chan result
	errs      error
}

func (s *Scheduler) newRunState(
	ctx context.Context,
	project *ports.Project,
	selected map[string]bool,
	opts Options,
) *runState {
	s.mu.Lock()
	s.status = make(map[string]domain.ActionStatus, len(selected))
	s.mu.Unlock()

	actions := make(map[string]ports.Buildable, len(selected))
	inDegree := make(map[string]int, len(selected))
	for name := range selected {
		action, _ := project.Graph.Get(name)
		actions[name] = action
		inDegree[name] = len(action.Deps())
		s.updateStatus(name, domain.ActionStatusPending)
	}

	var ready []string
	for name, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, name)
		}
	}
	slices.Sort(ready)

	return &runState{
		s:         s,
		ctx:       ctx,
		project:   project,
		opts:      opts,
		actions:   actions,
		inDegree:  inDegree,
		ready:     ready,
		resultsCh: make(chan result, opts.Parallelism),
	}
}

func (state *runState) runExecutionLoop() error {
	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil && state.active == 0 {
			return errors.Join(state.errs, state.ctx.Err())
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}

	return state.errs
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.opts.Parallelism && state.ctx.Err() == nil {
		name := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(name, domain.ActionStatusRunning)

		go state.executeAction(state.actions[name])
	}
}

// executeAction completes the vertex before reporting the result, so the
// recording is finished when Run returns.
func (state *runState) executeAction(action ports.Buildable) {
	name := action.Target().FullyQualifiedName()

	res := func() result {
		ctx, vertex := state.opts.Telemetry.Record(state.ctx, name)

		cached, err := state.build(ctx, action, vertex)
		if cached {
			state.s.updateStatus(name, domain.ActionStatusCached)
			vertex.Cached()
		}
		vertex.Complete(err)
		return result{action: name, err: err}
	}()

	state.resultsCh <- res
}

func (state *runState) build(ctx context.Context, action ports.Buildable, vertex ports.Vertex) (bool, error) {
	key, err := rulekey.Compute(state.project.Resolver, state.s.hasher, action)
	if err != nil {
		return false, err
	}
	vertex.Log(domain.LogLevelDebug, "rule key "+key.String())

	if !state.opts.NoCache && state.checkCache(action, key, vertex) {
		return true, nil
	}

	steps := action.BuildSteps(ports.BuildContext{Resolver: state.project.Resolver})
	if err := state.runSteps(ctx, steps, vertex); err != nil {
		return false, err
	}

	collector := &artifactCollector{}
	action.RecordArtifacts(collector)
	artifacts := collector.Paths()

	return false, state.record(action, key, artifacts, vertex)
}

// checkCache reports whether the outputs of a previous build with the same
// rule key are in place, restoring them from the artifact cache if needed.
func (state *runState) checkCache(action ports.Buildable, key domain.RuleKey, vertex ports.Vertex) bool {
	root := state.project.Root

	info, err := state.s.store.Get(root, action.Target().FullyQualifiedName())
	if err != nil {
		vertex.Log(domain.LogLevelWarn, err.Error())
		return false
	}
	if info == nil || info.RuleKey != key {
		return false
	}

	if state.outputsMatch(info) {
		return true
	}

	if !state.s.cache.Contains(root, key) {
		return false
	}
	if err := state.s.cache.Fetch(root, key, info.Artifacts); err != nil {
		vertex.Log(domain.LogLevelWarn, err.Error())
		return false
	}
	return state.outputsMatch(info)
}

func (state *runState) outputsMatch(info *domain.BuildInfo) bool {
	root := state.project.Root

	ok, err := state.s.verifier.VerifyOutputs(root, info.Artifacts)
	if err != nil || !ok {
		return false
	}

	hash, err := state.s.hasher.ComputeOutputHash(root, info.Artifacts)
	if err != nil {
		return false
	}
	return hash == info.OutputHash
}

// runSteps executes steps in order. Consecutive shell steps are independent
// and run concurrently, any other step kind is a barrier.
func (state *runState) runSteps(ctx context.Context, steps []domain.Step, vertex ports.Vertex) error {
	for i := 0; i < len(steps); {
		if steps[i].Kind != domain.StepKindShell {
			if err := state.runStep(ctx, steps[i], vertex); err != nil {
				return err
			}
			i++
			continue
		}

		j := i
		for j < len(steps) && steps[j].Kind == domain.StepKindShell {
			j++
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(state.opts.StepParallelism)
		for _, step := range steps[i:j] {
			g.Go(func() error {
				return state.runStep(gctx, step, vertex)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		i = j
	}
	return nil
}

func (state *runState) runStep(ctx context.Context, step domain.Step, vertex ports.Vertex) error {
	vertex.Log(domain.LogLevelDebug, step.Description())
	return state.s.executor.Execute(ctx, step, vertex.Stdout(), vertex.Stderr())
}

// record persists a successful build. Artifact caching is best effort.
func (state *runState) record(action ports.Buildable, key domain.RuleKey, artifacts []string, vertex ports.Vertex) error {
	root := state.project.Root

	ok, err := state.s.verifier.VerifyOutputs(root, artifacts)
	if err != nil {
		return err
	}
	if !ok {
		return zerr.With(domain.ErrOutputMissing, "artifacts", artifacts)
	}

	outputHash, err := state.s.hasher.ComputeOutputHash(root, artifacts)
	if err != nil {
		return zerr.Wrap(err, domain.ErrOutputHashComputationFailed.Error())
	}

	if err := state.s.cache.Store(root, key, artifacts); err != nil {
		vertex.Log(domain.LogLevelWarn, err.Error())
	}

	return state.s.store.Put(root, domain.BuildInfo{
		Target:     action.Target().FullyQualifiedName(),
		RuleKey:    key,
		OutputHash: outputHash,
		Artifacts:  artifacts,
		BuildID:    state.opts.BuildID,
		Timestamp:  state.s.now(),
	})
}

func (state *runState) handleResult(res result) {
	state.active--

	if res.err != nil {
		err := zerr.With(zerr.Wrap(res.err, domain.ErrActionFailed.Error()), "target", res.action)
		state.errs = errors.Join(state.errs, err)
		state.s.updateStatus(res.action, domain.ActionStatusFailed)
		state.skipDependents(res.action)
		return
	}

	if state.s.getStatus(res.action) != domain.ActionStatusCached {
		state.s.updateStatus(res.action, domain.ActionStatusCompleted)
	}

	var unblocked []string
	for _, dep := range state.project.Graph.Dependents(res.action) {
		if _, ok := state.actions[dep]; !ok {
			continue
		}
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 {
			unblocked = append(unblocked, dep)
		}
	}
	slices.Sort(unblocked)
	state.ready = append(state.ready, unblocked...)
}

// skipDependents marks every selected transitive dependent of name as skipped.
func (state *runState) skipDependents(name string) {
	for _, dep := range state.project.Graph.Dependents(name) {
		if _, ok := state.actions[dep]; !ok {
			continue
		}
		if state.s.getStatus(dep) == domain.ActionStatusSkipped {
			continue
		}
		state.s.updateStatus(dep, domain.ActionStatusSkipped)
		state.skipDependents(dep)
	}
}

// artifactCollector implements ports.BuildableContext.
type artifactCollector struct {
	paths []string
}

func (c *artifactCollector) RecordArtifact(path string) {
	c.paths = append(c.paths, path)
}

// Paths returns the recorded artifacts sorted and deduplicated.
func (c *artifactCollector) Paths() []string {
	paths := slices.Clone(c.paths)
	slices.Sort(paths)
	return slices.Compact(paths)
}
