package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modelc/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modelc/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modelc/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modelc/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modelc/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			cas.NodeID,
			cas.ArtifactCacheNodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			executor, err := graft.Dep[ports.StepExecutor](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.ArtifactCache](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(executor, store, cache, hasher, verifier, tel), nil
		},
	})
}
