package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modelc/internal/adapters/fs"
	"go.trai.ch/modelc/internal/adapters/logger"
	"go.trai.ch/modelc/internal/core/ports"
)

const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.StepExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fs.CleanerNodeID},
		Run: func(ctx context.Context) (ports.StepExecutor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cleaner, err := graft.Dep[ports.DirCleaner](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log, cleaner), nil
		},
	})
}
