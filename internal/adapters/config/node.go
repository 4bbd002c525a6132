package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modelc/internal/adapters/fs"
	"go.trai.ch/modelc/internal/adapters/logger"
	"go.trai.ch/modelc/internal/core/ports"
)

const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, hasher), nil
		},
	})
}
