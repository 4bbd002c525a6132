package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modelc/internal/core/ports"
)

const (
	NodeID              graft.ID = "adapter.build_info_store"
	ArtifactCacheNodeID graft.ID = "adapter.artifact_cache"
)

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildInfoStore, error) {
			return NewStore(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactCache]{
		ID:        ArtifactCacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactCache, error) {
			return NewArtifactCache(), nil
		},
	})
}
