package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/kiln/internal/adapters/platform"
	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	"go.trai.ch/kiln/internal/adapters/toolchain"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			toolchain.NodeID,
			platform.NodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.ToolResolver](ctx)
			if err != nil {
				return nil, err
			}
			profile, err := graft.Dep[ports.PlatformProfile](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[ports.SourceWalker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, resolver, profile, walker, hasher, tracer, log), nil
		},
	})
}
