package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/detector"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID},
		Run: func(ctx context.Context) (ports.Renderer, error) {
			env, err := graft.Dep[detector.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderer(nil, env.ColorProfile()), nil
		},
	})
}
