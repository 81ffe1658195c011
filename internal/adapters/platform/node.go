package platform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the platform profile Graft node.
const NodeID graft.ID = "adapter.platform"

func init() {
	graft.Register(graft.Node[ports.PlatformProfile]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlatformProfile, error) {
			return Detect(), nil
		},
	})
}
