package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the tool resolver Graft node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.ToolResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolResolver, error) {
			return NewResolver(), nil
		},
	})
}
