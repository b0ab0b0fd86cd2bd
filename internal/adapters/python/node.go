package python

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/venv/internal/adapters/shell"
	"go.trai.ch/venv/internal/core/ports"
)

// NodeID is the unique identifier for the Python toolchain Graft node.
const NodeID graft.ID = "adapter.python"

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Toolchain, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner), nil
		},
	})
}
