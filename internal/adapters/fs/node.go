package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/venv/internal/adapters/logger"
	"go.trai.ch/venv/internal/core/ports"
)

const (
	// ScannerNodeID is the unique identifier for the environment scanner Graft node.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
	// FilesystemNodeID is the unique identifier for the filesystem Graft node.
	FilesystemNodeID graft.ID = "adapter.fs.filesystem"
)

func init() {
	graft.Register(graft.Node[ports.Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Scanner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(log), nil
		},
	})

	graft.Register(graft.Node[ports.Filesystem]{
		ID:        FilesystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Filesystem, error) {
			return NewFilesystem(), nil
		},
	})
}
