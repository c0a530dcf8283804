package repository

import (
	"context"

	"github.com/mwidmann/gatetrack/internal/domain"
)

// ArchiveRepo moves the whole hierarchy into and out of the relational
// archive. Export replaces the archive content; Load rebuilds the tree.
// Round-tripping through the archive is lossless.
type ArchiveRepo interface {
	Export(ctx context.Context, h *domain.Hierarchy) error
	Load(ctx context.Context) (*domain.Hierarchy, error)
}
