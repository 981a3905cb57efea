package competition

import "context"

// Repository describes competition reads needed by use cases.
type Repository interface {
	List(ctx context.Context) ([]Competition, error)
	GetByID(ctx context.Context, competitionID string) (Competition, bool, error)
}
