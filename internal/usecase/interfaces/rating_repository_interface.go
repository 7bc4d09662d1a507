package interfaces

import (
	"context"

	"cotafrete/internal/domain/entities"
)

// IRatingRepository abstracts DynamoDB persistence for Rating.
type IRatingRepository interface {
	Create(ctx context.Context, r entities.Rating) (entities.Rating, error)

	// ListByAlvo returns every rating received by a user in one direction,
	// used to recompute the profile aggregate.
	ListByAlvo(ctx context.Context, alvoID string, direcao entities.RatingDirection) ([]entities.Rating, error)
}
