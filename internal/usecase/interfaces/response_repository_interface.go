package interfaces

import (
	"context"
	"errors"

	"cotafrete/internal/domain/entities"
)

// ErrAlreadyExists is returned when a conditional create loses to an existing
// item, e.g. a duplicate bid racing past the usecase pre-check.
var ErrAlreadyExists = errors.New("item already exists")

// IResponseRepository abstracts DynamoDB persistence for Response.
//
// The response id is derived as "<cotacao_id>#<transportadora_id>", so the
// no-duplicate-bid invariant holds at the table level through the
// attribute_not_exists condition on Create.
type IResponseRepository interface {
	Create(ctx context.Context, r entities.Response) (entities.Response, error)
	GetByID(ctx context.Context, id string) (entities.Response, error)
	ListByCotacao(ctx context.Context, cotacaoID string) ([]entities.Response, error)

	// SetRejected flags the response as rejected. Calling it on an already
	// rejected response is a no-op that returns the current state.
	SetRejected(ctx context.Context, id string) (entities.Response, error)
}
