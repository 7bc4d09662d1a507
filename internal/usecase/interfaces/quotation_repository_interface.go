package interfaces

import (
	"context"
	"errors"
	"time"

	"cotafrete/internal/domain/entities"
)

// ErrVersionConflict is returned when an optimistic-concurrency condition
// fails: another writer moved the aggregate between read and write.
var ErrVersionConflict = errors.New("quotation version conflict")

// SelectionCommit is the single logical unit applied when an owner accepts a
// response: promote the chosen response, demote every sibling and update the
// quotation pointer/status, all conditioned on the quotation version read by
// the caller.
type SelectionCommit struct {
	Quotation       entities.Quotation
	ChosenResponse  entities.Response
	SiblingIDs      []string
	ExpectedVersion int64
}

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByCliente(ctx context.Context, clienteID string, status entities.QuotationStatus) ([]entities.Quotation, error)
	ListAvailable(ctx context.Context, excludeUserID string, now time.Time) ([]entities.Quotation, error)

	// Update persists the aggregate conditioned on the stored version matching
	// q.Version, bumping it on success. Returns the empty entity when the
	// quotation does not exist and ErrVersionConflict on a lost race.
	Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error)

	// CommitSelection applies the accept unit of work transactionally.
	// Returns ErrVersionConflict when a concurrent accept won the race.
	CommitSelection(ctx context.Context, commit SelectionCommit) (entities.Quotation, error)
}
