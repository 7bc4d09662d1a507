package interfaces

import (
	"context"

	"cotafrete/internal/domain/entities"
)

// ILedgerRepository abstracts DynamoDB persistence for the carrier monthly
// financial ledger.
type ILedgerRepository interface {
	// UpsertSettlement appends a settled quotation to the carrier's bucket for
	// the entry's month, creating the bucket on first settlement and adding to
	// the running totals otherwise. Idempotent under retry: settling the same
	// quotation twice is a no-op.
	UpsertSettlement(ctx context.Context, transportadoraID string, entry entities.LedgerEntry) error

	// ListByCarrier returns the carrier's buckets, optionally filtered by
	// month reference (YYYY-MM), newest first.
	ListByCarrier(ctx context.Context, transportadoraID, mesReferencia string) ([]entities.MonthlyLedger, error)
}
