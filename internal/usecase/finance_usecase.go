package usecase

import (
	"context"
	"strings"

	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase/interfaces"
)

// IFinanceUseCase exposes the carrier-facing monthly ledger and both loyalty
// balances.

type IFinanceUseCase interface {
	GetCarrierLedger(ctx context.Context, actor entities.Principal, mesReferencia string) ([]entities.MonthlyLedger, error)
	GetClientProfile(ctx context.Context, actor entities.Principal) (entities.ClientProfile, error)
	GetCarrierProfile(ctx context.Context, actor entities.Principal) (entities.CarrierProfile, error)
}

type FinanceUseCase struct {
	ledgerRepo  interfaces.ILedgerRepository
	profileRepo interfaces.IProfileRepository
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(ledgerRepo interfaces.ILedgerRepository, profileRepo interfaces.IProfileRepository) *FinanceUseCase {
	return &FinanceUseCase{ledgerRepo: ledgerRepo, profileRepo: profileRepo}
}

// GetCarrierLedger returns the caller's settlement buckets, optionally scoped
// to one YYYY-MM month reference.
func (u *FinanceUseCase) GetCarrierLedger(ctx context.Context, actor entities.Principal, mesReferencia string) ([]entities.MonthlyLedger, error) {
	if actor.UserType != entities.UserTypeTransportadora {
		return nil, ErrNotCarrier
	}
	return u.ledgerRepo.ListByCarrier(ctx, actor.ID, strings.TrimSpace(mesReferencia))
}

func (u *FinanceUseCase) GetClientProfile(ctx context.Context, actor entities.Principal) (entities.ClientProfile, error) {
	if actor.UserType != entities.UserTypeCliente {
		return entities.ClientProfile{}, ErrNotAllowed
	}
	return u.profileRepo.GetClient(ctx, actor.ID)
}

func (u *FinanceUseCase) GetCarrierProfile(ctx context.Context, actor entities.Principal) (entities.CarrierProfile, error) {
	if actor.UserType != entities.UserTypeTransportadora {
		return entities.CarrierProfile{}, ErrNotCarrier
	}
	return u.profileRepo.GetCarrier(ctx, actor.ID)
}
