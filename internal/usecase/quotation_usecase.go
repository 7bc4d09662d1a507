package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotClient             = errors.New("only clients may create quotations")
	ErrInvalidQuotationInput = errors.New("invalid quotation payload")
	ErrInvalidTransition     = errors.New("quotation status does not allow this operation")
	ErrNotSelectedCarrier    = errors.New("only the selected carrier may perform this action")
	ErrRatingRequired        = errors.New("a rating is required before this step")
	ErrDeliveryProofRequired = errors.New("delivery proof document is required")
	ErrContestReasonRequired = errors.New("contestation reason is required")
	ErrFinalValueRequired    = errors.New("final paid value is required")
	ErrNotPremium            = errors.New("only premium clients may cancel quotations")
	ErrCancelQuotaExceeded   = errors.New("monthly cancellation quota exceeded")
	ErrConcurrentUpdate      = errors.New("quotation was updated concurrently, retry")
)

// Quotation deadline bounds, in minutes.
const (
	minCotacaoMinutos     = 15
	maxCotacaoMinutos     = 1440
	defaultCotacaoMinutos = 120
)

const defaultLimiteCancelamentos = 3

// CreateQuotationInput is the shipper's request payload.
type CreateQuotationInput struct {
	Titulo          string
	Descricao       string
	Origem          entities.RouteEndpoint
	Destino         entities.RouteEndpoint
	ProdutoNome     string
	ProdutoNCM      string
	PesoKg          float64
	ValorNotaFiscal float64
	Servicos        entities.ServiceFlags
	TempoMinutos    int
}

// RegisterDeliveryInput is the carrier's delivery-proof payload.
type RegisterDeliveryInput struct {
	DocumentoCanhoto         string
	ValorFinalTransportadora float64
}

// FinalizeInput is the client's closeout payload.
type FinalizeInput struct {
	ValorFinalCliente float64
	ProdutosAMais     bool
	Observacoes       string
}

// IQuotationUseCase owns the quotation status transitions, from creation to
// financial closeout.

type IQuotationUseCase interface {
	Create(ctx context.Context, actor entities.Principal, in CreateQuotationInput) (entities.Quotation, error)
	GetForActor(ctx context.Context, actor entities.Principal, id string) (entities.Quotation, error)
	ListByCliente(ctx context.Context, actor entities.Principal, status entities.QuotationStatus) ([]entities.Quotation, error)
	ListAvailable(ctx context.Context, actor entities.Principal) ([]entities.Quotation, error)
	Cancel(ctx context.Context, actor entities.Principal, id string) (entities.Quotation, error)
	ConfirmPayment(ctx context.Context, actor entities.Principal, id string) (entities.Quotation, error)
	ConfirmPickup(ctx context.Context, actor entities.Principal, id string) (entities.Quotation, error)
	RegisterDelivery(ctx context.Context, actor entities.Principal, id string, in RegisterDeliveryInput) (entities.Quotation, error)
	Finalize(ctx context.Context, actor entities.Principal, id string, in FinalizeInput) (entities.Quotation, error)
	Contest(ctx context.Context, actor entities.Principal, id, motivo string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo         interfaces.IQuotationRepository
	responseRepo interfaces.IResponseRepository
	profileRepo  interfaces.IProfileRepository
	ledgerRepo   interfaces.ILedgerRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	responseRepo interfaces.IResponseRepository,
	profileRepo interfaces.IProfileRepository,
	ledgerRepo interfaces.ILedgerRepository,
) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, responseRepo: responseRepo, profileRepo: profileRepo, ledgerRepo: ledgerRepo}
}

func (u *QuotationUseCase) Create(ctx context.Context, actor entities.Principal, in CreateQuotationInput) (entities.Quotation, error) {
	if actor.UserType != entities.UserTypeCliente {
		return entities.Quotation{}, ErrNotClient
	}
	if strings.TrimSpace(in.ProdutoNome) == "" || strings.TrimSpace(in.Origem.Cidade) == "" || strings.TrimSpace(in.Destino.Cidade) == "" {
		return entities.Quotation{}, ErrInvalidQuotationInput
	}

	minutos := in.TempoMinutos
	if minutos == 0 {
		minutos = defaultCotacaoMinutos
	}
	if minutos < minCotacaoMinutos {
		minutos = minCotacaoMinutos
	}
	if minutos > maxCotacaoMinutos {
		minutos = maxCotacaoMinutos
	}

	now := time.Now().UTC()
	titulo := strings.TrimSpace(in.Titulo)
	if titulo == "" {
		titulo = "COTAÇÃO " + strings.ToUpper(in.Destino.Cidade) + " - " + now.Format("02/01/2006")
	}

	q := entities.Quotation{
		ID:              uuid.NewString(),
		ClienteID:       actor.ID,
		Titulo:          titulo,
		Descricao:       strings.TrimSpace(in.Descricao),
		Origem:          in.Origem,
		Destino:         in.Destino,
		ProdutoNome:     strings.TrimSpace(in.ProdutoNome),
		ProdutoNCM:      strings.TrimSpace(in.ProdutoNCM),
		PesoKg:          in.PesoKg,
		ValorNotaFiscal: round2(in.ValorNotaFiscal),
		Servicos:        in.Servicos,
		DataHoraFim:     now.Add(time.Duration(minutos) * time.Minute),
		Status:          entities.QuotationStatusAberta,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] create success cotacao_id=%s cliente_id=%s fim=%s", created.ID, actor.ID, created.DataHoraFim.Format(time.RFC3339))
	return created, nil
}

// GetForActor returns the quotation and, when the owner opens it for the first
// time with at least one response pending, moves it to visualizada.
func (u *QuotationUseCase) GetForActor(ctx context.Context, actor entities.Principal, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	if actor.ID != q.ClienteID || q.PrimeiraVisualizacao != nil {
		return q, nil
	}
	if q.Status != entities.QuotationStatusAberta && q.Status != entities.QuotationStatusEmAndamento {
		return q, nil
	}
	if !q.IsBiddable(time.Now().UTC()) {
		return q, nil
	}

	responses, err := u.responseRepo.ListByCotacao(ctx, q.ID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(responses) == 0 {
		return q, nil
	}

	now := time.Now().UTC()
	q.Status = entities.QuotationStatusVisualizada
	q.PrimeiraVisualizacao = &now
	q.UpdatedAt = now

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			// Someone else moved the quotation; serve the fresh state.
			return u.repo.GetByID(ctx, id)
		}
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] first view cotacao_id=%s", updated.ID)
	return updated, nil
}

func (u *QuotationUseCase) ListByCliente(ctx context.Context, actor entities.Principal, status entities.QuotationStatus) ([]entities.Quotation, error) {
	return u.repo.ListByCliente(ctx, actor.ID, status)
}

func (u *QuotationUseCase) ListAvailable(ctx context.Context, actor entities.Principal) ([]entities.Quotation, error) {
	if actor.UserType != entities.UserTypeTransportadora {
		return nil, ErrNotCarrier
	}
	return u.repo.ListAvailable(ctx, actor.ID, time.Now().UTC())
}

// Cancel moves a still-biddable quotation to cancelada. Premium entitlement
// and the monthly cancellation quota are enforced; the month reference resets
// the counter on rollover.
func (u *QuotationUseCase) Cancel(ctx context.Context, actor entities.Principal, id string) (entities.Quotation, error) {
	q, err := u.loadOwned(ctx, actor, id, ActionCancel)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !q.Status.IsBiddable() {
		return entities.Quotation{}, ErrInvalidTransition
	}

	profile, err := u.profileRepo.GetClient(ctx, actor.ID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !profile.Premium {
		return entities.Quotation{}, ErrNotPremium
	}

	now := time.Now().UTC()
	mes := entities.MonthReference(now)
	realizados := profile.CancelamentosRealizadosMes
	if profile.MesReferenciaCancel != mes {
		realizados = 0
	}
	limite := profile.LimiteCancelamentosMes
	if limite <= 0 {
		limite = defaultLimiteCancelamentos
	}
	if realizados >= limite {
		return entities.Quotation{}, ErrCancelQuotaExceeded
	}

	// Consume the quota slot first: a cancel must never go through without
	// its slot being recorded.
	if err := u.profileRepo.UpdateClientCancelQuota(ctx, actor.ID, mes, realizados+1); err != nil {
		return entities.Quotation{}, err
	}

	q.Status = entities.QuotationStatusCancelada
	q.UpdatedAt = now
	updated, err := u.update(ctx, q)
	if err != nil {
		// Give the slot back; best effort, failing closed costs the client one
		// slot instead of letting the quota leak.
		if restoreErr := u.profileRepo.UpdateClientCancelQuota(ctx, actor.ID, mes, realizados); restoreErr != nil {
			log.Printf("[quotation][usecase] cancel quota restore failed cotacao_id=%s cliente_id=%s err=%v", id, actor.ID, restoreErr)
		}
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] cancel success cotacao_id=%s cliente_id=%s", updated.ID, actor.ID)
	return updated, nil
}

// ConfirmPayment acknowledges the external payment confirmation and releases
// a prepayment-gated quotation to aceita. The payment processor itself is out
// of scope; this is the hook it calls back into.
func (u *QuotationUseCase) ConfirmPayment(ctx context.Context, actor entities.Principal, id string) (entities.Quotation, error) {
	q, err := u.loadOwned(ctx, actor, id, ActionAcceptResponse)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusAguardandoPagamento {
		return entities.Quotation{}, ErrInvalidTransition
	}

	q.Status = entities.QuotationStatusAceita
	q.UpdatedAt = time.Now().UTC()
	updated, err := u.update(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] payment confirmed cotacao_id=%s", updated.ID)
	return updated, nil
}

func (u *QuotationUseCase) ConfirmPickup(ctx context.Context, actor entities.Principal, id string) (entities.Quotation, error) {
	q, selected, err := u.loadForSelectedCarrier(ctx, actor, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusAceita {
		return entities.Quotation{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	q.Status = entities.QuotationStatusEmTransito
	q.DataColetaRealizada = &now
	q.UpdatedAt = now
	updated, err := u.update(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] pickup confirmed cotacao_id=%s transportadora_id=%s", updated.ID, selected.TransportadoraID)
	return updated, nil
}

// RegisterDelivery records the delivery proof and moves the quotation to
// aguardando_confirmacao. The carrier must have rated the client first and may
// declare the final value it charged.
func (u *QuotationUseCase) RegisterDelivery(ctx context.Context, actor entities.Principal, id string, in RegisterDeliveryInput) (entities.Quotation, error) {
	q, _, err := u.loadForSelectedCarrier(ctx, actor, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusEmTransito {
		return entities.Quotation{}, ErrInvalidTransition
	}
	if strings.TrimSpace(in.DocumentoCanhoto) == "" {
		return entities.Quotation{}, ErrDeliveryProofRequired
	}
	if q.AvaliacaoClienteID == "" {
		return entities.Quotation{}, ErrRatingRequired
	}

	now := time.Now().UTC()
	q.Status = entities.QuotationStatusAguardandoConfirmacao
	q.DocumentoCanhoto = strings.TrimSpace(in.DocumentoCanhoto)
	q.DataEntregaRealizada = &now
	if in.ValorFinalTransportadora > 0 {
		q.ValorFinalTransportadora = round2(in.ValorFinalTransportadora)
	}
	q.UpdatedAt = now

	updated, err := u.update(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] delivery registered cotacao_id=%s valor_final_transportadora=%.2f", updated.ID, updated.ValorFinalTransportadora)
	return updated, nil
}

// Finalize closes the quotation financially: it computes the settlement,
// marks the quotation finalizada and applies the ledger updates. Ledger
// failures after the status write do not roll back; they surface as a
// *PartialSettlementError so operators can re-run the reconciliation.
func (u *QuotationUseCase) Finalize(ctx context.Context, actor entities.Principal, id string, in FinalizeInput) (entities.Quotation, error) {
	q, err := u.loadOwned(ctx, actor, id, ActionFinalize)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusAguardandoConfirmacao {
		return entities.Quotation{}, ErrInvalidTransition
	}
	if q.AvaliacaoTransportadoraID == "" {
		return entities.Quotation{}, ErrRatingRequired
	}
	if in.ValorFinalCliente <= 0 {
		return entities.Quotation{}, ErrFinalValueRequired
	}

	selected, err := u.responseRepo.GetByID(ctx, q.RespostaSelecionadaID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if selected.ID == "" {
		return entities.Quotation{}, ErrResponseNotFound
	}

	valorOriginal := q.ValorOriginal
	if valorOriginal == 0 {
		valorOriginal = selected.ValorTotal
	}
	valorFinalCliente := round2(in.ValorFinalCliente)

	s := ComputeSettlement(valorOriginal, valorFinalCliente, q.ValorFinalTransportadora)

	now := time.Now().UTC()
	q.Status = entities.QuotationStatusFinalizada
	q.ValorOriginal = valorOriginal
	q.ValorFinalCliente = valorFinalCliente
	q.ValorFinalApurado = round2(s.ValorFinalApurado)
	q.ValorComissao = s.ValorComissao
	q.DiferencaValor = round2(s.DiferencaCliente)
	q.EntregaProdutosAMais = in.ProdutosAMais
	q.ObservacoesCliente = strings.TrimSpace(in.Observacoes)
	q.DataHoraFinalizacao = &now
	q.UpdatedAt = now

	updated, err := u.update(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] finalized cotacao_id=%s apurado=%.2f comissao=%.2f", updated.ID, s.ValorFinalApurado, s.ValorComissao)

	if err := u.applySettlement(ctx, updated, selected, s, now); err != nil {
		return updated, &PartialSettlementError{CotacaoID: updated.ID, Err: err}
	}
	return updated, nil
}

// applySettlement is the ledger updater: profile balances/histories plus the
// idempotent monthly bucket upsert.
func (u *QuotationUseCase) applySettlement(ctx context.Context, q entities.Quotation, selected entities.Response, s Settlement, now time.Time) error {
	clientEvent := entities.ValueDeltaEvent{
		CotacaoID:     q.ID,
		ValorOriginal: q.ValorOriginal,
		ValorFinal:    q.ValorFinalCliente,
		Diferenca:     round2(s.DiferencaCliente),
		Data:          now,
	}
	switch {
	case s.CashbackCliente > 0:
		clientEvent.ValorCreditado = s.CashbackCliente
		if err := u.profileRepo.CreditClientCashback(ctx, q.ClienteID, clientEvent); err != nil {
			return err
		}
	case s.DiferencaCliente < 0:
		clientEvent.Diferenca = round2(-s.DiferencaCliente)
		if err := u.profileRepo.AppendClientValueAMenos(ctx, q.ClienteID, clientEvent); err != nil {
			return err
		}
	}

	carrierEvent := entities.ValueDeltaEvent{
		CotacaoID:     q.ID,
		ValorOriginal: q.ValorOriginal,
		ValorFinal:    q.ValorFinalTransportadora,
		Diferenca:     round2(s.DiferencaTransportadora),
		Data:          now,
	}
	switch {
	case s.CreditoTransportadora > 0:
		carrierEvent.ValorCreditado = s.CreditoTransportadora
		if err := u.profileRepo.CreditCarrierPremium(ctx, selected.TransportadoraID, carrierEvent); err != nil {
			return err
		}
	case s.DiferencaTransportadora < 0:
		carrierEvent.Diferenca = round2(-s.DiferencaTransportadora)
		if err := u.profileRepo.AppendCarrierValueAMenos(ctx, selected.TransportadoraID, carrierEvent); err != nil {
			return err
		}
	}

	return u.ledgerRepo.UpsertSettlement(ctx, selected.TransportadoraID, entities.LedgerEntry{
		CotacaoID:       q.ID,
		ValorCotacao:    q.ValorFinalApurado,
		ValorComissao:   q.ValorComissao,
		DataFinalizacao: now,
	})
}

func (u *QuotationUseCase) Contest(ctx context.Context, actor entities.Principal, id, motivo string) (entities.Quotation, error) {
	q, err := u.loadOwned(ctx, actor, id, ActionContest)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusAguardandoConfirmacao {
		return entities.Quotation{}, ErrInvalidTransition
	}
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return entities.Quotation{}, ErrContestReasonRequired
	}

	now := time.Now().UTC()
	q.Status = entities.QuotationStatusContestada
	q.Contestacao = &entities.Contestation{Motivo: motivo, DataHora: now}
	q.UpdatedAt = now

	updated, err := u.update(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] contested cotacao_id=%s", updated.ID)
	return updated, nil
}

func (u *QuotationUseCase) loadOwned(ctx context.Context, actor entities.Principal, id string, action GuardAction) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if err := Authorize(actor, action, q); err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (u *QuotationUseCase) loadForSelectedCarrier(ctx context.Context, actor entities.Principal, id string) (entities.Quotation, entities.Response, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, entities.Response{}, ErrInvalidQuotationID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, entities.Response{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, entities.Response{}, ErrQuotationNotFound
	}
	if q.RespostaSelecionadaID == "" {
		return entities.Quotation{}, entities.Response{}, ErrInvalidTransition
	}
	selected, err := u.responseRepo.GetByID(ctx, q.RespostaSelecionadaID)
	if err != nil {
		return entities.Quotation{}, entities.Response{}, err
	}
	if selected.ID == "" || selected.TransportadoraID != actor.ID {
		return entities.Quotation{}, entities.Response{}, ErrNotSelectedCarrier
	}
	return q, selected, nil
}

func (u *QuotationUseCase) update(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Quotation{}, ErrConcurrentUpdate
		}
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}
