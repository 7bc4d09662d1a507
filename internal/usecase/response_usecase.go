package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase/interfaces"
)

var (
	ErrInvalidQuotationID      = errors.New("invalid quotation id")
	ErrInvalidResponseID       = errors.New("invalid response id")
	ErrQuotationNotFound       = errors.New("quotation not found")
	ErrResponseNotFound        = errors.New("response not found")
	ErrQuotationNotBiddable    = errors.New("quotation not available for responses")
	ErrQuotationExpired        = errors.New("quotation deadline has passed")
	ErrDuplicateResponse       = errors.New("carrier already responded to this quotation")
	ErrInvalidBidValue         = errors.New("bid value must be greater than zero")
	ErrBidValueTooHigh         = errors.New("bid value exceeds the platform ceiling")
	ErrInvalidSurcharge        = errors.New("surcharge values cannot be negative")
	ErrInvalidDeliveryDate     = errors.New("delivery date must be in the future")
	ErrDeliveryDateTooFar      = errors.New("delivery date cannot be more than 90 days out")
	ErrResponseNotInQuotation  = errors.New("response does not belong to this quotation")
	ErrResponseAlreadyAccepted = errors.New("response already accepted")
	ErrResponseRejected        = errors.New("response was rejected")
	ErrCannotRejectAccepted    = errors.New("cannot reject an accepted response")
	ErrAcceptConflict          = errors.New("another response was accepted concurrently")
)

// Platform bid limits.
const (
	maxBidValue        = 1_000_000.0
	maxDeliveryDaysOut = 90
	maxDescricaoLength = 1000
)

// SubmitResponseInput is the carrier's offer payload.
type SubmitResponseInput struct {
	Valor              float64
	ValorPalete        float64
	ValorUrgente       float64
	ValorFragil        float64
	ValorCargaDedicada float64
	PrazoEntregaDias   int
	DataEntrega        *time.Time
	Descricao          string
}

// IResponseUseCase is the bid manager: it accepts, validates and lists carrier
// responses and enforces the at-most-one-accepted invariant.

type IResponseUseCase interface {
	Submit(ctx context.Context, actor entities.Principal, cotacaoID string, in SubmitResponseInput) (entities.Response, error)
	Accept(ctx context.Context, actor entities.Principal, cotacaoID, respostaID string, sel entities.SurchargeSelection) (entities.Response, error)
	Reject(ctx context.Context, actor entities.Principal, cotacaoID, respostaID string) error
	List(ctx context.Context, actor entities.Principal, cotacaoID string) ([]entities.Response, error)
}

type ResponseUseCase struct {
	repo          interfaces.IResponseRepository
	quotationRepo interfaces.IQuotationRepository
}

var _ IResponseUseCase = (*ResponseUseCase)(nil)

func NewResponseUseCase(repo interfaces.IResponseRepository, quotationRepo interfaces.IQuotationRepository) *ResponseUseCase {
	return &ResponseUseCase{repo: repo, quotationRepo: quotationRepo}
}

func (u *ResponseUseCase) Submit(ctx context.Context, actor entities.Principal, cotacaoID string, in SubmitResponseInput) (entities.Response, error) {
	cotacaoID = strings.TrimSpace(cotacaoID)
	if cotacaoID == "" {
		return entities.Response{}, ErrInvalidQuotationID
	}

	q, err := u.quotationRepo.GetByID(ctx, cotacaoID)
	if err != nil {
		return entities.Response{}, err
	}
	if q.ID == "" {
		return entities.Response{}, ErrQuotationNotFound
	}

	if err := Authorize(actor, ActionSubmitResponse, q); err != nil {
		return entities.Response{}, err
	}

	now := time.Now().UTC()
	if !q.Status.IsBiddable() {
		return entities.Response{}, ErrQuotationNotBiddable
	}
	if !q.IsBiddable(now) {
		return entities.Response{}, ErrQuotationExpired
	}

	if in.Valor <= 0 {
		return entities.Response{}, ErrInvalidBidValue
	}
	if in.Valor > maxBidValue {
		return entities.Response{}, ErrBidValueTooHigh
	}
	if in.ValorPalete < 0 || in.ValorUrgente < 0 || in.ValorFragil < 0 || in.ValorCargaDedicada < 0 {
		return entities.Response{}, ErrInvalidSurcharge
	}
	if in.DataEntrega != nil {
		if !in.DataEntrega.After(now) {
			return entities.Response{}, ErrInvalidDeliveryDate
		}
		if in.DataEntrega.After(now.AddDate(0, 0, maxDeliveryDaysOut)) {
			return entities.Response{}, ErrDeliveryDateTooFar
		}
	}

	// One response per (quotation, carrier); the table condition backs this up.
	existing, err := u.repo.GetByID(ctx, entities.ResponseID(cotacaoID, actor.ID))
	if err != nil {
		return entities.Response{}, err
	}
	if existing.ID != "" {
		return entities.Response{}, ErrDuplicateResponse
	}

	descricao := truncateOnRuneBoundary(strings.TrimSpace(in.Descricao), maxDescricaoLength)

	r := entities.Response{
		ID:                 entities.ResponseID(cotacaoID, actor.ID),
		CotacaoID:          cotacaoID,
		TransportadoraID:   actor.ID,
		ValorBase:          round2(in.Valor),
		ValorPalete:        round2(in.ValorPalete),
		ValorUrgente:       round2(in.ValorUrgente),
		ValorFragil:        round2(in.ValorFragil),
		ValorCargaDedicada: round2(in.ValorCargaDedicada),
		ValorTotal:         round2(in.Valor),
		PrazoEntregaDias:   in.PrazoEntregaDias,
		DataEntrega:        in.DataEntrega,
		Descricao:          descricao,
		Aceita:             false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Response{}, ErrDuplicateResponse
		}
		return entities.Response{}, err
	}
	log.Printf("[response][usecase] submit success cotacao_id=%s transportadora_id=%s valor=%.2f", cotacaoID, actor.ID, created.ValorBase)
	return created, nil
}

// Accept promotes the chosen response and demotes every sibling in a single
// transactional unit conditioned on the quotation version. A lost race is
// retried once against fresh state; if the quotation is no longer selectable
// the caller observes ErrAcceptConflict.
func (u *ResponseUseCase) Accept(ctx context.Context, actor entities.Principal, cotacaoID, respostaID string, sel entities.SurchargeSelection) (entities.Response, error) {
	cotacaoID = strings.TrimSpace(cotacaoID)
	respostaID = strings.TrimSpace(respostaID)
	if cotacaoID == "" {
		return entities.Response{}, ErrInvalidQuotationID
	}
	if respostaID == "" {
		return entities.Response{}, ErrInvalidResponseID
	}

	const attempts = 2
	for i := 0; i < attempts; i++ {
		r, err := u.tryAccept(ctx, actor, cotacaoID, respostaID, sel)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Response{}, err
		}
		log.Printf("[response][usecase] accept lost race cotacao_id=%s resposta_id=%s attempt=%d", cotacaoID, respostaID, i+1)
	}
	return entities.Response{}, ErrAcceptConflict
}

func (u *ResponseUseCase) tryAccept(ctx context.Context, actor entities.Principal, cotacaoID, respostaID string, sel entities.SurchargeSelection) (entities.Response, error) {
	q, err := u.quotationRepo.GetByID(ctx, cotacaoID)
	if err != nil {
		return entities.Response{}, err
	}
	if q.ID == "" {
		return entities.Response{}, ErrQuotationNotFound
	}

	if err := Authorize(actor, ActionAcceptResponse, q); err != nil {
		return entities.Response{}, err
	}

	now := time.Now().UTC()
	if !q.Status.IsBiddable() {
		// A concurrent accept already moved the quotation out of bidding.
		if q.RespostaSelecionadaID != "" {
			return entities.Response{}, ErrAcceptConflict
		}
		return entities.Response{}, ErrQuotationNotBiddable
	}
	if !q.IsBiddable(now) {
		return entities.Response{}, ErrQuotationExpired
	}

	r, err := u.repo.GetByID(ctx, respostaID)
	if err != nil {
		return entities.Response{}, err
	}
	if r.ID == "" {
		return entities.Response{}, ErrResponseNotFound
	}
	if r.CotacaoID != q.ID {
		return entities.Response{}, ErrResponseNotInQuotation
	}
	if r.Aceita {
		return entities.Response{}, ErrResponseAlreadyAccepted
	}
	if r.Rejeitada {
		return entities.Response{}, ErrResponseRejected
	}

	// Recompute the total from the client-selected surcharge subset and zero
	// out everything that was not selected, matching what will be charged.
	total := round2(r.Total(sel))
	if !sel.Palete {
		r.ValorPalete = 0
	}
	if !sel.Urgente {
		r.ValorUrgente = 0
	}
	if !sel.Fragil {
		r.ValorFragil = 0
	}
	if !sel.CargaDedicada {
		r.ValorCargaDedicada = 0
	}
	r.ValorTotal = total
	r.Aceita = true
	r.UpdatedAt = now

	siblings, err := u.repo.ListByCotacao(ctx, q.ID)
	if err != nil {
		return entities.Response{}, err
	}
	siblingIDs := make([]string, 0, len(siblings))
	for _, s := range siblings {
		if s.ID != r.ID {
			siblingIDs = append(siblingIDs, s.ID)
		}
	}

	expectedVersion := q.Version
	q.RespostaSelecionadaID = r.ID
	q.ValorOriginal = total
	q.Status = entities.QuotationStatusAceita
	if actor.IsIndividualTaxpayer() {
		// Individual taxpayers (CPF) must prepay before pickup is released.
		q.Status = entities.QuotationStatusAguardandoPagamento
	}
	q.UpdatedAt = now

	updated, err := u.quotationRepo.CommitSelection(ctx, interfaces.SelectionCommit{
		Quotation:       q,
		ChosenResponse:  r,
		SiblingIDs:      siblingIDs,
		ExpectedVersion: expectedVersion,
	})
	if err != nil {
		return entities.Response{}, err
	}
	log.Printf("[response][usecase] accept success cotacao_id=%s resposta_id=%s status=%s valor_total=%.2f", updated.ID, r.ID, updated.Status, total)
	return r, nil
}

// Reject flags a response as rejected. It stays visible for audit; rejecting
// an already rejected response is a no-op success.
func (u *ResponseUseCase) Reject(ctx context.Context, actor entities.Principal, cotacaoID, respostaID string) error {
	cotacaoID = strings.TrimSpace(cotacaoID)
	respostaID = strings.TrimSpace(respostaID)
	if cotacaoID == "" {
		return ErrInvalidQuotationID
	}
	if respostaID == "" {
		return ErrInvalidResponseID
	}

	q, err := u.quotationRepo.GetByID(ctx, cotacaoID)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuotationNotFound
	}

	if err := Authorize(actor, ActionRejectResponse, q); err != nil {
		return err
	}

	r, err := u.repo.GetByID(ctx, respostaID)
	if err != nil {
		return err
	}
	if r.ID == "" {
		return ErrResponseNotFound
	}
	if r.CotacaoID != q.ID {
		return ErrResponseNotInQuotation
	}
	if r.Aceita {
		return ErrCannotRejectAccepted
	}
	if r.Rejeitada {
		return nil
	}

	if _, err := u.repo.SetRejected(ctx, r.ID); err != nil {
		return err
	}
	log.Printf("[response][usecase] reject success cotacao_id=%s resposta_id=%s", cotacaoID, respostaID)
	return nil
}

// List applies the guard's visibility rule and returns responses ordered
// accepted-first, then ascending by total value.
func (u *ResponseUseCase) List(ctx context.Context, actor entities.Principal, cotacaoID string) ([]entities.Response, error) {
	cotacaoID = strings.TrimSpace(cotacaoID)
	if cotacaoID == "" {
		return nil, ErrInvalidQuotationID
	}

	q, err := u.quotationRepo.GetByID(ctx, cotacaoID)
	if err != nil {
		return nil, err
	}
	if q.ID == "" {
		return nil, ErrQuotationNotFound
	}

	all, carrierID, err := ResponseVisibility(actor, q)
	if err != nil {
		return nil, err
	}

	responses, err := u.repo.ListByCotacao(ctx, cotacaoID)
	if err != nil {
		return nil, err
	}

	if !all {
		filtered := responses[:0]
		for _, r := range responses {
			if r.TransportadoraID == carrierID {
				filtered = append(filtered, r)
			}
		}
		responses = filtered
	}

	sortResponses(responses)
	return responses, nil
}

// truncateOnRuneBoundary caps s at max bytes. The cut point walks back to the
// start of the last rune so the stored string stays valid UTF-8.
func truncateOnRuneBoundary(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// sortResponses orders accepted responses first, then cheapest first. The
// ordering is a product decision and must stay deterministic.
func sortResponses(responses []entities.Response) {
	sort.SliceStable(responses, func(i, j int) bool {
		if responses[i].Aceita != responses[j].Aceita {
			return responses[i].Aceita
		}
		return responses[i].ValorTotal < responses[j].ValorTotal
	})
}
