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
	ErrInvalidRatingScore = errors.New("rating score must be between 1 and 5")
	ErrAlreadyRated       = errors.New("this quotation was already rated by this side")
	ErrRatingNotAllowed   = errors.New("quotation status does not allow rating")
)

const maxComentarioLength = 500

// RateInput is a single evaluation submitted against a quotation.
type RateInput struct {
	Nota       int
	Comentario string
}

// IRatingUseCase handles the mutual evaluations tied to the delivery flow.
// The client rates the carrier before finalizing; the carrier rates the client
// before registering the delivery proof.

type IRatingUseCase interface {
	RateCarrier(ctx context.Context, actor entities.Principal, cotacaoID string, in RateInput) (entities.Rating, error)
	RateClient(ctx context.Context, actor entities.Principal, cotacaoID string, in RateInput) (entities.Rating, error)
	ListForTarget(ctx context.Context, alvoID string, direcao entities.RatingDirection) ([]entities.Rating, error)
}

type RatingUseCase struct {
	repo          interfaces.IRatingRepository
	quotationRepo interfaces.IQuotationRepository
	responseRepo  interfaces.IResponseRepository
	profileRepo   interfaces.IProfileRepository
}

var _ IRatingUseCase = (*RatingUseCase)(nil)

func NewRatingUseCase(
	repo interfaces.IRatingRepository,
	quotationRepo interfaces.IQuotationRepository,
	responseRepo interfaces.IResponseRepository,
	profileRepo interfaces.IProfileRepository,
) *RatingUseCase {
	return &RatingUseCase{repo: repo, quotationRepo: quotationRepo, responseRepo: responseRepo, profileRepo: profileRepo}
}

// RateCarrier records the client's evaluation of the selected carrier. It is
// only accepted while the quotation waits for the client's confirmation, and
// unlocks Finalize.
func (u *RatingUseCase) RateCarrier(ctx context.Context, actor entities.Principal, cotacaoID string, in RateInput) (entities.Rating, error) {
	q, err := u.loadQuotation(ctx, cotacaoID)
	if err != nil {
		return entities.Rating{}, err
	}
	if actor.ID != q.ClienteID {
		return entities.Rating{}, ErrNotOwner
	}
	if q.Status != entities.QuotationStatusAguardandoConfirmacao {
		return entities.Rating{}, ErrRatingNotAllowed
	}
	if q.AvaliacaoTransportadoraID != "" {
		return entities.Rating{}, ErrAlreadyRated
	}

	selected, err := u.selectedResponse(ctx, q)
	if err != nil {
		return entities.Rating{}, err
	}

	rating, err := u.create(ctx, q, in, entities.Rating{
		AutorID: actor.ID,
		AlvoID:  selected.TransportadoraID,
		Direcao: entities.RatingClienteParaTransportadora,
	})
	if err != nil {
		return entities.Rating{}, err
	}

	q.AvaliacaoTransportadoraID = rating.ID
	q.UpdatedAt = rating.CreatedAt
	if _, err := u.quotationRepo.Update(ctx, q); err != nil {
		return entities.Rating{}, err
	}

	u.refreshCarrierAggregate(ctx, selected.TransportadoraID)
	log.Printf("[rating][usecase] carrier rated cotacao_id=%s transportadora_id=%s nota=%d", q.ID, selected.TransportadoraID, rating.Nota)
	return rating, nil
}

// RateClient records the carrier's evaluation of the client. It is only
// accepted while the shipment is in transit, and unlocks RegisterDelivery.
func (u *RatingUseCase) RateClient(ctx context.Context, actor entities.Principal, cotacaoID string, in RateInput) (entities.Rating, error) {
	q, err := u.loadQuotation(ctx, cotacaoID)
	if err != nil {
		return entities.Rating{}, err
	}
	if q.Status != entities.QuotationStatusEmTransito {
		return entities.Rating{}, ErrRatingNotAllowed
	}
	selected, err := u.selectedResponse(ctx, q)
	if err != nil {
		return entities.Rating{}, err
	}
	if selected.TransportadoraID != actor.ID {
		return entities.Rating{}, ErrNotSelectedCarrier
	}
	if q.AvaliacaoClienteID != "" {
		return entities.Rating{}, ErrAlreadyRated
	}

	rating, err := u.create(ctx, q, in, entities.Rating{
		AutorID: actor.ID,
		AlvoID:  q.ClienteID,
		Direcao: entities.RatingTransportadoraParaCliente,
	})
	if err != nil {
		return entities.Rating{}, err
	}

	q.AvaliacaoClienteID = rating.ID
	q.UpdatedAt = rating.CreatedAt
	if _, err := u.quotationRepo.Update(ctx, q); err != nil {
		return entities.Rating{}, err
	}

	u.refreshClientAggregate(ctx, q.ClienteID)
	log.Printf("[rating][usecase] client rated cotacao_id=%s cliente_id=%s nota=%d", q.ID, q.ClienteID, rating.Nota)
	return rating, nil
}

func (u *RatingUseCase) ListForTarget(ctx context.Context, alvoID string, direcao entities.RatingDirection) ([]entities.Rating, error) {
	alvoID = strings.TrimSpace(alvoID)
	if alvoID == "" {
		return nil, ErrInvalidQuotationID
	}
	return u.repo.ListByAlvo(ctx, alvoID, direcao)
}

func (u *RatingUseCase) create(ctx context.Context, q entities.Quotation, in RateInput, base entities.Rating) (entities.Rating, error) {
	if in.Nota < 1 || in.Nota > 5 {
		return entities.Rating{}, ErrInvalidRatingScore
	}
	comentario := truncateOnRuneBoundary(strings.TrimSpace(in.Comentario), maxComentarioLength)

	base.ID = uuid.NewString()
	base.CotacaoID = q.ID
	base.Nota = in.Nota
	base.Comentario = comentario
	base.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, base)
}

// Aggregate refresh is best effort: a failed recompute leaves a stale mean on
// the profile, fixed by the next rating.
func (u *RatingUseCase) refreshCarrierAggregate(ctx context.Context, transportadoraID string) {
	media, total, err := u.aggregate(ctx, transportadoraID, entities.RatingClienteParaTransportadora)
	if err != nil {
		log.Printf("[rating][usecase] carrier aggregate failed transportadora_id=%s err=%v", transportadoraID, err)
		return
	}
	if err := u.profileRepo.UpdateCarrierRating(ctx, transportadoraID, media, total); err != nil {
		log.Printf("[rating][usecase] carrier aggregate write failed transportadora_id=%s err=%v", transportadoraID, err)
	}
}

func (u *RatingUseCase) refreshClientAggregate(ctx context.Context, clienteID string) {
	media, total, err := u.aggregate(ctx, clienteID, entities.RatingTransportadoraParaCliente)
	if err != nil {
		log.Printf("[rating][usecase] client aggregate failed cliente_id=%s err=%v", clienteID, err)
		return
	}
	if err := u.profileRepo.UpdateClientRating(ctx, clienteID, media, total); err != nil {
		log.Printf("[rating][usecase] client aggregate write failed cliente_id=%s err=%v", clienteID, err)
	}
}

func (u *RatingUseCase) aggregate(ctx context.Context, alvoID string, direcao entities.RatingDirection) (float64, int, error) {
	ratings, err := u.repo.ListByAlvo(ctx, alvoID, direcao)
	if err != nil {
		return 0, 0, err
	}
	if len(ratings) == 0 {
		return 0, 0, nil
	}
	var soma int
	for _, r := range ratings {
		soma += r.Nota
	}
	media := round2(float64(soma) / float64(len(ratings)))
	return media, len(ratings), nil
}

func (u *RatingUseCase) loadQuotation(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *RatingUseCase) selectedResponse(ctx context.Context, q entities.Quotation) (entities.Response, error) {
	if q.RespostaSelecionadaID == "" {
		return entities.Response{}, ErrRatingNotAllowed
	}
	selected, err := u.responseRepo.GetByID(ctx, q.RespostaSelecionadaID)
	if err != nil {
		return entities.Response{}, err
	}
	if selected.ID == "" {
		return entities.Response{}, ErrResponseNotFound
	}
	return selected, nil
}
