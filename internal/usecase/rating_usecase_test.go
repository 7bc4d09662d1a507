package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"cotafrete/internal/domain/entities"
	mock_interfaces "cotafrete/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type ratingMocks struct {
	repo     *mock_interfaces.MockIRatingRepository
	quot     *mock_interfaces.MockIQuotationRepository
	response *mock_interfaces.MockIResponseRepository
	profile  *mock_interfaces.MockIProfileRepository
}

func newRatingUseCaseWithMocks(t *testing.T) (*RatingUseCase, ratingMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := ratingMocks{
		repo:     mock_interfaces.NewMockIRatingRepository(ctrl),
		quot:     mock_interfaces.NewMockIQuotationRepository(ctrl),
		response: mock_interfaces.NewMockIResponseRepository(ctrl),
		profile:  mock_interfaces.NewMockIProfileRepository(ctrl),
	}
	return NewRatingUseCase(m.repo, m.quot, m.response, m.profile), m
}

func TestRatingUseCase_RateCarrier(t *testing.T) {
	awaiting := func() entities.Quotation {
		q := biddableQuotation()
		q.Status = entities.QuotationStatusAguardandoConfirmacao
		q.RespostaSelecionadaID = "cot-1#tra-1"
		return q
	}
	selected := entities.Response{ID: "cot-1#tra-1", CotacaoID: "cot-1", TransportadoraID: "tra-1", Aceita: true}

	t.Run("only the owner rates the carrier", func(t *testing.T) {
		uc, m := newRatingUseCaseWithMocks(t)
		m.quot.EXPECT().GetByID(gomock.Any(), "cot-1").Return(awaiting(), nil)

		_, err := uc.RateCarrier(context.Background(), carrierActor, "cot-1", RateInput{Nota: 5})
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("status must be aguardando_confirmacao", func(t *testing.T) {
		uc, m := newRatingUseCaseWithMocks(t)
		m.quot.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)

		_, err := uc.RateCarrier(context.Background(), clientActor, "cot-1", RateInput{Nota: 5})
		if !errors.Is(err, ErrRatingNotAllowed) {
			t.Fatalf("expected ErrRatingNotAllowed, got %v", err)
		}
	})

	t.Run("already rated", func(t *testing.T) {
		uc, m := newRatingUseCaseWithMocks(t)
		q := awaiting()
		q.AvaliacaoTransportadoraID = "ava-1"
		m.quot.EXPECT().GetByID(gomock.Any(), "cot-1").Return(q, nil)

		_, err := uc.RateCarrier(context.Background(), clientActor, "cot-1", RateInput{Nota: 5})
		if !errors.Is(err, ErrAlreadyRated) {
			t.Fatalf("expected ErrAlreadyRated, got %v", err)
		}
	})

	t.Run("score out of range", func(t *testing.T) {
		for _, nota := range []int{0, 6, -1} {
			uc, m := newRatingUseCaseWithMocks(t)
			m.quot.EXPECT().GetByID(gomock.Any(), "cot-1").Return(awaiting(), nil)
			m.response.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(selected, nil)

			_, err := uc.RateCarrier(context.Background(), clientActor, "cot-1", RateInput{Nota: nota})
			if !errors.Is(err, ErrInvalidRatingScore) {
				t.Fatalf("nota=%d: expected ErrInvalidRatingScore, got %v", nota, err)
			}
		}
	})

	t.Run("stamps the quotation and refreshes the aggregate", func(t *testing.T) {
		uc, m := newRatingUseCaseWithMocks(t)
		m.quot.EXPECT().GetByID(gomock.Any(), "cot-1").Return(awaiting(), nil)
		m.response.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(selected, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Rating{})).DoAndReturn(
			func(_ context.Context, r entities.Rating) (entities.Rating, error) {
				if r.ID == "" || r.CotacaoID != "cot-1" || r.AutorID != "cli-1" || r.AlvoID != "tra-1" {
					t.Fatalf("unexpected rating: %+v", r)
				}
				if r.Direcao != entities.RatingClienteParaTransportadora || r.Nota != 4 {
					t.Fatalf("unexpected rating: %+v", r)
				}
				return r, nil
			},
		)
		m.quot.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.AvaliacaoTransportadoraID == "" {
					t.Fatalf("expected rating id stamped on quotation")
				}
				return q, nil
			},
		)
		m.repo.EXPECT().ListByAlvo(gomock.Any(), "tra-1", entities.RatingClienteParaTransportadora).Return([]entities.Rating{
			{Nota: 4}, {Nota: 5}, {Nota: 5},
		}, nil)
		m.profile.EXPECT().UpdateCarrierRating(gomock.Any(), "tra-1", 4.67, 3).Return(nil)

		rating, err := uc.RateCarrier(context.Background(), clientActor, "cot-1", RateInput{Nota: 4, Comentario: " entrega impecável "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rating.Comentario != "entrega impecável" {
			t.Fatalf("unexpected comentario: %q", rating.Comentario)
		}
	})

	t.Run("long comment truncates on a rune boundary", func(t *testing.T) {
		uc, m := newRatingUseCaseWithMocks(t)
		m.quot.EXPECT().GetByID(gomock.Any(), "cot-1").Return(awaiting(), nil)
		m.response.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(selected, nil)

		var persisted entities.Rating
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Rating) (entities.Rating, error) {
				persisted = r
				return r, nil
			},
		)
		m.quot.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) { return q, nil },
		)
		m.repo.EXPECT().ListByAlvo(gomock.Any(), "tra-1", entities.RatingClienteParaTransportadora).Return([]entities.Rating{{Nota: 5}}, nil)
		m.profile.EXPECT().UpdateCarrierRating(gomock.Any(), "tra-1", 5.0, 1).Return(nil)

		// The two-byte "é" straddles the byte limit; the cut must not leave a
		// dangling lead byte behind.
		comentario := strings.Repeat("a", 499) + "é"
		if _, err := uc.RateCarrier(context.Background(), clientActor, "cot-1", RateInput{Nota: 5, Comentario: comentario}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !utf8.ValidString(persisted.Comentario) {
			t.Fatalf("persisted comentario is not valid UTF-8 (len=%d)", len(persisted.Comentario))
		}
		if persisted.Comentario != strings.Repeat("a", 499) {
			t.Fatalf("unexpected truncation (len=%d)", len(persisted.Comentario))
		}
	})

	t.Run("aggregate failure does not fail the rating", func(t *testing.T) {
		uc, m := newRatingUseCaseWithMocks(t)
		m.quot.EXPECT().GetByID(gomock.Any(), "cot-1").Return(awaiting(), nil)
		m.response.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(selected, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Rating) (entities.Rating, error) { return r, nil },
		)
		m.quot.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) { return q, nil },
		)
		m.repo.EXPECT().ListByAlvo(gomock.Any(), "tra-1", entities.RatingClienteParaTransportadora).Return(nil, errors.New("db"))

		if _, err := uc.RateCarrier(context.Background(), clientActor, "cot-1", RateInput{Nota: 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRatingUseCase_RateClient(t *testing.T) {
	inTransit := func() entities.Quotation {
		q := biddableQuotation()
		q.Status = entities.QuotationStatusEmTransito
		q.RespostaSelecionadaID = "cot-1#tra-1"
		return q
	}
	selected := entities.Response{ID: "cot-1#tra-1", CotacaoID: "cot-1", TransportadoraID: "tra-1", Aceita: true}

	t.Run("only while in transit", func(t *testing.T) {
		uc, m := newRatingUseCaseWithMocks(t)
		q := inTransit()
		q.Status = entities.QuotationStatusAguardandoConfirmacao
		m.quot.EXPECT().GetByID(gomock.Any(), "cot-1").Return(q, nil)

		_, err := uc.RateClient(context.Background(), carrierActor, "cot-1", RateInput{Nota: 5})
		if !errors.Is(err, ErrRatingNotAllowed) {
			t.Fatalf("expected ErrRatingNotAllowed, got %v", err)
		}
	})

	t.Run("only the selected carrier", func(t *testing.T) {
		uc, m := newRatingUseCaseWithMocks(t)
		m.quot.EXPECT().GetByID(gomock.Any(), "cot-1").Return(inTransit(), nil)
		m.response.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(selected, nil)

		other := entities.Principal{ID: "tra-9", UserType: entities.UserTypeTransportadora}
		_, err := uc.RateClient(context.Background(), other, "cot-1", RateInput{Nota: 5})
		if !errors.Is(err, ErrNotSelectedCarrier) {
			t.Fatalf("expected ErrNotSelectedCarrier, got %v", err)
		}
	})

	t.Run("rates the client and stamps the quotation", func(t *testing.T) {
		uc, m := newRatingUseCaseWithMocks(t)
		m.quot.EXPECT().GetByID(gomock.Any(), "cot-1").Return(inTransit(), nil)
		m.response.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(selected, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Rating) (entities.Rating, error) {
				if r.AutorID != "tra-1" || r.AlvoID != "cli-1" || r.Direcao != entities.RatingTransportadoraParaCliente {
					t.Fatalf("unexpected rating: %+v", r)
				}
				return r, nil
			},
		)
		m.quot.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.AvaliacaoClienteID == "" {
					t.Fatalf("expected rating id stamped on quotation")
				}
				return q, nil
			},
		)
		m.repo.EXPECT().ListByAlvo(gomock.Any(), "cli-1", entities.RatingTransportadoraParaCliente).Return([]entities.Rating{{Nota: 5}}, nil)
		m.profile.EXPECT().UpdateClientRating(gomock.Any(), "cli-1", 5.0, 1).Return(nil)

		if _, err := uc.RateClient(context.Background(), carrierActor, "cot-1", RateInput{Nota: 5}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRatingUseCase_ListForTarget(t *testing.T) {
	t.Run("blank target", func(t *testing.T) {
		uc, _ := newRatingUseCaseWithMocks(t)
		if _, err := uc.ListForTarget(context.Background(), "  ", entities.RatingClienteParaTransportadora); err == nil {
			t.Fatalf("expected error for blank target")
		}
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		uc, m := newRatingUseCaseWithMocks(t)
		m.repo.EXPECT().ListByAlvo(gomock.Any(), "tra-1", entities.RatingClienteParaTransportadora).Return([]entities.Rating{{ID: "ava-1"}}, nil)

		got, err := uc.ListForTarget(context.Background(), "tra-1", entities.RatingClienteParaTransportadora)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 rating, got %d", len(got))
		}
	})
}
