package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase/interfaces"
	mock_interfaces "cotafrete/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func biddableQuotation() entities.Quotation {
	return entities.Quotation{
		ID:          "cot-1",
		ClienteID:   "cli-1",
		Status:      entities.QuotationStatusAberta,
		DataHoraFim: time.Now().UTC().Add(time.Hour),
		Version:     1,
	}
}

var (
	carrierActor = entities.Principal{ID: "tra-1", UserType: entities.UserTypeTransportadora, CpfOuCnpj: "12.345.678/0001-90"}
	clientActor  = entities.Principal{ID: "cli-1", UserType: entities.UserTypeCliente, CpfOuCnpj: "12.345.678/0001-90"}
	cpfClient    = entities.Principal{ID: "cli-1", UserType: entities.UserTypeCliente, CpfOuCnpj: "123.456.789-01"}
)

func TestResponseUseCase_Submit(t *testing.T) {
	t.Run("invalid quotation id", func(t *testing.T) {
		uc := NewResponseUseCase(nil, nil)
		_, err := uc.Submit(context.Background(), carrierActor, "   ", SubmitResponseInput{Valor: 100})
		if !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("quotation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewResponseUseCase(nil, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(entities.Quotation{}, nil)

		_, err := uc.Submit(context.Background(), carrierActor, "cot-1", SubmitResponseInput{Valor: 100})
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("client cannot bid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewResponseUseCase(nil, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)

		_, err := uc.Submit(context.Background(), clientActor, "cot-1", SubmitResponseInput{Valor: 100})
		if !errors.Is(err, ErrNotCarrier) {
			t.Fatalf("expected ErrNotCarrier, got %v", err)
		}
	})

	t.Run("carrier cannot bid on own quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewResponseUseCase(nil, qrepo)

		q := biddableQuotation()
		q.ClienteID = carrierActor.ID
		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(q, nil)

		_, err := uc.Submit(context.Background(), carrierActor, "cot-1", SubmitResponseInput{Valor: 100})
		if !errors.Is(err, ErrSelfDealing) {
			t.Fatalf("expected ErrSelfDealing, got %v", err)
		}
	})

	t.Run("quotation no longer biddable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewResponseUseCase(nil, qrepo)

		q := biddableQuotation()
		q.Status = entities.QuotationStatusAceita
		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(q, nil)

		_, err := uc.Submit(context.Background(), carrierActor, "cot-1", SubmitResponseInput{Valor: 100})
		if !errors.Is(err, ErrQuotationNotBiddable) {
			t.Fatalf("expected ErrQuotationNotBiddable, got %v", err)
		}
	})

	t.Run("quotation expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewResponseUseCase(nil, qrepo)

		q := biddableQuotation()
		q.DataHoraFim = time.Now().UTC().Add(-time.Minute)
		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(q, nil)

		_, err := uc.Submit(context.Background(), carrierActor, "cot-1", SubmitResponseInput{Valor: 100})
		if !errors.Is(err, ErrQuotationExpired) {
			t.Fatalf("expected ErrQuotationExpired, got %v", err)
		}
	})

	t.Run("bid value validation", func(t *testing.T) {
		cases := []struct {
			name string
			in   SubmitResponseInput
			want error
		}{
			{name: "zero value", in: SubmitResponseInput{Valor: 0}, want: ErrInvalidBidValue},
			{name: "negative value", in: SubmitResponseInput{Valor: -5}, want: ErrInvalidBidValue},
			{name: "above ceiling", in: SubmitResponseInput{Valor: 1_000_000.01}, want: ErrBidValueTooHigh},
			{name: "negative surcharge", in: SubmitResponseInput{Valor: 100, ValorFragil: -1}, want: ErrInvalidSurcharge},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
				uc := NewResponseUseCase(nil, qrepo)

				qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)

				_, err := uc.Submit(context.Background(), carrierActor, "cot-1", tc.in)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("delivery date in the past", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewResponseUseCase(nil, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)

		past := time.Now().UTC().Add(-time.Hour)
		_, err := uc.Submit(context.Background(), carrierActor, "cot-1", SubmitResponseInput{Valor: 100, DataEntrega: &past})
		if !errors.Is(err, ErrInvalidDeliveryDate) {
			t.Fatalf("expected ErrInvalidDeliveryDate, got %v", err)
		}
	})

	t.Run("delivery date beyond 90 days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewResponseUseCase(nil, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)

		far := time.Now().UTC().AddDate(0, 0, 91)
		_, err := uc.Submit(context.Background(), carrierActor, "cot-1", SubmitResponseInput{Valor: 100, DataEntrega: &far})
		if !errors.Is(err, ErrDeliveryDateTooFar) {
			t.Fatalf("expected ErrDeliveryDateTooFar, got %v", err)
		}
	})

	t.Run("duplicate detected by pre-check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(entities.Response{ID: "cot-1#tra-1"}, nil)

		_, err := uc.Submit(context.Background(), carrierActor, "cot-1", SubmitResponseInput{Valor: 100})
		if !errors.Is(err, ErrDuplicateResponse) {
			t.Fatalf("expected ErrDuplicateResponse, got %v", err)
		}
	})

	t.Run("duplicate detected by table condition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(entities.Response{}, nil)
		rrepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Response{}, interfaces.ErrAlreadyExists)

		_, err := uc.Submit(context.Background(), carrierActor, "cot-1", SubmitResponseInput{Valor: 100})
		if !errors.Is(err, ErrDuplicateResponse) {
			t.Fatalf("expected ErrDuplicateResponse, got %v", err)
		}
	})

	t.Run("submit success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(entities.Response{}, nil)
		rrepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Response{})).DoAndReturn(
			func(_ context.Context, r entities.Response) (entities.Response, error) {
				if r.ID != "cot-1#tra-1" || r.CotacaoID != "cot-1" || r.TransportadoraID != "tra-1" {
					t.Fatalf("unexpected keys: %+v", r)
				}
				if r.ValorBase != 350.5 || r.ValorTotal != 350.5 || r.ValorPalete != 40 {
					t.Fatalf("unexpected values: %+v", r)
				}
				if r.Aceita || r.Rejeitada {
					t.Fatalf("new response must start unaccepted: %+v", r)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		res, err := uc.Submit(context.Background(), carrierActor, "cot-1", SubmitResponseInput{
			Valor:            350.5,
			ValorPalete:      40,
			PrazoEntregaDias: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PrazoEntregaDias != 3 {
			t.Fatalf("unexpected prazo: %d", res.PrazoEntregaDias)
		}
	})

	t.Run("long note truncates on a rune boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(entities.Response{}, nil)

		var persisted entities.Response
		rrepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Response) (entities.Response, error) {
				persisted = r
				return r, nil
			},
		)

		// 999 single-byte runes followed by a two-byte one; a byte cut at 1000
		// would land inside the "ç".
		descricao := strings.Repeat("a", 999) + "ç"
		if _, err := uc.Submit(context.Background(), carrierActor, "cot-1", SubmitResponseInput{Valor: 100, Descricao: descricao}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !utf8.ValidString(persisted.Descricao) {
			t.Fatalf("persisted descricao is not valid UTF-8 (len=%d)", len(persisted.Descricao))
		}
		if persisted.Descricao != strings.Repeat("a", 999) {
			t.Fatalf("unexpected truncation (len=%d)", len(persisted.Descricao))
		}
	})
}

func TestResponseUseCase_Accept(t *testing.T) {
	selectedResponse := func() entities.Response {
		return entities.Response{
			ID:               "cot-1#tra-1",
			CotacaoID:        "cot-1",
			TransportadoraID: "tra-1",
			ValorBase:        100,
			ValorPalete:      30,
			ValorUrgente:     20,
			ValorTotal:       100,
		}
	}

	t.Run("only the owner may accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewResponseUseCase(nil, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)

		other := entities.Principal{ID: "cli-2", UserType: entities.UserTypeCliente}
		_, err := uc.Accept(context.Background(), other, "cot-1", "cot-1#tra-1", entities.SurchargeSelection{})
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("concurrent accept already selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewResponseUseCase(nil, qrepo)

		q := biddableQuotation()
		q.Status = entities.QuotationStatusAceita
		q.RespostaSelecionadaID = "cot-1#tra-2"
		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(q, nil)

		_, err := uc.Accept(context.Background(), clientActor, "cot-1", "cot-1#tra-1", entities.SurchargeSelection{})
		if !errors.Is(err, ErrAcceptConflict) {
			t.Fatalf("expected ErrAcceptConflict, got %v", err)
		}
	})

	t.Run("response from another quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		r := selectedResponse()
		r.CotacaoID = "cot-9"
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(r, nil)

		_, err := uc.Accept(context.Background(), clientActor, "cot-1", "cot-1#tra-1", entities.SurchargeSelection{})
		if !errors.Is(err, ErrResponseNotInQuotation) {
			t.Fatalf("expected ErrResponseNotInQuotation, got %v", err)
		}
	})

	t.Run("cannot accept a rejected response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		r := selectedResponse()
		r.Rejeitada = true
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(r, nil)

		_, err := uc.Accept(context.Background(), clientActor, "cot-1", "cot-1#tra-1", entities.SurchargeSelection{})
		if !errors.Is(err, ErrResponseRejected) {
			t.Fatalf("expected ErrResponseRejected, got %v", err)
		}
	})

	t.Run("accept recomputes total from selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(selectedResponse(), nil)
		rrepo.EXPECT().ListByCotacao(gomock.Any(), "cot-1").Return([]entities.Response{
			selectedResponse(),
			{ID: "cot-1#tra-2", CotacaoID: "cot-1", TransportadoraID: "tra-2"},
		}, nil)
		qrepo.EXPECT().CommitSelection(gomock.Any(), gomock.AssignableToTypeOf(interfaces.SelectionCommit{})).DoAndReturn(
			func(_ context.Context, c interfaces.SelectionCommit) (entities.Quotation, error) {
				if c.ExpectedVersion != 1 {
					t.Fatalf("expected version 1, got %d", c.ExpectedVersion)
				}
				if c.Quotation.Status != entities.QuotationStatusAceita {
					t.Fatalf("expected aceita, got %s", c.Quotation.Status)
				}
				if c.Quotation.RespostaSelecionadaID != "cot-1#tra-1" {
					t.Fatalf("unexpected selected id: %s", c.Quotation.RespostaSelecionadaID)
				}
				if c.Quotation.ValorOriginal != 130 {
					t.Fatalf("expected valor original 130, got %v", c.Quotation.ValorOriginal)
				}
				if !c.ChosenResponse.Aceita || c.ChosenResponse.ValorTotal != 130 {
					t.Fatalf("unexpected chosen response: %+v", c.ChosenResponse)
				}
				if c.ChosenResponse.ValorUrgente != 0 {
					t.Fatalf("unselected surcharge must be zeroed: %+v", c.ChosenResponse)
				}
				if len(c.SiblingIDs) != 1 || c.SiblingIDs[0] != "cot-1#tra-2" {
					t.Fatalf("unexpected siblings: %v", c.SiblingIDs)
				}
				return c.Quotation, nil
			},
		)

		res, err := uc.Accept(context.Background(), clientActor, "cot-1", "cot-1#tra-1", entities.SurchargeSelection{Palete: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Aceita || res.ValorTotal != 130 {
			t.Fatalf("unexpected accepted response: %+v", res)
		}
	})

	t.Run("cpf client goes through prepayment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(selectedResponse(), nil)
		rrepo.EXPECT().ListByCotacao(gomock.Any(), "cot-1").Return([]entities.Response{selectedResponse()}, nil)
		qrepo.EXPECT().CommitSelection(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.SelectionCommit) (entities.Quotation, error) {
				if c.Quotation.Status != entities.QuotationStatusAguardandoPagamento {
					t.Fatalf("expected aguardando_pagamento, got %s", c.Quotation.Status)
				}
				return c.Quotation, nil
			},
		)

		if _, err := uc.Accept(context.Background(), cpfClient, "cot-1", "cot-1#tra-1", entities.SurchargeSelection{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost race on both attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil).Times(2)
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(selectedResponse(), nil).Times(2)
		rrepo.EXPECT().ListByCotacao(gomock.Any(), "cot-1").Return([]entities.Response{selectedResponse()}, nil).Times(2)
		qrepo.EXPECT().CommitSelection(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, interfaces.ErrVersionConflict).Times(2)

		_, err := uc.Accept(context.Background(), clientActor, "cot-1", "cot-1#tra-1", entities.SurchargeSelection{})
		if !errors.Is(err, ErrAcceptConflict) {
			t.Fatalf("expected ErrAcceptConflict, got %v", err)
		}
	})
}

func TestResponseUseCase_Reject(t *testing.T) {
	t.Run("cannot reject the accepted response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(entities.Response{ID: "cot-1#tra-1", CotacaoID: "cot-1", Aceita: true}, nil)

		err := uc.Reject(context.Background(), clientActor, "cot-1", "cot-1#tra-1")
		if !errors.Is(err, ErrCannotRejectAccepted) {
			t.Fatalf("expected ErrCannotRejectAccepted, got %v", err)
		}
	})

	t.Run("rejecting twice is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(entities.Response{ID: "cot-1#tra-1", CotacaoID: "cot-1", Rejeitada: true}, nil)

		if err := uc.Reject(context.Background(), clientActor, "cot-1", "cot-1#tra-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reject success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		rrepo.EXPECT().GetByID(gomock.Any(), "cot-1#tra-1").Return(entities.Response{ID: "cot-1#tra-1", CotacaoID: "cot-1"}, nil)
		rrepo.EXPECT().SetRejected(gomock.Any(), "cot-1#tra-1").Return(entities.Response{ID: "cot-1#tra-1", Rejeitada: true}, nil)

		if err := uc.Reject(context.Background(), clientActor, "cot-1", "cot-1#tra-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestResponseUseCase_List(t *testing.T) {
	responses := []entities.Response{
		{ID: "cot-1#tra-1", CotacaoID: "cot-1", TransportadoraID: "tra-1", ValorTotal: 300},
		{ID: "cot-1#tra-2", CotacaoID: "cot-1", TransportadoraID: "tra-2", ValorTotal: 200, Aceita: true},
		{ID: "cot-1#tra-3", CotacaoID: "cot-1", TransportadoraID: "tra-3", ValorTotal: 100},
	}

	t.Run("owner sees all, accepted first then cheapest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		rrepo.EXPECT().ListByCotacao(gomock.Any(), "cot-1").Return(append([]entities.Response{}, responses...), nil)

		got, err := uc.List(context.Background(), clientActor, "cot-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 responses, got %d", len(got))
		}
		if got[0].ID != "cot-1#tra-2" || got[1].ID != "cot-1#tra-3" || got[2].ID != "cot-1#tra-1" {
			t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("carrier sees only its own response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		rrepo := mock_interfaces.NewMockIResponseRepository(ctrl)
		uc := NewResponseUseCase(rrepo, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)
		rrepo.EXPECT().ListByCotacao(gomock.Any(), "cot-1").Return(append([]entities.Response{}, responses...), nil)

		got, err := uc.List(context.Background(), carrierActor, "cot-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].TransportadoraID != "tra-1" {
			t.Fatalf("unexpected visibility: %+v", got)
		}
	})

	t.Run("unrelated client is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qrepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewResponseUseCase(nil, qrepo)

		qrepo.EXPECT().GetByID(gomock.Any(), "cot-1").Return(biddableQuotation(), nil)

		other := entities.Principal{ID: "cli-9", UserType: entities.UserTypeCliente}
		_, err := uc.List(context.Background(), other, "cot-1")
		if !errors.Is(err, ErrNotAllowed) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})
}
