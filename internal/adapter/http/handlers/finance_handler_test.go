package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cotafrete/internal/adapter/http/handlers/mocks"
	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFinanceHandler_GetCarrierLedger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.GET("/v1/financeiro/transportadora", asPrincipal(testClient), h.GetCarrierLedger)

		uc.EXPECT().GetCarrierLedger(gomock.Any(), testClient, "").Return(nil, usecase.ErrNotCarrier)

		req := httptest.NewRequest(http.MethodGet, "/v1/financeiro/transportadora", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("month filter forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.GET("/v1/financeiro/transportadora", asPrincipal(testCarrier), h.GetCarrierLedger)

		uc.EXPECT().GetCarrierLedger(gomock.Any(), testCarrier, "2026-08").Return([]entities.MonthlyLedger{
			{
				ID:                 "tra-1#2026-08",
				TransportadoraID:   "tra-1",
				MesReferencia:      "2026-08",
				ValorTotalCotacoes: 240,
				ValorTotalComissao: 36,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/financeiro/transportadora?mes=2026-08", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Data  []map[string]any `json:"data"`
			Total int              `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Total != 1 || len(body.Data) != 1 || body.Data[0]["mes_referencia"] != "2026-08" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestFinanceHandler_Profiles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client profile backfills the user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.GET("/v1/financeiro/perfil/cliente", asPrincipal(testClient), h.GetClientProfile)

		uc.EXPECT().GetClientProfile(gomock.Any(), testClient).Return(entities.ClientProfile{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/financeiro/perfil/cliente", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["user_id"] != "cli-1" {
			t.Fatalf("expected backfilled user id, got %v", body["user_id"])
		}
	})

	t.Run("carrier profile success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.GET("/v1/financeiro/perfil/transportadora", asPrincipal(testCarrier), h.GetCarrierProfile)

		uc.EXPECT().GetCarrierProfile(gomock.Any(), testCarrier).Return(entities.CarrierProfile{
			UserID:               "tra-1",
			SaldoDescontoPremium: 12.5,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/financeiro/perfil/transportadora", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
