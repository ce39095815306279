package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lugorito/pedidos-http/internal/entities"
	"github.com/lugorito/pedidos-http/internal/handler"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSubmitter struct {
	mock.Mock
	notified chan entities.Order
}

func newMockSubmitter() *mockSubmitter {
	return &mockSubmitter{notified: make(chan entities.Order, 1)}
}

func (m *mockSubmitter) SubmitOrder(ctx context.Context, sub entities.Submission) (entities.Order, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(entities.Order), args.Error(1)
}

func (m *mockSubmitter) NotifyAsync(order entities.Order) {
	m.Called(order)
	m.notified <- order
}

func newRouter(svc handler.OrderSubmitter) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

const validBody = `{
	"tipoCliente": "PF",
	"nome": "Maria da Silva",
	"documento": "11144477735",
	"email": "maria@example.com",
	"telefone": "85999990000",
	"indIEDest": "9",
	"endereco": {
		"cep": "60000000",
		"logradouro": "Rua das Flores",
		"numero": "100",
		"bairro": "Centro",
		"municipio": "Fortaleza",
		"uf": "CE"
	},
	"itens": [{"sku": "ABC", "qtd": 2}]
}`

func TestHTTPHandler_CreateOrder(t *testing.T) {
	acceptedOrder := entities.Order{ID: "0f8fad5b-d9cb-469f-a165-70867728950e"}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mockSubmitter)
		wantStatus   int
		wantBody     string
		wantNotify   bool
	}{
		{
			name: "accepted",
			body: validBody,
			mockBehavior: func(svc *mockSubmitter) {
				svc.On("SubmitOrder", mock.Anything, mock.Anything).
					Return(acceptedOrder, nil).Once()
				svc.On("NotifyAsync", acceptedOrder).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"pedidoId":"0f8fad5b-d9cb-469f-a165-70867728950e"`,
			wantNotify: true,
		},
		{
			name: "validation failure",
			body: validBody,
			mockBehavior: func(svc *mockSubmitter) {
				svc.On("SubmitOrder", mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.NewValidationError("CPF inválido")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "CPF inválido",
		},
		{
			name: "persistence failure",
			body: validBody,
			mockBehavior: func(svc *mockSubmitter) {
				svc.On("SubmitOrder", mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("failed to append order to spreadsheet: quota exceeded")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "quota exceeded",
		},
		{
			name:         "malformed json",
			body:         `{"tipoCliente":`,
			mockBehavior: func(svc *mockSubmitter) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "JSON inválido",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newMockSubmitter()
			tc.mockBehavior(svc)

			r := newRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/pedidos", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.wantNotify {
				order := <-svc.notified
				assert.Equal(t, acceptedOrder.ID, order.ID)

				var resp map[string]any
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, true, resp["ok"])
			} else {
				svc.AssertNotCalled(t, "NotifyAsync", mock.Anything)
			}

			svc.AssertExpectations(t)
		})
	}
}

func TestHTTPHandler_Health(t *testing.T) {
	r := newRouter(newMockSubmitter())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}
