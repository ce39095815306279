package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lugorito/pedidos-http/internal/entities"
	"github.com/lugorito/pedidos-http/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// corpo máximo aceito pelo intake de pedidos
const maxBodyBytes = 1 << 20

type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, sub entities.Submission) (entities.Order, error)
	NotifyAsync(order entities.Order)
}

type HTTPHandler struct {
	logger *slog.Logger
	svc    OrderSubmitter
}

func NewHTTPHandler(logger *slog.Logger, svc OrderSubmitter) *HTTPHandler {
	return &HTTPHandler{
		logger: logger.With(slog.String("handler", "http")),
		svc:    svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/health", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequestSize(maxBodyBytes))
		r.Post("/pedidos", h.CreateOrder)
	})
}

// CreateOrder recebe um pedido cru, valida e grava.
// @Summary      Receber um pedido
// @Description  Valida a submissão, grava na planilha e no backup em arquivo e agenda o aviso por e-mail
// @Tags         pedidos
// @Accept       json
// @Param        pedido  body  entities.Submission  true  "Pedido cru"
// @Success      200  {object}  CreateOrderResponse
// @Failure      400  {string}  string "Erro de validação"
// @Failure      500  {string}  string "Falha ao gravar o pedido"
// @Router       /api/pedidos [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var sub entities.Submission
	if err := utils.DecodeBody(r, &sub); err != nil {
		pedidosRejected.Inc()
		utils.WriteText(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	order, err := h.svc.SubmitOrder(ctx, sub)

	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		pedidosRejected.Inc()
		utils.WriteText(w, ve.Message, http.StatusBadRequest)
		return
	}

	if err != nil {
		pedidosFailed.Inc()
		h.logger.ErrorContext(ctx, "failed to submit order", slog.Any("error", err))
		utils.WriteText(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pedidosAccepted.Inc()
	orderIntakeDuration.Observe(time.Since(start).Seconds())
	utils.WriteJSON(w, CreateOrderResponse{OK: true, PedidoID: order.ID}, http.StatusOK)

	// o aviso só pode partir depois da resposta já despachada
	h.svc.NotifyAsync(order)
}

func (h *HTTPHandler) Health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteText(w, "ok", http.StatusOK)
}
