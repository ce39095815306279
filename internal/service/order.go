package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lugorito/pedidos-http/internal/entities"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type SheetAppender interface {
	AppendRow(ctx context.Context, row []any) error
}

type BackupWriter interface {
	WriteOrder(ctx context.Context, order entities.Order) error
}

type Mailer interface {
	Send(ctx context.Context, n entities.Notification) error
}

var notificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "pedidos",
	Subsystem: "notify",
	Name:      "failures_total",
	Help:      "Total number of order notification emails that failed to send.",
})

type orderService struct {
	logger *slog.Logger
	origem string
	sheet  SheetAppender
	backup BackupWriter
	mailer Mailer

	// trava apenas o desligamento; os envios em si são independentes
	notifWG sync.WaitGroup
}

func NewOrderService(logger *slog.Logger, origem string, sheet SheetAppender, backup BackupWriter, mailer Mailer) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		origem: origem,
		sheet:  sheet,
		backup: backup,
		mailer: mailer,
	}
}

// SubmitOrder valida a submissão, monta o pedido canônico e grava nos
// dois destinos obrigatórios, planilha primeiro e depois o backup em
// arquivo. Só devolve o pedido se os dois gravaram; qualquer falha de
// gravação vira erro de servidor. O e-mail de aviso NÃO é disparado
// aqui: o handler chama NotifyAsync depois de responder.
func (s *orderService) SubmitOrder(ctx context.Context, sub entities.Submission) (entities.Order, error) {
	v, err := validateSubmission(sub)
	if err != nil {
		return entities.Order{}, err
	}

	order := canonicalize(v, s.origem)

	if err := s.sheet.AppendRow(ctx, sheetRow(order)); err != nil {
		return entities.Order{}, fmt.Errorf("failed to append order to spreadsheet: %w", err)
	}
	if err := s.backup.WriteOrder(ctx, order); err != nil {
		return entities.Order{}, fmt.Errorf("failed to write order backup: %w", err)
	}

	s.logger.DebugContext(ctx, "order persisted", slog.String("pedido_id", order.ID))
	return order, nil
}

// canonicalize monta o pedido imutável a partir da submissão validada:
// id novo, horário atual em UTC e a origem fixa da instalação.
func canonicalize(v validatedSubmission, origem string) entities.Order {
	return entities.Order{
		ID:          uuid.NewString(),
		CriadoEm:    time.Now().UTC(),
		Origem:      origem,
		Cliente:     v.cliente,
		Endereco:    v.endereco,
		Itens:       v.itens,
		Envio:       v.envio,
		Observacoes: v.observacoes,
	}
}

// sheetRow achata o pedido nas 10 colunas da planilha.
func sheetRow(order entities.Order) []any {
	itens := make([]string, 0, len(order.Itens))
	for _, item := range order.Itens {
		itens = append(itens, fmt.Sprintf("%s (%s)", item.SKU, formatQtd(item.Qtd)))
	}

	return []any{
		order.ID,
		order.CriadoEm.Format(time.RFC3339),
		order.Cliente.Nome,
		order.Cliente.Email,
		order.Cliente.Telefone,
		order.Endereco.Municipio,
		order.Endereco.UF,
		strings.Join(itens, ", "),
		order.Envio,
		order.Observacoes,
	}
}

func formatQtd(qtd float64) string {
	return strconv.FormatFloat(qtd, 'f', -1, 64)
}

// NotifyAsync dispara o e-mail de aviso em segundo plano. Qualquer
// falha é registrada e descartada: o pedido já foi aceito e respondido,
// o aviso não pode mudar esse desfecho.
func (s *orderService) NotifyAsync(order entities.Order) {
	s.notifWG.Add(1)
	go func() {
		defer s.notifWG.Done()
		defer func() {
			if r := recover(); r != nil {
				notificationsFailed.Inc()
				s.logger.Error("panic in notification task", slog.Any("panic", r), slog.String("pedido_id", order.ID))
			}
		}()

		if err := s.notify(context.Background(), order); err != nil {
			notificationsFailed.Inc()
			s.logger.Error("failed to send order notification", slog.Any("error", err), slog.String("pedido_id", order.ID))
			return
		}
		s.logger.Debug("order notification sent", slog.String("pedido_id", order.ID))
	}()
}

func (s *orderService) notify(ctx context.Context, order entities.Order) error {
	attachment, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal order attachment: %w", err)
	}

	n := entities.Notification{
		ReplyTo:        order.Cliente.Email,
		Subject:        fmt.Sprintf("Novo pedido %s | %s | %s", order.ID, order.Endereco.UF, order.Cliente.Nome),
		Body:           notificationBody(order),
		AttachmentName: "pedido-" + order.ID + ".json",
		Attachment:     attachment,
	}
	return s.mailer.Send(ctx, n)
}

func notificationBody(order entities.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Novo pedido recebido em %s.\n\n", order.Origem)
	fmt.Fprintf(&b, "Pedido: %s\n", order.ID)
	fmt.Fprintf(&b, "Criado em: %s\n\n", order.CriadoEm.Format(time.RFC3339))

	fmt.Fprintf(&b, "Cliente: %s (%s)\n", order.Cliente.Nome, order.Cliente.TipoCliente)
	if order.Cliente.CPF != "" {
		fmt.Fprintf(&b, "CPF: %s\n", order.Cliente.CPF)
	}
	if order.Cliente.CNPJ != "" {
		fmt.Fprintf(&b, "CNPJ: %s\n", order.Cliente.CNPJ)
	}
	fmt.Fprintf(&b, "Email: %s\n", order.Cliente.Email)
	fmt.Fprintf(&b, "Telefone: %s\n\n", order.Cliente.Telefone)

	end := order.Endereco
	fmt.Fprintf(&b, "Endereço: %s, %s", end.Logradouro, end.Numero)
	if end.Complemento != "" {
		fmt.Fprintf(&b, " (%s)", end.Complemento)
	}
	fmt.Fprintf(&b, " - %s, %s/%s - CEP %s\n\n", end.Bairro, end.Municipio, end.UF, end.CEP)

	b.WriteString("Itens:\n")
	for _, item := range order.Itens {
		fmt.Fprintf(&b, "- %s x%s", item.SKU, formatQtd(item.Qtd))
		if item.Variacao != "" {
			fmt.Fprintf(&b, " (%s)", item.Variacao)
		}
		b.WriteString("\n")
	}

	if order.Envio != "" {
		fmt.Fprintf(&b, "\nEnvio: %s\n", order.Envio)
	}
	if order.Observacoes != "" {
		fmt.Fprintf(&b, "\nObservações: %s\n", order.Observacoes)
	}

	return b.String()
}

// Drain espera as notificações pendentes terminarem, respeitando o
// prazo do contexto. Usado no desligamento gracioso.
func (s *orderService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.notifWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
