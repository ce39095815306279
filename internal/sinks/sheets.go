package sinks

import (
	"context"
	"fmt"

	"github.com/lugorito/pedidos-http/internal/config"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSink acrescenta linhas na planilha de pedidos do Google Sheets.
// Cada append é atômico do lado do servidor, então chamadas concorrentes
// não precisam de coordenação aqui.
type SheetsSink struct {
	svc           *sheets.Service
	spreadsheetID string
	appendRange   string
}

func NewSheetsSink(ctx context.Context, cfg config.Sheets) (*SheetsSink, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &SheetsSink{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		appendRange:   cfg.AppendRange,
	}, nil
}

func (s *SheetsSink) AppendRow(ctx context.Context, row []any) error {
	vr := &sheets.ValueRange{Values: [][]any{row}}

	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.appendRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to spreadsheet: %w", err)
	}
	return nil
}
