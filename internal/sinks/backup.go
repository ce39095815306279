package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lugorito/pedidos-http/internal/entities"
)

// FileBackup grava uma cópia integral de cada pedido em
// <dir>/pedido-<id>.json. O id é único por pedido, então requisições
// concorrentes nunca escrevem no mesmo arquivo.
type FileBackup struct {
	dir string
}

func NewFileBackup(dir string) (*FileBackup, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup dir: %w", err)
	}
	return &FileBackup{dir: dir}, nil
}

func (b *FileBackup) WriteOrder(_ context.Context, order entities.Order) error {
	data, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	path := filepath.Join(b.dir, "pedido-"+order.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write order file: %w", err)
	}
	return nil
}
