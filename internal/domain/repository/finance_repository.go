package repository

import (
	"context"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
)

// FinanceRepository defines the interface for loading the finance tables.
type FinanceRepository interface {
	// LoadSnapshot lê as quatro tabelas (actuals, budget, fx, cash) do
	// diretório de dados e monta o snapshot imutável da sessão.
	LoadSnapshot(ctx context.Context, dataDir string) (*entity.FinanceSnapshot, error)
}
