package csvdata

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
	"github.com/dmarins/cfo-copilot-go/internal/domain/repository"
	"github.com/dmarins/cfo-copilot-go/internal/shared/types"
)

// Nomes fixos das quatro tabelas dentro do diretório de dados.
const (
	actualsFile = "actuals.csv"
	budgetFile  = "budget.csv"
	fxFile      = "fx.csv"
	cashFile    = "cash.csv"
)

// CSVFinanceRepositoryImpl implementa o FinanceRepository lendo tabelas CSV.
type CSVFinanceRepositoryImpl struct{}

// NewCSVFinanceRepository cria uma nova implementação do FinanceRepository.
func NewCSVFinanceRepository() repository.FinanceRepository {
	return &CSVFinanceRepositoryImpl{}
}

// LoadSnapshot lê as quatro tabelas e monta o snapshot imutável da sessão.
// O snapshot é construído uma única vez e nunca modificado depois.
func (r *CSVFinanceRepositoryImpl) LoadSnapshot(ctx context.Context, dataDir string) (*entity.FinanceSnapshot, error) {
	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		return nil, types.ErrDataDirNotFound
	}

	actuals, err := readLedgerFile(filepath.Join(dataDir, actualsFile))
	if err != nil {
		return nil, err
	}
	budget, err := readLedgerFile(filepath.Join(dataDir, budgetFile))
	if err != nil {
		return nil, err
	}
	fx, err := readFxFile(filepath.Join(dataDir, fxFile))
	if err != nil {
		return nil, err
	}
	cash, err := readCashFile(filepath.Join(dataDir, cashFile))
	if err != nil {
		return nil, err
	}

	return &entity.FinanceSnapshot{
		Actuals: actuals,
		Budget:  budget,
		Fx:      fx,
		Cash:    cash,
	}, nil
}

// readLedgerFile lê uma tabela com colunas month,account_category,amount,currency.
func readLedgerFile(path string) ([]entity.LedgerRow, error) {
	records, err := readTable(path, 4)
	if err != nil {
		return nil, err
	}

	rows := make([]entity.LedgerRow, 0, len(records))
	for i, record := range records {
		amount, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid amount %q on line %d: %w", filepath.Base(path), record[2], i+2, err)
		}
		rows = append(rows, entity.LedgerRow{
			Month:           record[0],
			AccountCategory: record[1],
			Amount:          amount,
			Currency:        record[3],
		})
	}
	return rows, nil
}

// readFxFile lê uma tabela com colunas month,currency,rate_to_usd.
func readFxFile(path string) ([]entity.FxRate, error) {
	records, err := readTable(path, 3)
	if err != nil {
		return nil, err
	}

	rates := make([]entity.FxRate, 0, len(records))
	for i, record := range records {
		rate, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid rate %q on line %d: %w", filepath.Base(path), record[2], i+2, err)
		}
		rates = append(rates, entity.FxRate{
			Month:     record[0],
			Currency:  record[1],
			RateToUSD: rate,
		})
	}
	return rates, nil
}

// readCashFile lê uma tabela com colunas month,cash_usd.
func readCashFile(path string) ([]entity.CashPoint, error) {
	records, err := readTable(path, 2)
	if err != nil {
		return nil, err
	}

	points := make([]entity.CashPoint, 0, len(records))
	for i, record := range records {
		cash, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid cash value %q on line %d: %w", filepath.Base(path), record[1], i+2, err)
		}
		points = append(points, entity.CashPoint{
			Month:   record[0],
			CashUSD: cash,
		})
	}
	return points, nil
}

// readTable abre um CSV, descarta o cabeçalho e devolve os registros de dados.
func readTable(path string, fields int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening data file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = fields
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	// Primeira linha é o cabeçalho.
	return records[1:], nil
}
