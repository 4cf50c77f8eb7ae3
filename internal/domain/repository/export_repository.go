package repository

import (
	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportSnapshotToCSV(report *entity.SnapshotReport, filename, outputDir string) (string, error)
	ExportSnapshotToJSON(report *entity.SnapshotReport, filename, outputDir string) (string, error)
	ExportSnapshotToPDF(report *entity.SnapshotReport, filename, outputDir string) (string, error)
}
