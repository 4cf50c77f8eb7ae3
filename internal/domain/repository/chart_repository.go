package repository

import (
	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
)

// ChartRepository defines the interface for rendering chart requests.
type ChartRepository interface {
	// RenderPNG renderiza o pedido de gráfico como uma imagem PNG.
	RenderPNG(req *entity.ChartRequest) ([]byte, error)
}
