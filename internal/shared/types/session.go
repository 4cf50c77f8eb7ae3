package types

import "github.com/dmarins/cfo-copilot-go/internal/domain/entity"

// Session guarda o contexto de uma sessão interativa: a última resposta e o
// último gráfico pedido. É propriedade do chamador (CLI/exportador) e
// atualizada após cada resposta. O núcleo nunca toca neste estado.
type Session struct {
	LastAnswer string
	LastChart  *entity.ChartRequest
}

// Update registra a resposta mais recente na sessão.
func (s *Session) Update(answer entity.Answer) {
	s.LastAnswer = answer.Text
	s.LastChart = answer.Chart
}
