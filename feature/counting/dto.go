package counting

import (
	"time"

	"stock-counter/feature/inventory/models"
)

// User facing messages.
const (
	MsgSaved      = "Contagem salva e estoque atualizado com sucesso!"
	MsgSaveFailed = "Erro ao salvar contagem: %v"
)

// SaveResponse answers POST /api/salvar_contagem.
type SaveResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Applied int      `json:"aplicados"`
	Skipped []string `json:"ignorados"`
}

// HistoryView is one history row.
type HistoryView struct {
	ProductID *uint     `json:"produto_id"`
	Barcode   string    `json:"codigo_barra_lido"`
	Quantity  int       `json:"quantidade"`
	CountedAt time.Time `json:"data_hora"`
}

// NewHistoryViews maps history rows for output. Never returns nil.
func NewHistoryViews(rows []models.CountHistory) []HistoryView {
	views := make([]HistoryView, 0, len(rows))
	for _, r := range rows {
		views = append(views, HistoryView{
			ProductID: r.ProductID,
			Barcode:   r.Barcode,
			Quantity:  r.Quantity,
			CountedAt: r.CountedAt,
		})
	}
	return views
}
