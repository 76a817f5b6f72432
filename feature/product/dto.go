package product

import (
	"strings"

	"stock-counter/feature/inventory/models"
)

// User facing messages.
const (
	MsgFound      = "Produto encontrado: %s"
	MsgNotFound   = "Produto não cadastrado."
	MsgRegistered = "Produto \"%s\" cadastrado com sucesso."
	MsgDuplicate  = "Erro: Código de barras já existe no banco de dados."
)

// ScanRequest is the body of POST /api/escanear. The barcode is matched
// exactly as sent; a value no product could have is simply not found.
type ScanRequest struct {
	Barcode string `json:"codigo_barra" validate:"required"`
}

// ScanResponse answers a scan. Name is only set when the product exists.
type ScanResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Barcode string `json:"codigo_barra"`
	Name    string `json:"nome,omitempty"`
}

// RegisterRequest is the body of POST /api/cadastrar_produto.
type RegisterRequest struct {
	Barcode string `json:"codigo_barra" validate:"notblank,max=128"`
	Name    string `json:"nome" validate:"required,max=255"`
}

// Normalize trims the name. The barcode is stored exactly as scanned.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// MessageResponse is the {success, message} envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProductView is one row of the full listing.
type ProductView struct {
	Barcode string `json:"codigo_barra"`
	Name    string `json:"nome"`
	Stock   int    `json:"estoque_atual"`
}

// NewProductViews maps products to listing rows. Never returns nil.
func NewProductViews(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{Barcode: p.Barcode, Name: p.Name, Stock: p.Stock})
	}
	return views
}
