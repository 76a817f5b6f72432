package models

import "time"

// Table names are part of the persisted contract and stay as created by the
// first version of the counter.
const (
	ProductsTable = "Produtos"
	HistoryTable  = "Historico_Contagem"
)

// Product is a registered item, identified by its barcode.
// Stock is only ever written by a counting session.
type Product struct {
	ID      uint   `gorm:"column:id;primaryKey"`
	Barcode string `gorm:"column:codigo_barra;type:varchar(128);uniqueIndex;not null"`
	Name    string `gorm:"column:nome;type:varchar(255);not null"`
	Stock   int    `gorm:"column:estoque_atual;not null;default:0"`
}

// TableName pins the table name.
func (Product) TableName() string { return ProductsTable }

// CountHistory is one applied observation of a counting session.
// Quantity is the delta added to stock, not a running total. Rows are append-only.
type CountHistory struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	ProductID *uint     `gorm:"column:produto_id;index"`
	Product   *Product  `gorm:"foreignKey:ProductID;references:ID"`
	Barcode   string    `gorm:"column:codigo_barra_lido;type:varchar(128);not null"`
	Quantity  int       `gorm:"column:quantidade;not null"`
	CountedAt time.Time `gorm:"column:data_hora;not null"`
}

// TableName pins the table name.
func (CountHistory) TableName() string { return HistoryTable }

// All lists the models in dependency order.
func All() []any {
	return []any{&Product{}, &CountHistory{}}
}
