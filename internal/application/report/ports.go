package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Data instantánea del inventario con alcance aplicado, lista para renderizar.
type Data struct {
	GeneratedAt time.Time
	RequestedBy string // username del principal que pidió el reporte
	Rows        []Row
}

// Row fila del reporte: registro de inventario enriquecido con producto y empresa.
type Row struct {
	ProductCode string
	ProductName string
	CompanyName string
	Quantity    int
	PriceCOP    decimal.Decimal
}

// InventoryPDFGenerator define el puerto del renderizador del reporte.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, data *Data) ([]byte, error)
}

// Mailer define el puerto de despacho del reporte por correo.
// El envío debe aplicar un timeout acotado; su expiración es fallo de transporte.
type Mailer interface {
	SendReport(ctx context.Context, to, filename string, pdf []byte) error
}
