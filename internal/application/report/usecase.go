package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/catalogo-api/internal/domain/access"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// Errores del reporte. La generación y la entrega fallan por separado y se
// reportan como errores distintos.
var (
	ErrGeneratePDF = errors.New("no se pudo generar el PDF del inventario")
	ErrSendEmail   = errors.New("no se pudo enviar el reporte por correo")
)

// Config opciones del caso de uso de reportes.
type Config struct {
	Debug  bool   // en desarrollo el correo se simula y el PDF se guarda en DevDir
	DevDir string
}

// UseCase genera el reporte PDF del inventario visible para el principal y,
// si se pide, lo despacha por correo (o lo deja en disco en modo debug).
type UseCase struct {
	invRepo     repository.InventoryRepository
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	generator   InventoryPDFGenerator
	mailer      Mailer
	cfg         Config
}

// NewUseCase construye el caso de uso inyectando puertos y configuración.
// El flag de debug llega aquí en construcción; nunca se lee del ambiente.
func NewUseCase(
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	generator InventoryPDFGenerator,
	mailer Mailer,
	cfg Config,
) *UseCase {
	return &UseCase{
		invRepo:     invRepo,
		productRepo: productRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		generator:   generator,
		mailer:      mailer,
		cfg:         cfg,
	}
}

// Result resultado de la generación del reporte.
type Result struct {
	PDF      []byte // solo cuando no hay correo de destino
	Filename string
	Sent     bool // true si el correo salió de verdad
	DevMode  bool // true si el envío se simuló en disco
	PDFPath  string
}

// GenerateInventoryReport arma la instantánea con alcance, renderiza el PDF y
// lo entrega según el destino:
//   - email vacío: el PDF vuelve en Result.PDF para la respuesta HTTP.
//   - email + debug: el PDF se guarda en DevDir y se reporta DevMode.
//   - email + producción: se despacha por SMTP; el fallo de envío es
//     ErrSendEmail, distinto del fallo de render ErrGeneratePDF.
func (uc *UseCase) GenerateInventoryReport(ctx context.Context, p access.Principal, email string) (*Result, error) {
	data, err := uc.buildData(p)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := uc.generator.GenerateInventoryPDF(ctx, data)
	if err != nil {
		log.Error().Err(err).Msg("generación del PDF de inventario fallida")
		return nil, fmt.Errorf("%w: %v", ErrGeneratePDF, err)
	}

	filename := fmt.Sprintf("inventory_report_%s.pdf", data.GeneratedAt.Format("20060102_150405"))

	if email == "" {
		return &Result{PDF: pdfBytes, Filename: filename}, nil
	}

	if uc.cfg.Debug {
		path, err := uc.stagePDF(filename, pdfBytes)
		if err != nil {
			log.Error().Err(err).Msg("no se pudo guardar el PDF en el directorio de desarrollo")
			return nil, fmt.Errorf("%w: %v", ErrGeneratePDF, err)
		}
		log.Info().Str("email", email).Str("pdf", path).Msg("modo desarrollo: envío de correo simulado")
		return &Result{Filename: filename, DevMode: true, PDFPath: path}, nil
	}

	if err := uc.mailer.SendReport(ctx, email, filename, pdfBytes); err != nil {
		log.Error().Err(err).Str("email", email).Msg("envío del reporte por correo fallido")
		return nil, fmt.Errorf("%w: %v", ErrSendEmail, err)
	}
	return &Result{Filename: filename, Sent: true}, nil
}

// buildData arma la instantánea: inventario con alcance del principal,
// enriquecido con producto y empresa, más marca de tiempo y solicitante.
func (uc *UseCase) buildData(p access.Principal) (*Data, error) {
	list, err := uc.invRepo.List()
	if err != nil {
		return nil, err
	}
	scoped := access.Inventories(p, list)

	rows := make([]Row, 0, len(scoped))
	for _, inv := range scoped {
		row := Row{Quantity: inv.Quantity}
		if product, pErr := uc.productRepo.GetByID(inv.ProductID); pErr == nil && product != nil {
			row.ProductCode = product.Code
			row.ProductName = product.Name
			row.PriceCOP = product.PriceCOP
		}
		if company, cErr := uc.companyRepo.GetByID(inv.CompanyID); cErr == nil && company != nil {
			row.CompanyName = company.Name
		}
		rows = append(rows, row)
	}

	requestedBy := p.UserID
	if user, uErr := uc.userRepo.GetByID(p.UserID); uErr == nil && user != nil {
		requestedBy = user.Username
	}

	return &Data{
		GeneratedAt: time.Now(),
		RequestedBy: requestedBy,
		Rows:        rows,
	}, nil
}

// stagePDF escribe el PDF en el directorio de desarrollo (lo crea si no existe).
func (uc *UseCase) stagePDF(filename string, pdf []byte) (string, error) {
	if err := os.MkdirAll(uc.cfg.DevDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(uc.cfg.DevDir, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
