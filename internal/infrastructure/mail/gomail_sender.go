package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/tu-usuario/catalogo-api/internal/application/report"
	"github.com/tu-usuario/catalogo-api/pkg/config"
	"gopkg.in/gomail.v2"
)

// Asegura que GomailSender implementa report.Mailer.
var _ report.Mailer = (*GomailSender)(nil)

// GomailSender despacha el reporte de inventario por SMTP con el PDF adjunto.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender construye el adaptador con la configuración SMTP inyectada.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// SendReport envía el PDF adjunto al destinatario. Respeta la cancelación del
// contexto: el dial/envío corre en una goroutine y la expiración del contexto
// se reporta como fallo de transporte.
func (s *GomailSender) SendReport(ctx context.Context, to, filename string, pdf []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Inventory PDF Report")
	msg.SetBody("text/plain", "Please find attached the inventory report.")
	msg.Attach(filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(pdf))
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	done := make(chan error, 1)
	go func() { done <- dialer.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mail: enviar reporte: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mail: envío cancelado o expirado: %w", ctx.Err())
	}
}
