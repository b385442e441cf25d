package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/report"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP para Inventory (protegido),
// incluidos el reporte de stock bajo y el reporte PDF.
type InventoryHandler struct {
	uc         *usecase.InventoryUseCase
	reportUC   *report.UseCase
	principals *usecase.PrincipalService
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase, reportUC *report.UseCase, principals *usecase.PrincipalService) *InventoryHandler {
	return &InventoryHandler{uc: uc, reportUC: reportUC, principals: principals}
}

// Create godoc
// @Summary      Crear registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Datos del registro"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	p, err := principalFromCtx(c, h.principals)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.CompanyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y company_id son requeridos"})
	}
	out, err := h.uc.Create(p, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar registros de inventario visibles para el usuario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	p, err := principalFromCtx(c, h.principals)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de inventario por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	p, err := principalFromCtx(c, h.principals)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(p, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	p, err := principalFromCtx(c, h.principals)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(p, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	p, err := principalFromCtx(c, h.principals)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(p, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LowStock godoc
// @Summary      Registros con cantidad por debajo o igual al umbral
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral de stock bajo"  default(10)
// @Success      200  {array}   dto.InventoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/low_stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	p, err := principalFromCtx(c, h.principals)
	if err != nil {
		return respondError(c, err)
	}
	raw := c.Query("threshold", strconv.Itoa(usecase.DefaultLowStockThreshold))
	threshold, err := strconv.Atoi(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "threshold debe ser un entero", Field: "threshold",
		})
	}
	out, err := h.uc.LowStock(p, threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GeneratePDF godoc
// @Summary      Generar reporte PDF del inventario
// @Description  Sin email el PDF vuelve en la respuesta. Con email se despacha por correo (o se guarda en disco en modo debug).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Produce      application/pdf
// @Param        body  body  dto.GeneratePDFRequest  false  "Destino del reporte"
// @Success      200   {object}  dto.GeneratePDFResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/generate_pdf [post]
func (h *InventoryHandler) GeneratePDF(c *fiber.Ctx) error {
	p, err := principalFromCtx(c, h.principals)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.GeneratePDFRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}

	res, err := h.reportUC.GenerateInventoryReport(c.Context(), p, in.Email)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrGeneratePDF):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: err.Error()})
		case errors.Is(err, report.ErrSendEmail):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EMAIL_DELIVERY", Message: err.Error()})
		default:
			return respondError(c, err)
		}
	}

	// Sin destino: el PDF viaja en el cuerpo de la respuesta.
	if in.Email == "" {
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
		return c.Send(res.PDF)
	}

	if res.DevMode {
		return c.JSON(dto.GeneratePDFResponse{
			Message:  "PDF generated and email simulated successfully",
			Filename: res.Filename,
			DevMode:  true,
			PDFPath:  res.PDFPath,
		})
	}
	return c.JSON(dto.GeneratePDFResponse{
		Message:  "PDF generated and sent successfully",
		Filename: res.Filename,
	})
}
