package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/acamargo/almacen-api/internal/application/dto"
	"github.com/acamargo/almacen-api/internal/application/orders"
	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/internal/domain/order"
	"github.com/acamargo/almacen-api/internal/domain/repository"
)

// OrderHandler maneja documentos de un solo tipo (entrada o salida). Se montan
// dos instancias del mismo handler: una bajo /inbound y otra bajo /outbound.
type OrderHandler struct {
	uc      *orders.UseCase
	docType order.DocType
}

// NewInboundHandler construye el handler de documentos de entrada.
func NewInboundHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc, docType: order.DocTypeInbound}
}

// NewOutboundHandler construye el handler de documentos de salida.
func NewOutboundHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc, docType: order.DocTypeOutbound}
}

// CreateInbound godoc
// @Summary      Crear documento de entrada
// @Tags         inbound
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInboundRequest  true  "Datos del documento"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inbound [post]
func (h *OrderHandler) CreateInbound(c *fiber.Ctx) error {
	var in dto.CreateInboundRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	return h.create(c, orders.CreateInput{
		Type:         order.DocTypeInbound,
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		Counterparty: in.Supplier,
		MovementDate: in.InboundDate,
		Remark:       in.Remark,
	})
}

// CreateOutbound godoc
// @Summary      Crear documento de salida
// @Tags         outbound
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutboundRequest  true  "Datos del documento"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/outbound [post]
func (h *OrderHandler) CreateOutbound(c *fiber.Ctx) error {
	var in dto.CreateOutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	return h.create(c, orders.CreateInput{
		Type:              order.DocTypeOutbound,
		ProductID:         in.ProductID,
		Quantity:          in.Quantity,
		Counterparty:      in.Receiver,
		CounterpartyPhone: in.ReceiverPhone,
		MovementDate:      in.OutboundDate,
		Remark:            in.Remark,
	})
}

func (h *OrderHandler) create(c *fiber.Ctx, input orders.CreateInput) error {
	input.CreatedBy = GetUserName(c)
	if input.CreatedBy == "" {
		input.CreatedBy = GetUserID(c)
	}
	o, err := h.uc.Create(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(o, "", ""))
}

// List godoc
// @Summary      Listar documentos
// @Tags         inbound
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        status      query  int     false  "0 pendiente, 1 aprobado, 2 anulado"
// @Param        date_from   query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        date_to     query  string  false  "Fecha final (YYYY-MM-DD)"
// @Param        page        query  int     false  "Página"           default(1)
// @Param        page_size   query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inbound [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	filter := repository.OrderFilter{
		Type:      h.docType,
		ProductID: c.Query("product_id"),
		Page:      c.QueryInt("page", 1),
		PageSize:  c.QueryInt("page_size", 20),
	}
	if raw := c.Query("status"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "VALIDATION", "status debe ser numérico")
		}
		st := order.Status(n)
		filter.Status = &st
	}
	var err error
	if filter.DateFrom, err = parseDateQuery(c.Query("date_from")); err != nil {
		return badRequest(c, "VALIDATION", "date_from debe ser YYYY-MM-DD")
	}
	if filter.DateTo, err = parseDateQuery(c.Query("date_to")); err != nil {
		return badRequest(c, "VALIDATION", "date_to debe ser YYYY-MM-DD")
	}

	rows, total, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.OrderResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, *toOrderResponse(r.Order, r.ProductName, r.ProductSKU))
	}
	return c.JSON(dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: filter.Page, PageSize: filter.PageSize, Total: total},
	})
}

// GetByID godoc
// @Summary      Obtener documento por ID
// @Tags         inbound
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inbound/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	row, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if row == nil || row.Order.Type != h.docType {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
	}
	return c.JSON(toOrderResponse(row.Order, row.ProductName, row.ProductSKU))
}

// ensureDocType verifica que el documento exista y pertenezca al tipo montado
// en la ruta; un documento del otro tipo se responde como no encontrado, igual
// que en la consulta por ID.
func (h *OrderHandler) ensureDocType(c *fiber.Ctx, id string) (bool, error) {
	row, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return false, respondError(c, err)
	}
	if row == nil || row.Order.Type != h.docType {
		return false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
	}
	return true, nil
}

// Update godoc
// @Summary      Modificar documento pendiente
// @Tags         inbound
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.UpdateOrderRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inbound/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if ok, resp := h.ensureDocType(c, id); !ok {
		return resp
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	o, err := h.uc.Update(c.Context(), id, orders.UpdateInput{
		ProductID:         in.ProductID,
		Quantity:          in.Quantity,
		Counterparty:      in.Counterparty,
		CounterpartyPhone: in.CounterpartyPhone,
		MovementDate:      in.MovementDate,
		Remark:            in.Remark,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(o, "", ""))
}

// Delete godoc
// @Summary      Borrar documento pendiente
// @Tags         inbound
// @Security     Bearer
// @Param        id  path  string  true  "ID del documento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inbound/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if ok, resp := h.ensureDocType(c, id); !ok {
		return resp
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Approve godoc
// @Summary      Aprobar documento y aplicar el movimiento a existencias
// @Tags         inbound
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inbound/{id}/approve [patch]
func (h *OrderHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if ok, resp := h.ensureDocType(c, id); !ok {
		return resp
	}
	actor := GetUserName(c)
	if actor == "" {
		actor = GetUserID(c)
	}
	o, err := h.uc.Approve(c.Context(), id, actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(o, "", ""))
}

// Void godoc
// @Summary      Anular documento pendiente
// @Tags         inbound
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inbound/{id}/void [patch]
func (h *OrderHandler) Void(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if ok, resp := h.ensureDocType(c, id); !ok {
		return resp
	}
	o, err := h.uc.Void(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(o, "", ""))
}

func parseDateQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func toOrderResponse(o *entity.Order, productName, productSKU string) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:                o.ID,
		DocumentNumber:    o.DocumentNumber,
		Type:              string(o.Type),
		ProductID:         o.ProductID,
		ProductName:       productName,
		ProductSKU:        productSKU,
		Quantity:          o.Quantity,
		Counterparty:      o.Counterparty,
		CounterpartyPhone: o.CounterpartyPhone,
		MovementDate:      o.MovementDate,
		Status:            int(o.Status),
		StatusDesc:        o.Status.Desc(),
		Remark:            o.Remark,
		CreatedBy:         o.CreatedBy,
		CreatedAt:         o.CreatedAt,
		ApprovedBy:        o.ApprovedBy,
		ApprovedAt:        o.ApprovedAt,
	}
}
