package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acamargo/almacen-api/internal/application/dto"
	"github.com/acamargo/almacen-api/internal/domain"
)

// errorStatus mapea cada error de dominio a su status HTTP y código estable.
// Los handlers nunca inventan códigos: todo error de casos de uso pasa por aquí.
var errorStatus = map[error]struct {
	status int
	code   string
}{
	domain.ErrValidation:          {fiber.StatusBadRequest, "VALIDATION"},
	domain.ErrNotFound:            {fiber.StatusNotFound, "NOT_FOUND"},
	domain.ErrProductNotFound:     {fiber.StatusNotFound, "PRODUCT_NOT_FOUND"},
	domain.ErrCategoryNotFound:    {fiber.StatusNotFound, "CATEGORY_NOT_FOUND"},
	domain.ErrUserNotFound:        {fiber.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrProductDisabled:     {fiber.StatusConflict, "PRODUCT_DISABLED"},
	domain.ErrCategoryDisabled:    {fiber.StatusConflict, "CATEGORY_DISABLED"},
	domain.ErrInsufficientStock:   {fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	domain.ErrAlreadyApproved:     {fiber.StatusConflict, "ALREADY_APPROVED"},
	domain.ErrAlreadyVoided:       {fiber.StatusConflict, "ALREADY_VOIDED"},
	domain.ErrSequenceExhausted:   {fiber.StatusConflict, "SEQUENCE_EXHAUSTED"},
	domain.ErrConcurrencyConflict: {fiber.StatusConflict, "CONCURRENCY_CONFLICT"},
	domain.ErrDuplicate:           {fiber.StatusConflict, "DUPLICATE"},
	domain.ErrInUse:               {fiber.StatusConflict, "IN_USE"},
	domain.ErrEmailAlreadyExists:  {fiber.StatusConflict, "EMAIL_EXISTS"},
	domain.ErrUnauthorized:        {fiber.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrForbidden:           {fiber.StatusForbidden, "FORBIDDEN"},
}

// respondError traduce un error de dominio a la respuesta HTTP correspondiente.
// Errores no mapeados (fallas de infraestructura) salen como 500 INTERNAL.
func respondError(c *fiber.Ctx, err error) error {
	for sentinel, m := range errorStatus {
		if errors.Is(err, sentinel) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: sentinel.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
