package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cada error se mapea en la capa HTTP a un código estable y un status.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrValidation          = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrProductDisabled     = errors.New("producto deshabilitado")
	ErrCategoryNotFound    = errors.New("categoría no encontrada")
	ErrCategoryDisabled    = errors.New("categoría deshabilitada")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrAlreadyApproved     = errors.New("el documento ya fue aprobado")
	ErrAlreadyVoided       = errors.New("el documento ya fue anulado")
	ErrSequenceExhausted   = errors.New("límite diario de documentos alcanzado")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia, reintente la operación")
	ErrInUse               = errors.New("el recurso tiene registros asociados")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)
