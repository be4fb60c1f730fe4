package order

import "github.com/acamargo/almacen-api/internal/domain"

// Status es el estado del ciclo de vida de un documento de inventario
// (entrada o salida). Enumeración cerrada: Pending es el único estado
// mutable; Approved y Void son terminales.
//
// Los valores numéricos se conservan en DB y en la API
// (0 = pendiente, 1 = aprobado, 2 = anulado).
type Status int

const (
	StatusPending  Status = 0
	StatusApproved Status = 1
	StatusVoid     Status = 2
)

// Valid indica si el valor corresponde a un estado conocido.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusVoid:
		return true
	}
	return false
}

// IsPending indica si el documento todavía admite mutaciones.
func (s Status) IsPending() bool { return s == StatusPending }

// String devuelve el nombre técnico del estado.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusVoid:
		return "void"
	}
	return "unknown"
}

// Desc devuelve la descripción legible del estado para la UI.
func (s Status) Desc() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusApproved:
		return "Aprobado"
	case StatusVoid:
		return "Anulado"
	}
	return "Desconocido"
}

// EnsureMutable es la guarda del ciclo de vida: las operaciones
// update/delete/approve/void solo proceden sobre documentos pendientes.
// Devuelve el error que explica por qué el documento ya no es mutable.
func EnsureMutable(s Status) error {
	switch s {
	case StatusPending:
		return nil
	case StatusApproved:
		return domain.ErrAlreadyApproved
	case StatusVoid:
		return domain.ErrAlreadyVoided
	}
	return domain.ErrValidation
}
