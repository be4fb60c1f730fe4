package order

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/acamargo/almacen-api/internal/domain"
)

// DocType distingue entradas (IN) de salidas (OUT). El prefijo forma parte
// del número de documento y de la clave del contador diario.
type DocType string

const (
	DocTypeInbound  DocType = "IN"
	DocTypeOutbound DocType = "OUT"
)

// Valid indica si el tipo es uno de los conocidos.
func (t DocType) Valid() bool {
	return t == DocTypeInbound || t == DocTypeOutbound
}

// Desc devuelve la descripción legible del tipo de documento.
func (t DocType) Desc() string {
	switch t {
	case DocTypeInbound:
		return "Entrada"
	case DocTypeOutbound:
		return "Salida"
	}
	return "Desconocido"
}

// MaxDailySequence es el tope del contador diario por tipo de documento.
// Alcanzado el tope, la creación de documentos falla hasta el día siguiente.
const MaxDailySequence = 9999

const dateLayout = "20060102"

var numberPattern = regexp.MustCompile(`^(IN|OUT)(\d{8})(\d{4})$`)

// FormatNumber compone el número de documento: <PREFIJO><YYYYMMDD><secuencia 4 dígitos>.
// Ej: IN202601040001, OUT202601040023. El número es único e inmutable.
func FormatNumber(t DocType, day time.Time, seq int) (string, error) {
	if !t.Valid() {
		return "", domain.ErrValidation
	}
	if seq < 1 || seq > MaxDailySequence {
		return "", domain.ErrSequenceExhausted
	}
	return fmt.Sprintf("%s%s%04d", t, day.Format(dateLayout), seq), nil
}

// ParseNumber descompone un número de documento en tipo, día y secuencia.
func ParseNumber(number string) (DocType, time.Time, int, error) {
	m := numberPattern.FindStringSubmatch(number)
	if m == nil {
		return "", time.Time{}, 0, domain.ErrValidation
	}
	day, err := time.Parse(dateLayout, m[2])
	if err != nil {
		return "", time.Time{}, 0, domain.ErrValidation
	}
	seq, err := strconv.Atoi(m[3])
	if err != nil || seq < 1 {
		return "", time.Time{}, 0, domain.ErrValidation
	}
	return DocType(m[1]), day, seq, nil
}
