package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de validación de reglas.
var (
	ErrInvalidEntityType     = errors.New("entityType inválido")
	ErrInvalidCategory       = errors.New("categoría de precio inválida")
	ErrMissingValue          = errors.New("la entrada de precio requiere un valor")
	ErrEmptySpecialCustomers = errors.New("specialcustomer requiere al menos una persona con valor")
)

var hundred = decimal.NewFromInt(100)

// ParseDeduction interpreta un valor crudo de fila de factura y devuelve el
// descuento efectivo sobre el MRP:
//
//	"10%" → MRP × 10/100    (porcentaje del MRP)
//	"20"  → 20              (monto directo)
//	"abc" → 0               (entrada malformada degrada a cero, nunca error)
//
// El fail-soft es deliberado: la factura se recalcula en cada edición y una
// entrada a medio teclear no debe tumbar el cálculo.
func ParseDeduction(raw string, mrp decimal.Decimal) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "%") {
		pct := parseOrZero(strings.ReplaceAll(raw, "%", ""))
		return mrp.Mul(pct).Div(hundred)
	}
	return parseOrZero(raw)
}

// Deduction calcula el descuento efectivo según la semántica del EntityType
// sobre un valor ya almacenado en la regla del producto.
//
//   - percentage: MRP × valor/100
//   - direct:     el valor literal (ya es un monto en moneda)
//   - formula:    cero; el valor es opaco y su evaluación queda fuera de
//     este resolver (se conserva y muestra tal cual)
func Deduction(entityType EntityType, rawValue string, mrp decimal.Decimal) decimal.Decimal {
	switch entityType {
	case EntityPercentage:
		// Las reglas guardadas pueden traer el sufijo '%' del formulario.
		pct := strings.TrimSuffix(strings.TrimSpace(rawValue), "%")
		return mrp.Mul(parseOrZero(pct)).Div(hundred)
	case EntityDirect:
		return parseOrZero(rawValue)
	default:
		return decimal.Zero
	}
}

// LineValue valor de venta de una línea: (MRP − descuento) × cantidad.
// MRP o cantidad en cero producen cero, no error (una fila a medio llenar
// no aporta ni resta al total). Puramente funcional: recalcular con las
// mismas entradas produce siempre el mismo resultado.
func LineValue(mrp, deduction, quantity decimal.Decimal) decimal.Decimal {
	if mrp.IsZero() || quantity.IsZero() {
		return decimal.Zero
	}
	return mrp.Sub(deduction).Mul(quantity)
}

// ResolveLine deriva el valor de venta de una fila ad-hoc de factura a
// partir de su valor crudo (posiblemente con sufijo '%') y cantidad.
func ResolveLine(rawValue string, mrp, quantity decimal.Decimal) decimal.Decimal {
	return LineValue(mrp, ParseDeduction(rawValue, mrp), quantity)
}

// UnitPrice precio unitario de venta bajo una regla almacenada: MRP − descuento.
func UnitPrice(entityType EntityType, rawValue string, mrp decimal.Decimal) decimal.Decimal {
	return mrp.Sub(Deduction(entityType, rawValue, mrp))
}

func parseOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
