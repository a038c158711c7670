package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/bms-pro/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del resolver de precios: semántica percentage/direct/formula,
// parsing de valores con sufijo '%', degradación a cero y casos borde.
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// percentage: MRP=100, valor=10, qty=2 → (100 - 10) * 2 = 180
func TestDeduction_Percentage(t *testing.T) {
	mrp := d("100")
	ded := pricing.Deduction(pricing.EntityPercentage, "10", mrp)
	assert.True(t, ded.Equal(d("10")), "10%% de 100 debe ser 10, fue %s", ded)

	total := pricing.LineValue(mrp, ded, d("2"))
	assert.True(t, total.Equal(d("180")), "(100-10)*2 debe ser 180, fue %s", total)
}

// Una regla percentage puede venir guardada con o sin el sufijo '%' del
// formulario: ambas formas significan lo mismo.
func TestDeduction_PercentageToleraSufijo(t *testing.T) {
	mrp := d("100")
	assert.True(t, pricing.Deduction(pricing.EntityPercentage, "10%", mrp).Equal(d("10")))
	assert.True(t, pricing.Deduction(pricing.EntityPercentage, " 10% ", mrp).Equal(d("10")))
}

// direct: MRP=100, valor=15, qty=3 → (100-15)*3 = 255
func TestDeduction_Direct(t *testing.T) {
	mrp := d("100")
	ded := pricing.Deduction(pricing.EntityDirect, "15", mrp)
	assert.True(t, ded.Equal(d("15")), "descuento directo debe ser el valor literal")

	total := pricing.LineValue(mrp, ded, d("3"))
	assert.True(t, total.Equal(d("255")))
}

// formula: el valor es opaco, el resolver no lo evalúa → descuento cero.
func TestDeduction_Formula_NoSeEvalua(t *testing.T) {
	ded := pricing.Deduction(pricing.EntityFormula, "mrp*0.9-5", d("100"))
	assert.True(t, ded.IsZero(), "formula nunca se evalúa en el resolver")

	// El precio unitario queda igual al MRP: el caller decide qué hacer con la fórmula.
	unit := pricing.UnitPrice(pricing.EntityFormula, "mrp*0.9-5", d("100"))
	assert.True(t, unit.Equal(d("100")))
}

// Override en línea "10%" sobre MRP=200 → descuento 20; "20" sin '%' → 20 directo.
func TestParseDeduction_PorcentajeYDirecto(t *testing.T) {
	assert.True(t, pricing.ParseDeduction("10%", d("200")).Equal(d("20")))
	assert.True(t, pricing.ParseDeduction("20", d("200")).Equal(d("20")))
}

// Entrada malformada degrada a descuento cero, nunca a error.
func TestParseDeduction_MalformadoDegradaACero(t *testing.T) {
	assert.True(t, pricing.ParseDeduction("abc", d("100")).IsZero())
	assert.True(t, pricing.ParseDeduction("", d("100")).IsZero())
	assert.True(t, pricing.ParseDeduction("%", d("100")).IsZero())
	assert.True(t, pricing.ParseDeduction("12a%", d("100")).IsZero())
}

// Cantidad o MRP cero producen valor de venta cero para cualquier semántica.
func TestLineValue_CantidadOCeroMRP(t *testing.T) {
	assert.True(t, pricing.ResolveLine("10%", d("100"), decimal.Zero).IsZero())
	assert.True(t, pricing.ResolveLine("15", decimal.Zero, d("5")).IsZero(),
		"MRP cero produce venta cero incluso con descuento directo")
	assert.True(t, pricing.ResolveLine("", decimal.Zero, d("5")).IsZero())
	assert.True(t, pricing.ResolveLine("0%", decimal.Zero, d("3")).IsZero())
}

// Idempotencia: recalcular con entradas idénticas produce el mismo resultado.
func TestResolveLine_Idempotente(t *testing.T) {
	first := pricing.ResolveLine("12.5%", d("240"), d("4"))
	second := pricing.ResolveLine("12.5%", d("240"), d("4"))
	assert.True(t, first.Equal(second), "el recálculo no debe derivar")
	assert.True(t, first.Equal(d("840")), "(240-30)*4 = 840, fue %s", first)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la regla de precios: búsqueda por categoría y validación.
// ──────────────────────────────────────────────────────────────────────────────

func ruleFixture() pricing.Rule {
	return pricing.Rule{
		{Category: pricing.CategoryRetail, Value: "10"},
		{Category: pricing.CategoryShop, Value: "15"},
		{Category: pricing.CategoryWholesale, Value: "22.5"},
		{Category: pricing.CategorySpecialCustomer, SpecialCustomers: []pricing.SpecialCustomer{
			{PersonName: "Ramesh", Value: "30"},
		}},
	}
}

func TestRule_ValueFor(t *testing.T) {
	r := ruleFixture()

	v, ok := r.ValueFor(pricing.CategoryWholesale)
	require.True(t, ok)
	assert.Equal(t, "22.5", v)

	_, ok = r.ValueFor(pricing.CategorySpecialCustomer)
	assert.False(t, ok, "specialcustomer no se resuelve como categoría estándar")
}

func TestRule_SpecialValueFor(t *testing.T) {
	r := ruleFixture()

	v, ok := r.SpecialValueFor("Ramesh")
	require.True(t, ok)
	assert.Equal(t, "30", v)

	_, ok = r.SpecialValueFor("desconocido")
	assert.False(t, ok)
}

func TestRule_Validate(t *testing.T) {
	require.NoError(t, ruleFixture().Validate(pricing.EntityPercentage))

	// Entrada estándar sin valor.
	bad := pricing.Rule{{Category: pricing.CategoryRetail}}
	assert.ErrorIs(t, bad.Validate(pricing.EntityDirect), pricing.ErrMissingValue)

	// specialcustomer con lista vacía.
	bad = pricing.Rule{{Category: pricing.CategorySpecialCustomer}}
	assert.ErrorIs(t, bad.Validate(pricing.EntityDirect), pricing.ErrEmptySpecialCustomers)

	// Categoría desconocida.
	bad = pricing.Rule{{Category: "mayorista", Value: "5"}}
	assert.ErrorIs(t, bad.Validate(pricing.EntityDirect), pricing.ErrInvalidCategory)

	// EntityType desconocido.
	assert.ErrorIs(t, ruleFixture().Validate("escalonado"), pricing.ErrInvalidEntityType)
}
