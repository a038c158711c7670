package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/bms-pro/internal/application/billing"
	"github.com/tu-usuario/bms-pro/internal/application/dto"
	"github.com/tu-usuario/bms-pro/internal/domain"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func billFixture() dto.BillRequest {
	return dto.BillRequest{
		InvoiceNumber: 123,
		Category:      "retail",
		CustomerName:  "Walk-in",
		BillingType:   "GST",
		PaymentMethod: "cash",
		CustomerPaid:  d("100"),
		Rows: []dto.BillRowRequest{
			{Product: "Jabón", MRP: d("100"), EntityTypeValue: "10%", Quantity: d("2")},
			{Product: "Aceite", MRP: d("200"), EntityTypeValue: "20", Quantity: d("1")},
		},
	}
}

func TestCompute_FilasYTotales(t *testing.T) {
	uc := billing.NewBillUseCase(nil) // Compute no usa el generador

	out, err := uc.Compute(billFixture())
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)

	// (100 - 10%) * 2 = 180 ; (200 - 20) * 1 = 180
	assert.True(t, out.Rows[0].SellingValue.Equal(d("180")), "fila porcentaje: %s", out.Rows[0].SellingValue)
	assert.True(t, out.Rows[1].SellingValue.Equal(d("180")), "fila directa: %s", out.Rows[1].SellingValue)
	assert.True(t, out.TotalSellingValue.Equal(d("360")))

	// Pagó 100 de 360 → saldo pendiente 260.
	assert.True(t, out.BalanceDue.Equal(d("260")))
}

func TestCompute_PagoCompletoSinSaldo(t *testing.T) {
	uc := billing.NewBillUseCase(nil)
	in := billFixture()
	in.CustomerPaid = d("500")

	out, err := uc.Compute(in)
	require.NoError(t, err)
	assert.True(t, out.BalanceDue.IsZero(), "pago completo no debe dejar saldo")
}

func TestCompute_FilaMalformadaDegradaACero(t *testing.T) {
	uc := billing.NewBillUseCase(nil)
	in := billFixture()
	in.Rows = []dto.BillRowRequest{
		{Product: "X", MRP: d("100"), EntityTypeValue: "garbage", Quantity: d("3")},
	}

	out, err := uc.Compute(in)
	require.NoError(t, err, "valor malformado nunca debe fallar")
	// descuento 0 → 100 * 3 = 300
	assert.True(t, out.Rows[0].SellingValue.Equal(d("300")))
}

// Filas con entityType explícito aplican la semántica de la regla almacenada
// en vez de adivinar por el sufijo del valor.
func TestCompute_FilaConEntityTypeAplicaSemantica(t *testing.T) {
	uc := billing.NewBillUseCase(nil)
	in := billFixture()
	in.Rows = []dto.BillRowRequest{
		// percentage: "10" significa 10% del MRP aunque no traiga sufijo.
		{Product: "Jabón", MRP: d("100"), EntityType: "percentage", EntityTypeValue: "10", Quantity: d("2")},
		// direct: el valor es un monto en moneda.
		{Product: "Aceite", MRP: d("200"), EntityType: "direct", EntityTypeValue: "20", Quantity: d("1")},
	}

	out, err := uc.Compute(in)
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)
	assert.True(t, out.Rows[0].SellingValue.Equal(d("180")), "porcentaje: %s", out.Rows[0].SellingValue)
	assert.True(t, out.Rows[1].SellingValue.Equal(d("180")), "directo: %s", out.Rows[1].SellingValue)
}

// Una fórmula nunca se evalúa: descuento cero y el valor crudo se conserva
// en la fila de salida tal cual llegó.
func TestCompute_FormulaNoSeEvalua(t *testing.T) {
	uc := billing.NewBillUseCase(nil)
	in := billFixture()
	in.Rows = []dto.BillRowRequest{
		{Product: "Arroz", MRP: d("50"), EntityType: "formula", EntityTypeValue: "mrp*0.9-5", Quantity: d("2")},
	}

	out, err := uc.Compute(in)
	require.NoError(t, err)
	assert.True(t, out.Rows[0].SellingValue.Equal(d("100")), "fórmula: descuento cero → 50*2")
	assert.Equal(t, "mrp*0.9-5", out.Rows[0].EntityTypeValue)
}

func TestCompute_SinFilasEsInvalido(t *testing.T) {
	uc := billing.NewBillUseCase(nil)
	in := billFixture()
	in.Rows = nil

	_, err := uc.Compute(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompute_CategoriaInvalida(t *testing.T) {
	uc := billing.NewBillUseCase(nil)
	in := billFixture()
	in.Category = "mayoreo"

	_, err := uc.Compute(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Idempotencia: computar dos veces la misma factura produce el mismo total.
func TestCompute_Idempotente(t *testing.T) {
	uc := billing.NewBillUseCase(nil)

	first, err := uc.Compute(billFixture())
	require.NoError(t, err)
	second, err := uc.Compute(billFixture())
	require.NoError(t, err)

	assert.True(t, first.TotalSellingValue.Equal(second.TotalSellingValue))
}
