// Package pdf implementa la generación del recibo POS de la factura efímera.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + N° Factura  │  Fecha + Tipo (GST/NON-GST)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Tel + Dirección (o "Walk-in Customer")   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto (valor) | Cant | MRP | Importe              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total / Pagado / Saldo pendiente                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/tu-usuario/bms-pro/internal/application/billing"
	"github.com/tu-usuario/bms-pro/internal/application/dto"
)

// Asegura que MarotoBillGenerator implementa billing.BillPDFGenerator.
var _ appbilling.BillPDFGenerator = (*MarotoBillGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoBillGenerator implementa billing.BillPDFGenerator usando Maroto v2.
type MarotoBillGenerator struct{}

// NewMarotoBillGenerator construye el generador.
func NewMarotoBillGenerator() *MarotoBillGenerator { return &MarotoBillGenerator{} }

// GenerateBillPDF genera el recibo POS y devuelve sus bytes.
func (g *MarotoBillGenerator) GenerateBillPDF(_ context.Context, bill *dto.BillResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo POS", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(bill))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(bill))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(bill.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(bill) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(bill))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + N° factura (izq) y fecha + tipo de facturación (der).
func headerRow(bill *dto.BillResponse) core.Row {
	numFac := "POS Bill"
	if bill.InvoiceNumber > 0 {
		numFac = fmt.Sprintf("INV-%d", bill.InvoiceNumber)
	}
	fecha := time.Now().Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(numFac, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 9,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Tipo: "+bill.BillingType, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Pago: "+bill.PaymentMethod, props.Text{
				Size: 9, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente; sin nombre cae a "Walk-in Customer".
func customerRow(bill *dto.BillResponse) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE ("+bill.Category+")", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(bill.CustomerName, "Walk-in Customer"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de filas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 6, align.Left),
		h("Cant.", 1, align.Center),
		h("MRP", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableRows: una fila por línea de la factura. El valor crudo acompaña al
// nombre del producto entre paréntesis tal como se tecleó.
func tableRows(rows []dto.BillRowResponse) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		name := r.Product
		if r.EntityTypeValue != "" {
			name = fmt.Sprintf("%s (%s)", r.Product, r.EntityTypeValue)
		}
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				r.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"Rs. "+r.MRP.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"Rs. "+r.SellingValue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRows: total, pagado y, solo si queda saldo, la línea de pendiente.
func totalsRows(bill *dto.BillResponse) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	rows := []core.Row{
		row.New(6).Add(
			col.New(6),
			col.New(3).Add(label("Total:")),
			col.New(3).Add(value("Rs. "+bill.TotalSellingValue.StringFixed(2))),
		),
		row.New(6).Add(
			col.New(6),
			col.New(3).Add(label("Pagado:")),
			col.New(3).Add(value("Rs. "+bill.CustomerPaid.StringFixed(2))),
		),
	}

	if bill.BalanceDue.IsPositive() {
		rows = append(rows, row.New(7).Add(
			col.New(6),
			col.New(3).Add(text.New("Saldo pendiente:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorDanger, Right: 2,
			})),
			col.New(3).Add(text.New("Rs. "+bill.BalanceDue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorDanger, Right: 1,
			})),
		))
	}
	return rows
}

// footerRow: leyenda de cierre.
func footerRow(bill *dto.BillResponse) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Gracias por su compra. Recibo %s generado al momento de la venta; no constituye comprobante fiscal.", bill.BillingType),
			props.Text{Size: 6.5, Color: colorGray, Top: 2, Align: align.Center},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
