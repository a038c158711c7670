package billing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bms-pro/internal/application/dto"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/pricing"
)

// BillUseCase calcula facturas efímeras y genera su recibo POS en PDF.
// Nada de esto se persiste: la factura vive lo que dura la petición.
type BillUseCase struct {
	generator BillPDFGenerator
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(generator BillPDFGenerator) *BillUseCase {
	return &BillUseCase{generator: generator}
}

// Compute resuelve el valor de venta de cada fila con el resolver de
// precios y arma los totales. Valores malformados degradan a descuento
// cero (la factura nunca falla por una fila a medio teclear).
func (uc *BillUseCase) Compute(in dto.BillRequest) (*dto.BillResponse, error) {
	if len(in.Rows) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !pricing.ValidCategory(pricing.Category(in.Category)) {
		return nil, domain.ErrInvalidInput
	}

	rows := make([]dto.BillRowResponse, 0, len(in.Rows))
	total := decimal.Zero
	for _, r := range in.Rows {
		selling := resolveRow(r)
		rows = append(rows, dto.BillRowResponse{
			Company:         r.Company,
			Product:         r.Product,
			MRP:             r.MRP,
			MfdDate:         r.MfdDate,
			EntityType:      r.EntityType,
			EntityTypeValue: r.EntityTypeValue,
			Quantity:        r.Quantity,
			SellingValue:    selling,
		})
		total = total.Add(selling)
	}

	balance := decimal.Zero
	if in.CustomerPaid.LessThan(total) {
		balance = total.Sub(in.CustomerPaid)
	}

	return &dto.BillResponse{
		InvoiceNumber:     in.InvoiceNumber,
		Category:          in.Category,
		CustomerName:      in.CustomerName,
		BillingType:       in.BillingType,
		PaymentMethod:     in.PaymentMethod,
		Rows:              rows,
		TotalSellingValue: total,
		CustomerPaid:      in.CustomerPaid,
		BalanceDue:        balance,
	}, nil
}

// resolveRow deriva el valor de venta de una fila. Si la fila trae un
// entityType reconocido (viene de una regla almacenada) aplica su semántica:
// percentage, direct o formula (esta última nunca se evalúa, descuento cero).
// Sin entityType, el valor crudo se interpreta por su sufijo '%'.
func resolveRow(r dto.BillRowRequest) decimal.Decimal {
	et := pricing.EntityType(r.EntityType)
	if pricing.ValidEntityType(et) {
		return pricing.LineValue(r.MRP, pricing.Deduction(et, r.EntityTypeValue, r.MRP), r.Quantity)
	}
	return pricing.ResolveLine(r.EntityTypeValue, r.MRP, r.Quantity)
}

// DownloadPDF calcula la factura y renderiza el recibo POS.
// Retorna los bytes del PDF y el nombre de archivo sugerido.
func (uc *BillUseCase) DownloadPDF(ctx context.Context, in dto.BillRequest) ([]byte, string, error) {
	bill, err := uc.Compute(in)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateBillPDF(ctx, bill)
	if err != nil {
		return nil, "", fmt.Errorf("bill: generación de PDF fallida: %w", err)
	}
	filename := "POS_Bill.pdf"
	if bill.InvoiceNumber > 0 {
		filename = fmt.Sprintf("POS_Bill_INV-%d.pdf", bill.InvoiceNumber)
	}
	return pdfBytes, filename, nil
}
