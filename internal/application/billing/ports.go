package billing

import (
	"context"

	"github.com/tu-usuario/bms-pro/internal/application/dto"
)

// BillPDFGenerator puerto de generación del recibo POS imprimible.
// La implementación (Maroto) vive en infrastructure/pdf.
type BillPDFGenerator interface {
	GenerateBillPDF(ctx context.Context, bill *dto.BillResponse) ([]byte, error)
}
