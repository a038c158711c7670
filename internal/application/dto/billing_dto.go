package dto

import "github.com/shopspring/decimal"

// BillRowRequest una fila de la factura ad-hoc. EntityTypeValue es el valor
// crudo tal como lo teclea el usuario: puede llevar sufijo '%' o ser un
// monto directo; malformado degrada a descuento cero.
type BillRowRequest struct {
	Company         string          `json:"company"`
	Product         string          `json:"product" validate:"required"`
	MRP             decimal.Decimal `json:"mrp"`
	MfdDate         string          `json:"mfdDate"`
	EntityType      string          `json:"entityType"`
	EntityTypeValue string          `json:"entityTypeValue"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// BillRequest factura efímera: se calcula y se descarga, nunca se persiste.
type BillRequest struct {
	InvoiceNumber   int              `json:"invoiceNumber"`
	Category        string           `json:"category" validate:"required,oneof=retail shop wholesale specialcustomer"`
	CustomerName    string           `json:"customerName"`
	CustomerPhone   string           `json:"customerPhone"`
	CustomerAddress string           `json:"customerAddress"`
	BillingType     string           `json:"billingType" validate:"required,oneof=GST NON-GST"`
	PaymentMethod   string           `json:"paymentMethod" validate:"required"`
	CustomerPaid    decimal.Decimal  `json:"customerPaid"`
	Rows            []BillRowRequest `json:"rows" validate:"required,min=1"`
}

// BillRowResponse fila con su valor de venta ya derivado.
type BillRowResponse struct {
	Company         string          `json:"company"`
	Product         string          `json:"product"`
	MRP             decimal.Decimal `json:"mrp"`
	MfdDate         string          `json:"mfdDate"`
	EntityType      string          `json:"entityType"`
	EntityTypeValue string          `json:"entityTypeValue"`
	Quantity        decimal.Decimal `json:"quantity"`
	SellingValue    decimal.Decimal `json:"sellingValue"`
}

// BillResponse factura calculada: filas resueltas, total y saldo pendiente.
type BillResponse struct {
	InvoiceNumber     int               `json:"invoiceNumber"`
	Category          string            `json:"category"`
	CustomerName      string            `json:"customerName"`
	BillingType       string            `json:"billingType"`
	PaymentMethod     string            `json:"paymentMethod"`
	Rows              []BillRowResponse `json:"rows"`
	TotalSellingValue decimal.Decimal   `json:"totalSellingValue"`
	CustomerPaid      decimal.Decimal   `json:"customerPaid"`
	BalanceDue        decimal.Decimal   `json:"balanceDue"`
}
