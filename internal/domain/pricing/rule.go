// Package pricing contiene la lógica de derivación de precios de venta:
// las reglas por categoría de cliente que acompañan a cada producto y el
// resolver que calcula el valor de venta de una línea de factura.
package pricing

// EntityType semántica numérica del valor de una regla de precio.
type EntityType string

const (
	// EntityPercentage el valor es un porcentaje de descuento sobre el MRP.
	EntityPercentage EntityType = "percentage"
	// EntityDirect el valor es un monto de descuento directo en moneda.
	EntityDirect EntityType = "direct"
	// EntityFormula el valor es una expresión opaca: se almacena y muestra
	// tal cual, nunca se evalúa aquí (no existe intérprete de fórmulas).
	EntityFormula EntityType = "formula"
)

// Categorías de cliente para las entradas de una regla.
type Category string

const (
	CategoryRetail          Category = "retail"
	CategoryShop            Category = "shop"
	CategoryWholesale       Category = "wholesale"
	CategorySpecialCustomer Category = "specialcustomer"
)

// ValidEntityType informa si t es uno de los tres tipos reconocidos.
func ValidEntityType(t EntityType) bool {
	return t == EntityPercentage || t == EntityDirect || t == EntityFormula
}

// ValidCategory informa si c es una de las cuatro categorías reconocidas.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryRetail, CategoryShop, CategoryWholesale, CategorySpecialCustomer:
		return true
	}
	return false
}

// SpecialCustomer precio personalizado para una persona concreta, por fuera
// de las categorías estándar. Value sigue la semántica del EntityType del producto.
type SpecialCustomer struct {
	PersonName string `json:"personName"`
	Value      string `json:"value"`
}

// RuleEntry una entrada de la regla de precios de un producto.
// Para categorías estándar Value es obligatorio; para specialcustomer lo
// obligatorio es la lista SpecialCustomers (y nunca vacía).
type RuleEntry struct {
	Category         Category          `json:"category"`
	Value            string            `json:"value,omitempty"`
	SpecialCustomers []SpecialCustomer `json:"specialCustomers,omitempty"`
}

// Rule conjunto de entradas de precio de un producto. Se fija al crear el
// producto y se reemplaza completo en cada actualización, nunca se parchea.
type Rule []RuleEntry

// ValueFor devuelve el valor crudo para una categoría estándar.
// El segundo retorno es false si la categoría no tiene entrada.
func (r Rule) ValueFor(c Category) (string, bool) {
	for _, e := range r {
		if e.Category == c && c != CategorySpecialCustomer {
			return e.Value, true
		}
	}
	return "", false
}

// SpecialValueFor devuelve el valor crudo para una persona de la entrada
// specialcustomer. El segundo retorno es false si no existe.
func (r Rule) SpecialValueFor(personName string) (string, bool) {
	for _, e := range r {
		if e.Category != CategorySpecialCustomer {
			continue
		}
		for _, sc := range e.SpecialCustomers {
			if sc.PersonName == personName {
				return sc.Value, true
			}
		}
	}
	return "", false
}

// Validate verifica los invariantes de la regla frente al EntityType del
// producto: categorías reconocidas, valor presente en entradas estándar y
// lista de personas no vacía en specialcustomer.
func (r Rule) Validate(entityType EntityType) error {
	if !ValidEntityType(entityType) {
		return ErrInvalidEntityType
	}
	for _, e := range r {
		if !ValidCategory(e.Category) {
			return ErrInvalidCategory
		}
		if e.Category == CategorySpecialCustomer {
			if len(e.SpecialCustomers) == 0 {
				return ErrEmptySpecialCustomers
			}
			for _, sc := range e.SpecialCustomers {
				if sc.PersonName == "" || sc.Value == "" {
					return ErrEmptySpecialCustomers
				}
			}
			continue
		}
		if e.Value == "" {
			return ErrMissingValue
		}
	}
	return nil
}
