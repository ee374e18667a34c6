package entity

import "time"

// Supplier representa un proveedor. Se desactiva vía Status, nunca se borra.
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	City      string
	Country   string
	TaxID     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
