package entity

import "time"

// Customer representa un cliente. Se desactiva vía Status, nunca se borra.
type Customer struct {
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
