package entity

import "time"

// Client representa um cliente da oficina.
// Phone é guardado já formatado: "(11) 99999-9999".
type Client struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	Notes     string
	CreatedAt time.Time
}
