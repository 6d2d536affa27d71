package entity

import "time"

// Client representa un cliente dueño de mercancía almacenada.
type Client struct {
	ID        string
	Name      string
	Code      string
	Contact   string
	CreatedAt time.Time
}
