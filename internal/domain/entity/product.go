package entity

import "time"

// Product representa un producto a granel (trigo, maíz, cemento...).
type Product struct {
	ID        string
	Name      string
	Code      string
	Unit      string // por defecto "tonnes"
	CreatedAt time.Time
}
