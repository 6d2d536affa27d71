package dto

import "github.com/shopspring/decimal"

// Altas de datos maestros (admin). Solo unicidad de códigos; sin más reglas.

type CreateClientRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Contact string `json:"contact"`
}

type CreateProductRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Unit string `json:"unit"`
}

type CreateWarehouseRequest struct {
	Name     string          `json:"name"`
	Code     string          `json:"code"`
	Location string          `json:"location"`
	Capacity decimal.Decimal `json:"capacity"`
}

type CreateDriverRequest struct {
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	LicenseNumber string          `json:"license_number"`
	TruckNumber   string          `json:"truck_number"`
	TruckCapacity decimal.Decimal `json:"truck_capacity"`
}
