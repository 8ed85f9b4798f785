package handler

import "github.com/lesrhabilleurs/atelier-backend/internal/gallery"

type CasesResponse struct {
	Cases []gallery.Case `json:"cases"`
	Total int            `json:"total"`
}

type RepairTypesResponse struct {
	RepairTypes []gallery.RepairTypeInfo `json:"repairTypes"`
}
