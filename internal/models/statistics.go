package models

import "time"

// Statistics - кэшированная сводка по таблицам инцидентов и экстренных ситуаций
type Statistics struct {
	Total             int       `json:"total"`
	Pending           int       `json:"pending"`
	InProgress        int       `json:"in_progress"`
	Resolved          int       `json:"resolved"`
	Rejected          int       `json:"rejected"`
	EmergenciesTotal  int       `json:"emergencies_total"`
	EmergenciesActive int       `json:"emergencies_active"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TypeCount - число инцидентов одного типа
type TypeCount struct {
	TypeID   string
	Total    int
	Resolved int
}

type CategoryStat struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	Resolved int    `json:"resolved"`
}

type MonthlyStat struct {
	Month    string `json:"month"`
	Created  int    `json:"created"`
	Resolved int    `json:"resolved"`
}

// LocationCell - ячейка координатной сетки для тепловой карты
type LocationCell struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Count     int     `json:"count"`
	Intensity float64 `json:"intensity"`
}
