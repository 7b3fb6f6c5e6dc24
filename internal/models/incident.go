package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	IncidentStatusPending    = "pending"
	IncidentStatusInProgress = "in_progress"
	IncidentStatusResolved   = "resolved"
	IncidentStatusRejected   = "rejected"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
	// PriorityCritical допустим только для экстренных ситуаций
	PriorityCritical = "critical"
)

// IncidentType - запись справочника типов инцидентов
type IncidentType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Category string `json:"category"`
}

type Incident struct {
	ID          uuid.UUID    `json:"id"`
	Type        IncidentType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Address     string       `json:"address"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	ReportedBy  string       `json:"reported_by"`
	ReportedAt  time.Time    `json:"reported_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Votes       int          `json:"votes"`
	Views       int          `json:"views"`
	Photos      []string     `json:"photos"`
	Tags        []string     `json:"tags"`
}

// IncidentQuery - фильтр списка инцидентов в терминах API.
// Category раскрывается через справочник в набор типов.
type IncidentQuery struct {
	Status   string
	TypeID   string
	Category string
	Priority string
	Limit    int
	Offset   int
}

// IncidentFilter - параметры выборки списка инцидентов.
// Limit <= 0 означает выборку без ограничения.
type IncidentFilter struct {
	Status   string
	TypeIDs  []string
	Priority string
	Limit    int
	Offset   int
}

// IsHighPriority сообщает, требует ли приоритет уведомления
func IsHighPriority(priority string) bool {
	switch priority {
	case PriorityHigh, PriorityUrgent, PriorityCritical:
		return true
	}
	return false
}
