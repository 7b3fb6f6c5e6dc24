package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EmergencyStatusPending    = "pending"
	EmergencyStatusInProgress = "in_progress"
	EmergencyStatusResolved   = "resolved"
	EmergencyStatusCancelled  = "cancelled"
)

// Emergency - экстренная ситуация в пределах провинции/муниципалитета
type Emergency struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Province     string     `json:"province"`
	Municipality string     `json:"municipality"`
	Address      string     `json:"address"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	ReportedBy   string     `json:"reported_by"`
	ContactPhone string     `json:"contact_phone"`
	Response     string     `json:"response"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

type EmergencyFilter struct {
	Province     string
	Municipality string
	Status       string
	Priority     string
}
