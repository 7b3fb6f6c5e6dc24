package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы уведомлений
const (
	NotificationTypeHighPriorityIncident = "high_priority_incident"
	NotificationTypeIncidentResolved     = "incident_resolved"
	NotificationTypeEmergency            = "emergency"
	NotificationTypeSystem               = "system"
)

type Notification struct {
	ID          int64      `json:"id"`
	IncidentID  *uuid.UUID `json:"incident_id,omitempty"`
	EmergencyID *uuid.UUID `json:"emergency_id,omitempty"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
}
