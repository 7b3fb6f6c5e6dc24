package v1

import (
	"time"

	"github.com/google/uuid"
)

// IncidentTypeResponse DTO записи справочника типов
// @Description DTO записи справочника типов
type IncidentTypeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Category string `json:"category"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Type        string   `json:"type" validate:"required,incident_type"`
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description string   `json:"description,omitempty" validate:"max=2000"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Address     string   `json:"address,omitempty" validate:"max=300"`
	Priority    string   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	ReportedBy  string   `json:"reported_by,omitempty" validate:"max=100"`
	Photos      []string `json:"photos,omitempty" validate:"max=10,dive,max=2048"`
	Tags        []string `json:"tags,omitempty" validate:"max=20,dive,max=50"`
}

// ListIncidentsQuery параметры фильтрации списка инцидентов
type ListIncidentsQuery struct {
	Status   string `form:"status" validate:"omitempty,oneof=pending in_progress resolved rejected"`
	Type     string `form:"type"`
	Category string `form:"category"`
	Priority string `form:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Limit    int    `form:"limit" validate:"gte=0"`
	Offset   int    `form:"offset" validate:"gte=0"`
}

// NearbyQuery параметры поиска инцидентов рядом с точкой.
// Координаты - указатели, чтобы отличать отсутствующий параметр от нуля.
type NearbyQuery struct {
	Lat    *float64 `form:"lat" validate:"required,latitude"`
	Lng    *float64 `form:"lng" validate:"required,longitude"`
	Radius int      `form:"radius" validate:"gte=0"`
}

// VoteRequest DTO для голосования
// @Description DTO для голосования за инцидент
type VoteRequest struct {
	Direction string `json:"direction" validate:"omitempty,oneof=up down"`
}

// VoteResponse DTO с новым числом голосов
type VoteResponse struct {
	ID    uuid.UUID `json:"id"`
	Votes int       `json:"votes"`
}

// UpdateIncidentStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress resolved rejected"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID            `json:"id"`
	Type        IncidentTypeResponse `json:"type"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Latitude    float64              `json:"latitude"`
	Longitude   float64              `json:"longitude"`
	Address     string               `json:"address"`
	Status      string               `json:"status"`
	Priority    string               `json:"priority"`
	ReportedBy  string               `json:"reported_by"`
	ReportedAt  time.Time            `json:"reported_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Votes       int                  `json:"votes"`
	Views       int                  `json:"views"`
	Photos      []string             `json:"photos"`
	Tags        []string             `json:"tags"`
}

// CreateEmergencyRequest DTO для регистрации экстренной ситуации
// @Description DTO для регистрации экстренной ситуации
type CreateEmergencyRequest struct {
	Type         string  `json:"type" validate:"required,oneof=fire flood earthquake medical accident gas_leak power_outage other"`
	Title        string  `json:"title" validate:"required,min=3,max=200"`
	Description  string  `json:"description,omitempty" validate:"max=2000"`
	Province     string  `json:"province" validate:"required,max=100"`
	Municipality string  `json:"municipality" validate:"required,max=100"`
	Address      string  `json:"address,omitempty" validate:"max=300"`
	Latitude     float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Priority     string  `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	ReportedBy   string  `json:"reported_by,omitempty" validate:"max=100"`
	ContactPhone string  `json:"contact_phone,omitempty" validate:"max=30"`
}

// ListEmergenciesQuery параметры фильтрации экстренных ситуаций
type ListEmergenciesQuery struct {
	Province     string `form:"province"`
	Municipality string `form:"municipality"`
	Status       string `form:"status" validate:"omitempty,oneof=pending in_progress resolved cancelled"`
	Priority     string `form:"priority" validate:"omitempty,oneof=low medium high critical"`
}

// UpdateEmergencyStatusRequest DTO для смены статуса экстренной ситуации
// @Description DTO для смены статуса экстренной ситуации
type UpdateEmergencyStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=pending in_progress resolved cancelled"`
	Response string `json:"response,omitempty" validate:"max=2000"`
}

// EmergencyResponse DTO для ответа с информацией об экстренной ситуации
// @Description DTO для ответа с информацией об экстренной ситуации
type EmergencyResponse struct {
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
	ResolvedAt   *time.Time `json:"resolved_at"`
}

// NotificationResponse DTO уведомления
// @Description DTO уведомления
type NotificationResponse struct {
	ID          int64      `json:"id"`
	IncidentID  *uuid.UUID `json:"incident_id"`
	EmergencyID *uuid.UUID `json:"emergency_id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at"`
	Read        bool       `json:"read"`
}

// UnreadNotificationsResponse DTO непрочитанных уведомлений
type UnreadNotificationsResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Count         int                     `json:"count"`
}

// MarkAllReadResponse DTO с числом отмеченных уведомлений
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// HealthResponse DTO состояния зависимостей
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
