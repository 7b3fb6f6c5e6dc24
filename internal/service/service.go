package service

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/ciudad_activa/internal/models"
)

// ErrValidation оборачивает ошибки входных данных, которые хендлер отдает как 400
var ErrValidation = errors.New("validation error")

// IncidentRepository определяет контракт для работы с бд и кешем инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (time.Time, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
	Vote(ctx context.Context, id uuid.UUID, delta int) (int, error)
	FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Incident, error)

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

type EmergencyRepository interface {
	Create(ctx context.Context, e *models.Emergency) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Emergency, error)
	List(ctx context.Context, filter models.EmergencyFilter) ([]*models.Emergency, error)
	UpdateStatus(ctx context.Context, e *models.Emergency) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	List(ctx context.Context, limit int, unreadOnly bool) ([]*models.Notification, error)
	CountUnread(ctx context.Context) (int, error)
	MarkAsRead(ctx context.Context, id int64) error
	MarkAllAsRead(ctx context.Context) (int64, error)
}

type StatisticsRepository interface {
	Refresh(ctx context.Context) (*models.Statistics, error)
	Get(ctx context.Context) (*models.Statistics, error)
	CountByType(ctx context.Context) ([]models.TypeCount, error)
	Monthly(ctx context.Context, months int) ([]models.MonthlyStat, error)
	LocationGrid(ctx context.Context, precision int) ([]models.LocationCell, error)
}

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	ListIncidents(ctx context.Context, query models.IncidentQuery) ([]*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	CreateIncident(ctx context.Context, incident *models.Incident) error
	VoteIncident(ctx context.Context, id uuid.UUID, up bool) (int, error)
	UpdateIncidentStatus(ctx context.Context, id uuid.UUID, status string) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id uuid.UUID) error
	NearbyIncidents(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Incident, error)
}

type EmergencyService interface {
	ListEmergencies(ctx context.Context, filter models.EmergencyFilter) ([]*models.Emergency, error)
	CreateEmergency(ctx context.Context, e *models.Emergency) error
	UpdateEmergencyStatus(ctx context.Context, id uuid.UUID, status, response string) (*models.Emergency, error)
}

type NotificationService interface {
	Notify(ctx context.Context, n *models.Notification) error
	ListNotifications(ctx context.Context, limit int) ([]*models.Notification, error)
	ListUnread(ctx context.Context) ([]*models.Notification, int, error)
	MarkAsRead(ctx context.Context, id int64) error
	MarkAllAsRead(ctx context.Context) (int64, error)
}

type StatisticsService interface {
	GetStatistics(ctx context.Context) (*models.Statistics, error)
	RefreshStatistics(ctx context.Context) error
	ByCategory(ctx context.Context) ([]models.CategoryStat, error)
	Monthly(ctx context.Context, months int) ([]models.MonthlyStat, error)
	Location(ctx context.Context, precision int) ([]models.LocationCell, error)
}
