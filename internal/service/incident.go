package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/shenikar/ciudad_activa/internal/catalog"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultNearbyRadius = 1000
	maxNearbyRadius     = 50000
	maxListLimit        = 500
	anonymousReporter   = "anonymous"
)

var incidentStatuses = []string{
	models.IncidentStatusPending,
	models.IncidentStatusInProgress,
	models.IncidentStatusResolved,
	models.IncidentStatusRejected,
}

type incidentService struct {
	repo          IncidentRepository
	notifications NotificationService
	stats         StatisticsService
	logger        *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, notifications NotificationService, stats StatisticsService, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:          repo,
		notifications: notifications,
		stats:         stats,
		logger:        logger,
	}
}

// ListIncidents возвращает инциденты по фильтру
func (s *incidentService) ListIncidents(ctx context.Context, query models.IncidentQuery) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "ListIncidents",
		"status":   query.Status,
		"type":     query.TypeID,
		"category": query.Category,
	})

	filter := models.IncidentFilter{
		Status:   query.Status,
		Priority: query.Priority,
		Limit:    query.Limit,
		Offset:   query.Offset,
	}
	if filter.Limit < 0 {
		filter.Limit = 0
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	typeIDs, ok := resolveTypeFilter(query.TypeID, query.Category)
	if !ok {
		log.Debug("Type and category filters do not intersect")
		return []*models.Incident{}, nil
	}
	filter.TypeIDs = typeIDs

	incidents, err := s.repo.ListIncidents(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// resolveTypeFilter раскрывает тип и категорию в набор идентификаторов типов.
// ok == false, если фильтр заведомо ничего не вернет.
func resolveTypeFilter(typeID, category string) ([]string, bool) {
	switch {
	case typeID == "" && category == "":
		return nil, true
	case category == "":
		return []string{typeID}, true
	}

	ids := catalog.TypeIDsByCategory(category)
	if typeID != "" {
		if !slices.Contains(ids, typeID) {
			return nil, false
		}
		return []string{typeID}, true
	}
	if len(ids) == 0 {
		return nil, false
	}
	return ids, true
}

// GetIncident получает инцидент по ID и увеличивает счетчик просмотров
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	views, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to increment incident views")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		cached.Views = views
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// CreateIncident создает инцидент со статусом pending
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"title":   incident.Title,
		"type":    incident.Type.ID,
	})
	log.Info("Attempting to create a new incident")

	incidentType, ok := catalog.Lookup(incident.Type.ID)
	if !ok {
		log.Warn("Unknown incident type")
		return fmt.Errorf("service: unknown incident type %q: %w", incident.Type.ID, ErrValidation)
	}
	incident.Type = incidentType
	incident.Status = models.IncidentStatusPending
	if incident.Priority == "" {
		incident.Priority = models.PriorityMedium
	}
	if incident.ReportedBy == "" {
		incident.ReportedBy = anonymousReporter
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}
	log = log.WithField("incident_id", incident.ID)
	log.Info("Incident created successfully")

	// Уведомление и пересчет статистики не влияют на результат запроса
	if models.IsHighPriority(incident.Priority) {
		id := incident.ID
		n := &models.Notification{
			IncidentID: &id,
			Type:       models.NotificationTypeHighPriorityIncident,
			Title:      fmt.Sprintf("Incidente de prioridad %s: %s", incident.Priority, incident.Title),
			Message:    fmt.Sprintf("%s reportado en %s", incident.Type.Name, incident.Address),
		}
		if err := s.notifications.Notify(ctx, n); err != nil {
			log.WithError(err).Warn("Failed to create high priority notification")
		}
	}
	s.refreshStatistics(ctx, log)
	return nil
}

// VoteIncident изменяет голоса ровно на единицу
func (s *incidentService) VoteIncident(ctx context.Context, id uuid.UUID, up bool) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "VoteIncident",
		"incident_id": id,
		"up":          up,
	})

	delta := 1
	if !up {
		delta = -1
	}
	votes, err := s.repo.Vote(ctx, id, delta)
	if err != nil {
		log.WithError(err).Warn("Failed to vote for incident")
		return 0, fmt.Errorf("service: could not vote for incident: %w", err)
	}
	s.invalidate(ctx, log, id)

	log.WithField("votes", votes).Info("Vote registered")
	return votes, nil
}

// UpdateIncidentStatus меняет статус инцидента
func (s *incidentService) UpdateIncidentStatus(ctx context.Context, id uuid.UUID, status string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncidentStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to update incident status")

	if !slices.Contains(incidentStatuses, status) {
		return nil, fmt.Errorf("service: invalid incident status %q: %w", status, ErrValidation)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %s not found for update: %w", id, err)
	}
	previous := existing.Status

	updatedAt, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Error("Failed to update incident status in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}
	s.invalidate(ctx, log, id)

	existing.Status = status
	existing.UpdatedAt = updatedAt

	if status == models.IncidentStatusResolved && previous != models.IncidentStatusResolved {
		n := &models.Notification{
			IncidentID: &id,
			Type:       models.NotificationTypeIncidentResolved,
			Title:      fmt.Sprintf("Incidente resuelto: %s", existing.Title),
			Message:    fmt.Sprintf("El reporte de %s ha sido marcado como resuelto", existing.Type.Name),
		}
		if err := s.notifications.Notify(ctx, n); err != nil {
			log.WithError(err).Warn("Failed to create resolution notification")
		}
	}
	s.refreshStatistics(ctx, log)

	log.WithField("previous_status", previous).Info("Incident status updated successfully")
	return existing, nil
}

// DeleteIncident удаляет инцидент
func (s *incidentService) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}
	s.invalidate(ctx, log, id)
	s.refreshStatistics(ctx, log)

	log.Info("Incident deleted successfully")
	return nil
}

// NearbyIncidents находит нерешенные инциденты рядом с точкой
func (s *incidentService) NearbyIncidents(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Incident, error) {
	if radiusMeters <= 0 {
		radiusMeters = defaultNearbyRadius
	}
	if radiusMeters > maxNearbyRadius {
		radiusMeters = maxNearbyRadius
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "NearbyIncidents",
		"radius":  radiusMeters,
	})

	incidents, err := s.repo.FindNearby(ctx, lat, lon, radiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find incidents by location")
		return nil, fmt.Errorf("service: failed to find nearby incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Nearby search completed")
	return incidents, nil
}

func (s *incidentService) invalidate(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
}

func (s *incidentService) refreshStatistics(ctx context.Context, log *logrus.Entry) {
	if err := s.stats.RefreshStatistics(ctx); err != nil {
		log.WithError(err).Warn("Failed to refresh statistics")
	}
}
