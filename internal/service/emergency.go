package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/sirupsen/logrus"
)

var emergencyStatuses = []string{
	models.EmergencyStatusPending,
	models.EmergencyStatusInProgress,
	models.EmergencyStatusResolved,
	models.EmergencyStatusCancelled,
}

type emergencyService struct {
	repo          EmergencyRepository
	notifications NotificationService
	stats         StatisticsService
	logger        *logrus.Logger
	now           func() time.Time
}

func NewEmergencyService(repo EmergencyRepository, notifications NotificationService, stats StatisticsService, logger *logrus.Logger) EmergencyService {
	return &emergencyService{
		repo:          repo,
		notifications: notifications,
		stats:         stats,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *emergencyService) ListEmergencies(ctx context.Context, filter models.EmergencyFilter) ([]*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "emergency",
		"method":   "ListEmergencies",
		"province": filter.Province,
	})

	emergencies, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list emergencies from repository")
		return nil, fmt.Errorf("service: could not list emergencies: %w", err)
	}
	return emergencies, nil
}

// CreateEmergency регистрирует экстренную ситуацию
func (s *emergencyService) CreateEmergency(ctx context.Context, e *models.Emergency) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "emergency",
		"method":   "CreateEmergency",
		"type":     e.Type,
		"province": e.Province,
	})
	log.Info("Attempting to create a new emergency")

	e.Status = models.EmergencyStatusPending
	if e.Priority == "" {
		e.Priority = models.PriorityHigh
	}
	if e.ReportedBy == "" {
		e.ReportedBy = anonymousReporter
	}

	if err := s.repo.Create(ctx, e); err != nil {
		log.WithError(err).Error("Failed to create emergency in repository")
		return fmt.Errorf("service: could not create emergency: %w", err)
	}
	log = log.WithField("emergency_id", e.ID)
	log.Info("Emergency created successfully")

	if models.IsHighPriority(e.Priority) {
		id := e.ID
		n := &models.Notification{
			EmergencyID: &id,
			Type:        models.NotificationTypeEmergency,
			Title:       fmt.Sprintf("Emergencia: %s", e.Title),
			Message:     fmt.Sprintf("%s en %s, %s (prioridad %s)", e.Type, e.Municipality, e.Province, e.Priority),
		}
		if err := s.notifications.Notify(ctx, n); err != nil {
			log.WithError(err).Warn("Failed to create emergency notification")
		}
	}
	if err := s.stats.RefreshStatistics(ctx); err != nil {
		log.WithError(err).Warn("Failed to refresh statistics")
	}
	return nil
}

// UpdateEmergencyStatus меняет статус и, если передан, текст ответа
func (s *emergencyService) UpdateEmergencyStatus(ctx context.Context, id uuid.UUID, status, response string) (*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "UpdateEmergencyStatus",
		"emergency_id": id,
		"status":       status,
	})
	log.Info("Attempting to update emergency status")

	if !slices.Contains(emergencyStatuses, status) {
		return nil, fmt.Errorf("service: invalid emergency status %q: %w", status, ErrValidation)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent emergency")
		return nil, fmt.Errorf("service: emergency with id %s not found for update: %w", id, err)
	}

	existing.Status = status
	if response != "" {
		existing.Response = response
	}
	if status == models.EmergencyStatusResolved {
		if existing.ResolvedAt == nil {
			now := s.now()
			existing.ResolvedAt = &now
		}
	} else {
		existing.ResolvedAt = nil
	}

	if err := s.repo.UpdateStatus(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update emergency in repository")
		return nil, fmt.Errorf("service: could not update emergency: %w", err)
	}
	if err := s.stats.RefreshStatistics(ctx); err != nil {
		log.WithError(err).Warn("Failed to refresh statistics")
	}

	log.Info("Emergency status updated successfully")
	return existing, nil
}
