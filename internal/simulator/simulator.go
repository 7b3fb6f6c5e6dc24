// Package simulator генерирует фоновую активность "других горожан" для демо-стенда.
package simulator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shenikar/ciudad_activa/internal/catalog"
	"github.com/shenikar/ciudad_activa/internal/config"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/shenikar/ciudad_activa/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	simulatedReporter = "simulation"
	// Разброс координат вокруг центра, в градусах (~3 км)
	coordinateSpread = 0.03
	// Доля тиков, создающих новый инцидент
	createRatio  = 0.6
	advanceLimit = 50
)

var priorities = []string{
	models.PriorityLow,
	models.PriorityMedium,
	models.PriorityMedium,
	models.PriorityHigh,
	models.PriorityUrgent,
}

var streets = []string{
	"Av. 27 de Febrero",
	"Av. Winston Churchill",
	"Calle El Conde",
	"Av. Máximo Gómez",
	"Av. Abraham Lincoln",
	"Calle Las Damas",
}

// nextStatus - переходы статусов, которые выполняет симуляция
var nextStatus = map[string]string{
	models.IncidentStatusPending:    models.IncidentStatusInProgress,
	models.IncidentStatusInProgress: models.IncidentStatusResolved,
}

// Simulator периодически создает случайные инциденты или продвигает статус существующих
type Simulator struct {
	incidents service.IncidentService
	logger    *logrus.Logger
	interval  time.Duration
	centerLat float64
	centerLng float64
	rnd       *rand.Rand
	done      chan struct{}
}

func NewSimulator(incidents service.IncidentService, cfg *config.Config, logger *logrus.Logger) *Simulator {
	return &Simulator{
		incidents: incidents,
		logger:    logger,
		interval:  cfg.SimulationInterval,
		centerLat: cfg.SimulationCenterLat,
		centerLng: cfg.SimulationCenterLng,
		rnd:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		done:      make(chan struct{}),
	}
}

// Start запускает горутину симуляции до отмены ctx
func (s *Simulator) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval.String()).Info("Starting live simulation...")
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping live simulation.")
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
}

// Wait блокируется до остановки симуляции
func (s *Simulator) Wait() {
	<-s.done
}

func (s *Simulator) tick(ctx context.Context) {
	if s.rnd.Float64() < createRatio {
		s.createRandomIncident(ctx)
		return
	}
	s.advanceRandomIncident(ctx)
}

func (s *Simulator) createRandomIncident(ctx context.Context) {
	types := catalog.All()
	t := types[s.rnd.IntN(len(types))]

	incident := &models.Incident{
		Type:        models.IncidentType{ID: t.ID},
		Title:       fmt.Sprintf("%s reportado por vecinos", t.Name),
		Description: "Reporte generado por la simulación en vivo",
		Latitude:    s.centerLat + (s.rnd.Float64()*2-1)*coordinateSpread,
		Longitude:   s.centerLng + (s.rnd.Float64()*2-1)*coordinateSpread,
		Address:     streets[s.rnd.IntN(len(streets))],
		Priority:    priorities[s.rnd.IntN(len(priorities))],
		ReportedBy:  simulatedReporter,
		Tags:        []string{"simulated"},
	}
	if err := s.incidents.CreateIncident(ctx, incident); err != nil {
		s.logger.WithError(err).Warn("Simulation failed to create incident")
		return
	}
	s.logger.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"type":        t.ID,
	}).Debug("Simulated incident created")
}

func (s *Simulator) advanceRandomIncident(ctx context.Context) {
	status := models.IncidentStatusPending
	if s.rnd.IntN(2) == 1 {
		status = models.IncidentStatusInProgress
	}

	candidates, err := s.incidents.ListIncidents(ctx, models.IncidentQuery{Status: status, Limit: advanceLimit})
	if err != nil {
		s.logger.WithError(err).Warn("Simulation failed to list incidents")
		return
	}
	if len(candidates) == 0 {
		s.logger.WithField("status", status).Debug("No incidents to advance")
		return
	}

	target := candidates[s.rnd.IntN(len(candidates))]
	next := nextStatus[target.Status]
	if next == "" {
		return
	}
	if _, err := s.incidents.UpdateIncidentStatus(ctx, target.ID, next); err != nil {
		s.logger.WithError(err).WithField("incident_id", target.ID).Warn("Simulation failed to advance incident")
		return
	}
	s.logger.WithFields(logrus.Fields{
		"incident_id": target.ID,
		"status":      next,
	}).Debug("Simulated status change")
}
