package simulator

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/ciudad_activa/internal/catalog"
	"github.com/shenikar/ciudad_activa/internal/config"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/shenikar/ciudad_activa/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestSimulator(t *testing.T, interval time.Duration) (*Simulator, *mocks.MockIncidentService) {
	ctrl := gomock.NewController(t)
	incidentsMock := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		SimulationInterval:  interval,
		SimulationCenterLat: 18.4861,
		SimulationCenterLng: -69.9312,
	}
	s := NewSimulator(incidentsMock, cfg, logger)
	s.rnd = rand.New(rand.NewPCG(1, 2))
	return s, incidentsMock
}

func TestCreateRandomIncident(t *testing.T) {
	s, incidentsMock := newTestSimulator(t, time.Second)
	ctx := context.Background()

	incidentsMock.EXPECT().CreateIncident(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inc *models.Incident) error {
		_, ok := catalog.Lookup(inc.Type.ID)
		assert.True(t, ok, "type must come from the catalog")
		assert.InDelta(t, 18.4861, inc.Latitude, coordinateSpread)
		assert.InDelta(t, -69.9312, inc.Longitude, coordinateSpread)
		assert.Contains(t, priorities, inc.Priority)
		assert.Equal(t, simulatedReporter, inc.ReportedBy)
		assert.NotEmpty(t, inc.Title)
		return nil
	})

	s.createRandomIncident(ctx)
}

func TestCreateRandomIncident_ErrorIsLogged(t *testing.T) {
	s, incidentsMock := newTestSimulator(t, time.Second)

	incidentsMock.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	assert.NotPanics(t, func() { s.createRandomIncident(context.Background()) })
}

func TestAdvanceRandomIncident(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		wantStatus string
	}{
		{name: "pending moves to in progress", current: models.IncidentStatusPending, wantStatus: models.IncidentStatusInProgress},
		{name: "in progress moves to resolved", current: models.IncidentStatusInProgress, wantStatus: models.IncidentStatusResolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, incidentsMock := newTestSimulator(t, time.Second)
			ctx := context.Background()
			incidentID := uuid.New()

			incidentsMock.EXPECT().
				ListIncidents(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, q models.IncidentQuery) ([]*models.Incident, error) {
					assert.Equal(t, advanceLimit, q.Limit)
					return []*models.Incident{{ID: incidentID, Status: tt.current}}, nil
				})
			incidentsMock.EXPECT().
				UpdateIncidentStatus(ctx, incidentID, tt.wantStatus).
				Return(&models.Incident{ID: incidentID, Status: tt.wantStatus}, nil)

			s.advanceRandomIncident(ctx)
		})
	}
}

func TestAdvanceRandomIncident_NothingToAdvance(t *testing.T) {
	s, incidentsMock := newTestSimulator(t, time.Second)

	incidentsMock.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return([]*models.Incident{}, nil)
	incidentsMock.EXPECT().UpdateIncidentStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.advanceRandomIncident(context.Background())
}

func TestSimulator_StartStop(t *testing.T) {
	s, incidentsMock := newTestSimulator(t, 5*time.Millisecond)

	ticked := make(chan struct{}, 1)
	signal := func() {
		select {
		case ticked <- struct{}{}:
		default:
		}
	}
	incidentsMock.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *models.Incident) error {
		signal()
		return nil
	}).AnyTimes()
	incidentsMock.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.IncidentQuery) ([]*models.Incident, error) {
		signal()
		return nil, nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("simulation did not tick")
	}

	cancel()
	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "simulation did not stop")
	}
}
