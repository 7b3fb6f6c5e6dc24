package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/shenikar/ciudad_activa/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockNotificationService, *mocks.MockStatisticsService) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	notifyMock := mocks.NewMockNotificationService(ctrl)
	statsMock := mocks.NewMockStatisticsService(ctrl)

	service := NewIncidentService(repoMock, notifyMock, statsMock, newTestLogger())
	return service.(*incidentService), repoMock, notifyMock, statsMock
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	cached := &models.Incident{
		ID:    incidentID,
		Title: "Bache desde caché",
		Views: 3,
	}

	// Ожидания
	repoMock.EXPECT().IncrementViews(ctx, incidentID).Return(10, nil).Times(1)
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(cached, nil).Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached.Title, incident.Title)
	assert.Equal(t, 10, incident.Views)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:    incidentID,
		Title: "Bache desde BD",
		Views: 1,
	}

	// Ожидания
	gomock.InOrder(
		repoMock.EXPECT().IncrementViews(ctx, incidentID).Return(1, nil),
		// Промах кеша
		repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil),
		repoMock.EXPECT().GetByID(ctx, incidentID).Return(expectedIncident, nil),
		repoMock.EXPECT().SetIncidentCache(ctx, expectedIncident).Return(nil),
	)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_CacheErrorFallsBackToDB(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID}

	repoMock.EXPECT().IncrementViews(ctx, incidentID).Return(2, nil)
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, errors.New("redis down"))
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(expectedIncident, nil)
	repoMock.EXPECT().SetIncidentCache(ctx, expectedIncident).Return(errors.New("redis down"))

	incident, err := service.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	dbError := fmt.Errorf("incident with id %s: %w", incidentID, models.ErrNotFound)

	// Ожидания
	repoMock.EXPECT().IncrementViews(ctx, incidentID).Return(0, dbError).Times(1)
	repoMock.EXPECT().GetIncidentFromCache(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorContains(t, err, "could not get incident")
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, notifyMock, statsMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentToCreate := &models.Incident{
		Type:      models.IncidentType{ID: "waste"},
		Title:     "Basura en la esquina",
		Latitude:  18.47,
		Longitude: -69.9,
		Status:    models.IncidentStatusResolved, // должен быть перезаписан
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *models.Incident) error {
			// Сервис заполняет справочник и значения по умолчанию до записи
			assert.Equal(t, "sanitation", inc.Type.Category)
			assert.Equal(t, models.IncidentStatusPending, inc.Status)
			assert.Equal(t, models.PriorityMedium, inc.Priority)
			assert.Equal(t, "anonymous", inc.ReportedBy)
			inc.ID = uuid.New()
			return nil
		}).Times(1)
	// Средний приоритет - без уведомления
	notifyMock.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)
	statsMock.EXPECT().RefreshStatistics(ctx).Return(nil).Times(1)

	// Действие
	err := service.CreateIncident(ctx, incidentToCreate)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, incidentToCreate.ID)
	assert.Equal(t, "Basura acumulada", incidentToCreate.Type.Name)
}

func TestCreateIncident_HighPriorityCreatesNotification(t *testing.T) {
	service, repoMock, notifyMock, statsMock := newTestIncidentService(t)
	ctx := context.Background()
	createdID := uuid.New()
	incidentToCreate := &models.Incident{
		Type:     models.IncidentType{ID: "water_leak"},
		Title:    "Tubería rota",
		Priority: models.PriorityUrgent,
		Address:  "Calle El Conde",
	}

	repoMock.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, inc *models.Incident) error {
		inc.ID = createdID
		return nil
	})
	notifyMock.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, n *models.Notification) error {
		require.NotNil(t, n.IncidentID)
		assert.Equal(t, createdID, *n.IncidentID)
		assert.Equal(t, models.NotificationTypeHighPriorityIncident, n.Type)
		assert.Contains(t, n.Message, "Calle El Conde")
		return nil
	})
	statsMock.EXPECT().RefreshStatistics(ctx).Return(nil)

	require.NoError(t, service.CreateIncident(ctx, incidentToCreate))
}

func TestCreateIncident_FollowUpFailuresDoNotFail(t *testing.T) {
	service, repoMock, notifyMock, statsMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	notifyMock.EXPECT().Notify(ctx, gomock.Any()).Return(errors.New("db hiccup"))
	statsMock.EXPECT().RefreshStatistics(ctx).Return(errors.New("db hiccup"))

	err := service.CreateIncident(ctx, &models.Incident{
		Type:     models.IncidentType{ID: "pothole"},
		Title:    "Bache profundo",
		Priority: models.PriorityHigh,
	})

	require.NoError(t, err)
}

func TestCreateIncident_UnknownType(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := service.CreateIncident(ctx, &models.Incident{Type: models.IncidentType{ID: "ufo"}, Title: "?"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateIncident_RepositoryError(t *testing.T) {
	service, repoMock, _, statsMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))
	statsMock.EXPECT().RefreshStatistics(gomock.Any()).Times(0)

	err := service.CreateIncident(ctx, &models.Incident{Type: models.IncidentType{ID: "noise"}, Title: "Ruido"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create incident")
}

func TestVoteIncident(t *testing.T) {
	tests := []struct {
		name      string
		up        bool
		wantDelta int
	}{
		{name: "up", up: true, wantDelta: 1},
		{name: "down", up: false, wantDelta: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock, _, _ := newTestIncidentService(t)
			ctx := context.Background()
			incidentID := uuid.New()

			repoMock.EXPECT().Vote(ctx, incidentID, tt.wantDelta).Return(5, nil)
			repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)

			votes, err := service.VoteIncident(ctx, incidentID, tt.up)

			require.NoError(t, err)
			assert.Equal(t, 5, votes)
		})
	}
}

func TestVoteIncident_NotFound(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().Vote(ctx, incidentID, 1).Return(0, models.ErrNotFound)
	repoMock.EXPECT().InvalidateIncidentCache(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.VoteIncident(ctx, incidentID, true)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateIncidentStatus_Resolved(t *testing.T) {
	// Подготовка
	service, repoMock, notifyMock, statsMock := newTestIncidentService(t)
	dbUpdatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	incidentID := uuid.New()
	existing := &models.Incident{
		ID:     incidentID,
		Title:  "Farola apagada",
		Status: models.IncidentStatusInProgress,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existing, nil)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, models.IncidentStatusResolved).Return(dbUpdatedAt, nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	notifyMock.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, n *models.Notification) error {
		assert.Equal(t, models.NotificationTypeIncidentResolved, n.Type)
		return nil
	})
	statsMock.EXPECT().RefreshStatistics(ctx).Return(nil)

	// Действие
	updated, err := service.UpdateIncidentStatus(ctx, incidentID, models.IncidentStatusResolved)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusResolved, updated.Status)
	assert.Equal(t, dbUpdatedAt, updated.UpdatedAt)
}

func TestUpdateIncidentStatus_InProgressNoNotification(t *testing.T) {
	service, repoMock, notifyMock, statsMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID, Status: models.IncidentStatusPending}, nil)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, models.IncidentStatusInProgress).Return(time.Now(), nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	notifyMock.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)
	statsMock.EXPECT().RefreshStatistics(ctx).Return(nil)

	_, err := service.UpdateIncidentStatus(ctx, incidentID, models.IncidentStatusInProgress)
	require.NoError(t, err)
}

func TestUpdateIncidentStatus_InvalidStatus(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t)

	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateIncidentStatus(context.Background(), uuid.New(), "archived")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateIncidentStatus_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(nil, models.ErrNotFound).Times(1)

	// Действие
	_, err := service.UpdateIncidentStatus(ctx, incidentID, models.IncidentStatusRejected)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorContains(t, err, "not found for update")
}

func TestDeleteIncident_Success(t *testing.T) {
	service, repoMock, _, statsMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().Delete(ctx, incidentID).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	statsMock.EXPECT().RefreshStatistics(ctx).Return(nil)

	require.NoError(t, service.DeleteIncident(ctx, incidentID))
}

func TestDeleteIncident_NotFound(t *testing.T) {
	service, repoMock, _, statsMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().Delete(ctx, incidentID).Return(models.ErrNotFound)
	statsMock.EXPECT().RefreshStatistics(gomock.Any()).Times(0)

	err := service.DeleteIncident(ctx, incidentID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListIncidents_Filters(t *testing.T) {
	tests := []struct {
		name       string
		query      models.IncidentQuery
		wantFilter models.IncidentFilter
	}{
		{
			name:       "no filters returns everything",
			query:      models.IncidentQuery{},
			wantFilter: models.IncidentFilter{},
		},
		{
			name:       "type only",
			query:      models.IncidentQuery{TypeID: "pothole", Status: "pending"},
			wantFilter: models.IncidentFilter{TypeIDs: []string{"pothole"}, Status: "pending"},
		},
		{
			name:       "category expands to types",
			query:      models.IncidentQuery{Category: "sanitation"},
			wantFilter: models.IncidentFilter{TypeIDs: []string{"waste", "sewer"}},
		},
		{
			name:       "limit is capped",
			query:      models.IncidentQuery{Limit: 10000, Offset: -5},
			wantFilter: models.IncidentFilter{Limit: 500},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock, _, _ := newTestIncidentService(t)
			ctx := context.Background()
			expected := []*models.Incident{{ID: uuid.New()}}

			repoMock.EXPECT().ListIncidents(ctx, tt.wantFilter).Return(expected, nil)

			incidents, err := service.ListIncidents(ctx, tt.query)

			require.NoError(t, err)
			assert.Equal(t, expected, incidents)
		})
	}
}

func TestListIncidents_DisjointTypeAndCategory(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t)

	repoMock.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	incidents, err := service.ListIncidents(context.Background(), models.IncidentQuery{TypeID: "pothole", Category: "sanitation"})

	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestNearbyIncidents_RadiusBounds(t *testing.T) {
	tests := []struct {
		name       string
		radius     int
		wantRadius int
	}{
		{name: "default", radius: 0, wantRadius: 1000},
		{name: "within bounds", radius: 250, wantRadius: 250},
		{name: "capped", radius: 1_000_000, wantRadius: 50000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock, _, _ := newTestIncidentService(t)
			ctx := context.Background()

			repoMock.EXPECT().FindNearby(ctx, 18.5, -69.9, tt.wantRadius).Return([]*models.Incident{}, nil)

			incidents, err := service.NearbyIncidents(ctx, 18.5, -69.9, tt.radius)

			require.NoError(t, err)
			assert.Empty(t, incidents)
		})
	}
}
