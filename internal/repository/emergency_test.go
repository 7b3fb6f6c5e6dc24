package repository

import (
	"context"
	"testing"

	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmergency(lat, lon float64) *models.Emergency {
	return &models.Emergency{
		Type:       "fire",
		Title:      "Incendio en almacén",
		Province:   "Santo Domingo",
		Latitude:   lat,
		Longitude:  lon,
		Priority:   models.PriorityHigh,
		Status:     models.EmergencyStatusPending,
		ReportedBy: "anonymous",
	}
}

func TestEmergencyPoint(t *testing.T) {
	lon, lat := emergencyPoint(newTestEmergency(0, 0))
	assert.Nil(t, lon)
	assert.Nil(t, lat)

	lon, lat = emergencyPoint(newTestEmergency(0, -78.5))
	require.NotNil(t, lon)
	require.NotNil(t, lat)
	assert.Equal(t, -78.5, *lon)
	assert.Equal(t, 0.0, *lat)
}

func TestEmergencyRepository_LocationNullWithoutCoordinates(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmergencyRepository(db)
	ctx := context.Background()

	withoutPoint := newTestEmergency(0, 0)
	require.NoError(t, repo.Create(ctx, withoutPoint))
	withPoint := newTestEmergency(18.4861, -69.9312)
	require.NoError(t, repo.Create(ctx, withPoint))

	var isNull bool
	require.NoError(t, db.QueryRow(ctx, `SELECT location IS NULL FROM emergencies WHERE id = $1;`, withoutPoint.ID).Scan(&isNull))
	assert.True(t, isNull)
	require.NoError(t, db.QueryRow(ctx, `SELECT location IS NULL FROM emergencies WHERE id = $1;`, withPoint.ID).Scan(&isNull))
	assert.False(t, isNull)

	got, err := repo.GetByID(ctx, withoutPoint.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Latitude)
	assert.Zero(t, got.Longitude)

	got, err = repo.GetByID(ctx, withPoint.ID)
	require.NoError(t, err)
	assert.InDelta(t, 18.4861, got.Latitude, 1e-9)
	assert.InDelta(t, -69.9312, got.Longitude, 1e-9)
}

func TestEmergencyRepository_UpdateStatusAndFilter(t *testing.T) {
	repo := NewEmergencyRepository(newTestDB(t))
	ctx := context.Background()

	e := newTestEmergency(18.4861, -69.9312)
	require.NoError(t, repo.Create(ctx, e))
	other := newTestEmergency(19.4517, -70.6970)
	other.Province = "Santiago"
	require.NoError(t, repo.Create(ctx, other))

	e.Status = models.EmergencyStatusResolved
	e.Response = "Bomberos en el lugar"
	resolvedAt := e.CreatedAt
	e.ResolvedAt = &resolvedAt
	require.NoError(t, repo.UpdateStatus(ctx, e))

	list, err := repo.List(ctx, models.EmergencyFilter{Province: "Santo Domingo"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.EmergencyStatusResolved, list[0].Status)
	assert.Equal(t, "Bomberos en el lugar", list[0].Response)
	require.NotNil(t, list[0].ResolvedAt)
	assert.True(t, list[0].UpdatedAt.Equal(e.UpdatedAt))
}
