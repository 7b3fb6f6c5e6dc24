package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/ciudad_activa/internal/catalog"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheRepo(t *testing.T) (*IncidentRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewIncidentRepository(nil, client, time.Minute).(*IncidentRepository)
	return repo, mr
}

func TestIncidentCache_MissReturnsNil(t *testing.T) {
	repo, _ := newCacheRepo(t)

	incident, err := repo.GetIncidentFromCache(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, incident)
}

func TestIncidentCache_SetGetInvalidate(t *testing.T) {
	repo, mr := newCacheRepo(t)
	ctx := context.Background()
	pothole, _ := catalog.Lookup("pothole")
	incident := &models.Incident{
		ID:        uuid.New(),
		Type:      pothole,
		Title:     "Bache en la avenida",
		Latitude:  18.48,
		Longitude: -69.93,
		Status:    models.IncidentStatusPending,
		Priority:  models.PriorityMedium,
		Photos:    []string{"https://cdn.example.com/a.jpg"},
		Tags:      []string{"avenida"},
	}

	require.NoError(t, repo.SetIncidentCache(ctx, incident))
	assert.True(t, mr.Exists(incidentCacheKey(incident.ID)))
	assert.Equal(t, time.Minute, mr.TTL(incidentCacheKey(incident.ID)))

	cached, err := repo.GetIncidentFromCache(ctx, incident.ID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, incident.Title, cached.Title)
	assert.Equal(t, pothole, cached.Type)
	assert.Equal(t, incident.Photos, cached.Photos)

	require.NoError(t, repo.InvalidateIncidentCache(ctx, incident.ID))
	assert.False(t, mr.Exists(incidentCacheKey(incident.ID)))
}

func TestIncidentCache_CorruptedValue(t *testing.T) {
	repo, mr := newCacheRepo(t)
	id := uuid.New()
	require.NoError(t, mr.Set(incidentCacheKey(id), "{not json"))

	_, err := repo.GetIncidentFromCache(context.Background(), id)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unmarshal")
}
