package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/ciudad_activa/internal/config"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func testEvent() WebhookEvent {
	incidentID := uuid.New()
	return WebhookEvent{
		Event: EventNotificationCreated,
		Notification: &models.Notification{
			ID:         7,
			IncidentID: &incidentID,
			Type:       models.NotificationTypeHighPriorityIncident,
			Title:      "Incidente urgente",
		},
		Timestamp: time.Now().UTC(),
	}
}

func TestRedisWebhookPublisher_Publish(t *testing.T) {
	client, mr := newTestRedis(t)
	publisher := NewRedisWebhookPublisher(client)

	event := testEvent()
	require.NoError(t, publisher.Publish(context.Background(), event))

	items, err := mr.List(webhookQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var decoded WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(items[0]), &decoded))
	assert.Equal(t, EventNotificationCreated, decoded.Event)
	assert.Equal(t, int64(7), decoded.Notification.ID)
	assert.Equal(t, *event.Notification.IncidentID, *decoded.Notification.IncidentID)
}

func TestProcessWebhookEvent_SignsPayload(t *testing.T) {
	var gotSignature, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewWebhookWorker(nil, newTestLogger(), cfg)

	payload := `{"event":"notification.created"}`
	ok := worker.processWebhookEvent(context.Background(), testEvent(), payload)

	assert.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestProcessWebhookEvent_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewWebhookWorker(nil, newTestLogger(), cfg)

	ok := worker.processWebhookEvent(context.Background(), testEvent(), "{}")

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewWebhookWorker(nil, newTestLogger(), cfg)

	ok := worker.processWebhookEvent(context.Background(), testEvent(), "{}")

	assert.False(t, ok)
	assert.Equal(t, int32(2), calls.Load())
}

func TestProcessWebhookEvent_NoURL(t *testing.T) {
	worker := NewWebhookWorker(nil, newTestLogger(), &config.Config{WebhookMaxRetries: 1})

	assert.False(t, worker.processWebhookEvent(context.Background(), testEvent(), "{}"))
}

func TestWebhookWorker_DeliversQueuedEvents(t *testing.T) {
	received := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, _ := newTestRedis(t)
	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 1,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewWebhookWorker(client, newTestLogger(), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx)

	require.NoError(t, NewRedisWebhookPublisher(client).Publish(ctx, testEvent()))

	select {
	case body := <-received:
		assert.Contains(t, body, EventNotificationCreated)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	cancel()
	worker.Wait()
}
