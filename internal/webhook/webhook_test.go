package webhook

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/campus_geofence/internal/config"
	"github.com/shenikar/campus_geofence/internal/models"
	"github.com/shenikar/campus_geofence/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func testBreach() models.BreachEvent {
	return models.BreachEvent{
		ID:          uuid.New(),
		StudentID:   "STU-001",
		StudentName: "Alice Johnson",
		Timestamp:   time.Date(2023, time.November, 1, 13, 0, 0, 0, time.UTC),
		Position:    models.Coordinate{Latitude: 34.0599, Longitude: -118.2449},
		Message:     "Alice Johnson (STU-001) left Main Campus",
	}
}

func newTestWorker(url, secret string, retries int) *WebhookWorker {
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: retries,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(nil, quietLogger(), cfg)
}

func TestNewWebhookEvent(t *testing.T) {
	ev := testBreach()
	got := NewWebhookEvent(ev)

	assert.Equal(t, EventTypeBreach, got.Type)
	assert.Equal(t, ev.ID, got.BreachID)
	assert.Equal(t, "STU-001", got.StudentID)
	assert.Equal(t, 34.0599, got.Latitude)
	assert.Equal(t, -118.2449, got.Longitude)
	assert.Equal(t, ev.Timestamp, got.Timestamp)
}

func TestDeliver_SignsPayload(t *testing.T) {
	const payload = `{"type":"student.breach","student_id":"STU-001"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, payload, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, generateHMACSHA256(payload, "s3cret"), r.Header.Get(signatureHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "s3cret", 3)
	require.NoError(t, w.deliver(context.Background(), WebhookEvent{StudentID: "STU-001"}, payload))
}

func TestDeliver_NoSecretNoSignature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(signatureHeader))
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "", 1)
	require.NoError(t, w.deliver(context.Background(), WebhookEvent{}, `{}`))
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "", 3)
	require.NoError(t, w.deliver(context.Background(), WebhookEvent{}, `{}`))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "", 2)
	assert.Error(t, w.deliver(context.Background(), WebhookEvent{}, `{}`))
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_NoURL(t *testing.T) {
	w := newTestWorker("", "", 3)
	assert.NoError(t, w.deliver(context.Background(), WebhookEvent{}, `{}`))
}

func TestGenerateHMACSHA256(t *testing.T) {
	a := generateHMACSHA256("payload", "k1")
	assert.Len(t, a, 64)
	assert.Equal(t, a, generateHMACSHA256("payload", "k1"))
	assert.NotEqual(t, a, generateHMACSHA256("payload", "k2"))
}

func TestMultiPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockAlertPublisher(ctrl)
	second := mocks.NewMockAlertPublisher(ctrl)
	ev := testBreach()

	first.EXPECT().Publish(gomock.Any(), ev).Return(errors.New("redis down"))
	second.EXPECT().Publish(gomock.Any(), ev).Return(nil)

	err := MultiPublisher{first, second}.Publish(context.Background(), ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")

	assert.NoError(t, MultiPublisher{}.Publish(context.Background(), ev))
}
