package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/campus_geofence/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

var breachRequest = models.NotificationRequest{
	IsBreaching:         true,
	StudentName:         "Alice Johnson",
	StudentID:           "STU-001",
	LocationCoordinates: "34.0599, -118.2449",
	TimeOfBreach:        "11/1/2023, 1:00:00 PM",
}

func TestHTTPNotifier_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, true, got["isBreaching"])
		assert.Equal(t, "STU-001", got["studentId"])
		assert.Equal(t, "34.0599, -118.2449", got["locationCoordinates"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"In Breach","notificationMessage":"Alice Johnson left campus"}`))
	}))
	defer srv.Close()

	n := NewHTTPNotifier(srv.URL, time.Second, quietLogger())
	resp, err := n.Notify(context.Background(), breachRequest)

	require.NoError(t, err)
	assert.Equal(t, "In Breach", resp.Status)
	assert.Equal(t, "Alice Johnson left campus", resp.NotificationMessage)
}

func TestHTTPNotifier_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "overloaded", http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status":`))
			},
		},
		{
			name: "missing message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status":"In Breach"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			n := NewHTTPNotifier(srv.URL, time.Second, quietLogger())
			_, err := n.Notify(context.Background(), breachRequest)
			assert.Error(t, err)
		})
	}
}

func TestHTTPNotifier_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	n := NewHTTPNotifier(srv.URL, time.Second, quietLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := n.Notify(ctx, breachRequest)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTemplateNotifier(t *testing.T) {
	n := NewTemplateNotifier()

	resp, err := n.Notify(context.Background(), breachRequest)
	require.NoError(t, err)
	assert.Equal(t, StatusInBreach, resp.Status)
	assert.Contains(t, resp.NotificationMessage, "Alice Johnson")
	assert.Contains(t, resp.NotificationMessage, "STU-001")
	assert.Contains(t, resp.NotificationMessage, "34.0599, -118.2449")

	req := breachRequest
	req.IsBreaching = false
	resp, err = n.Notify(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, StatusNotInBreach, resp.Status)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = n.Notify(ctx, breachRequest)
	assert.ErrorIs(t, err, context.Canceled)
}
