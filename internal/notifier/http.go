package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/campus_geofence/internal/models"
	"github.com/sirupsen/logrus"
)

// HTTPNotifier отправляет факты нарушения во внешний сервис генерации текста
type HTTPNotifier struct {
	url        string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewHTTPNotifier создает новый HTTPNotifier
func NewHTTPNotifier(url string, timeout time.Duration, logger *logrus.Logger) *HTTPNotifier {
	return &HTTPNotifier{
		url:    url,
		logger: logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Notify делает POST с JSON-запросом и разбирает ответ {status, notificationMessage}
func (n *HTTPNotifier) Notify(ctx context.Context, req models.NotificationRequest) (models.NotificationResponse, error) {
	var out models.NotificationResponse

	body, err := json.Marshal(req)
	if err != nil {
		return out, fmt.Errorf("notifier: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return out, fmt.Errorf("notifier: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(httpReq)
	if err != nil {
		return out, fmt.Errorf("notifier: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return out, fmt.Errorf("notifier: unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.NotificationResponse{}, fmt.Errorf("notifier: malformed response: %w", err)
	}
	if out.Status == "" || out.NotificationMessage == "" {
		return models.NotificationResponse{}, fmt.Errorf("notifier: malformed response: missing status or message")
	}

	n.logger.WithFields(logrus.Fields{
		"service":    "notifier",
		"method":     "Notify",
		"student_id": req.StudentID,
	}).Debug("Notification generated")
	return out, nil
}
