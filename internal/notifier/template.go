package notifier

import (
	"context"
	"fmt"

	"github.com/shenikar/campus_geofence/internal/models"
)

const (
	StatusInBreach    = "In Breach"
	StatusNotInBreach = "Not In Breach"
)

// TemplateNotifier формирует уведомление локально, когда внешний сервис не настроен
type TemplateNotifier struct{}

func NewTemplateNotifier() *TemplateNotifier {
	return &TemplateNotifier{}
}

func (TemplateNotifier) Notify(ctx context.Context, req models.NotificationRequest) (models.NotificationResponse, error) {
	if err := ctx.Err(); err != nil {
		return models.NotificationResponse{}, err
	}

	if !req.IsBreaching {
		return models.NotificationResponse{
			Status:              StatusNotInBreach,
			NotificationMessage: fmt.Sprintf("%s (ID: %s) is within the campus boundary at %s as of %s.", req.StudentName, req.StudentID, req.LocationCoordinates, req.TimeOfBreach),
		}, nil
	}
	return models.NotificationResponse{
		Status:              StatusInBreach,
		NotificationMessage: fmt.Sprintf("Alert: %s (ID: %s) has left the campus boundary. Last known location %s at %s.", req.StudentName, req.StudentID, req.LocationCoordinates, req.TimeOfBreach),
	}, nil
}
