package webhook

import (
	"context"
	"errors"

	"github.com/shenikar/campus_geofence/internal/models"
	"github.com/shenikar/campus_geofence/internal/service"
)

// MultiPublisher передаёт событие каждому публикатору; ошибки объединяются
type MultiPublisher []service.AlertPublisher

func (m MultiPublisher) Publish(ctx context.Context, ev models.BreachEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
