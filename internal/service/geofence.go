package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/campus_geofence/internal/geo"
	"github.com/shenikar/campus_geofence/internal/models"
	"github.com/sirupsen/logrus"
)

// SessionStore определяет контракт журнала сессий
type SessionStore interface {
	OpenSession(studentID string, ts time.Time) error
	CloseOpenSession(studentID string, ts time.Time) error
	ForceCloseAll(ts time.Time) []string
	GetLog(studentID string) []models.Session
	GroupByDay(studentID string) []models.DayGroup
}

// Transition - смена статуса студента за одну оценку
type Transition struct {
	From models.Membership
	To   models.Membership
}

// Changed сообщает, что статус изменился
func (t Transition) Changed() bool {
	return t.From != t.To
}

// IsBreach сообщает о переходе Inside -> Outside
func (t Transition) IsBreach() bool {
	return t.From == models.MembershipInside && t.To == models.MembershipOutside
}

// GeofenceEngine вычисляет принадлежность геозоне и ведёт журнал по переходам
type GeofenceEngine struct {
	sessions SessionStore
	logger   *logrus.Logger
}

func NewGeofenceEngine(sessions SessionStore, logger *logrus.Logger) *GeofenceEngine {
	return &GeofenceEngine{
		sessions: sessions,
		logger:   logger,
	}
}

// Evaluate возвращает Inside, если точка в замкнутом круге геозоны
func (e *GeofenceEngine) Evaluate(p models.Coordinate, fence models.Geofence) models.Membership {
	if geo.Within(p, fence) {
		return models.MembershipInside
	}
	return models.MembershipOutside
}

// Apply оценивает текущую позицию студента, обновляет журнал и статус.
// BreachEvent возвращается только для перехода Inside -> Outside.
func (e *GeofenceEngine) Apply(student *models.Student, fence models.Geofence, now time.Time) (Transition, *models.BreachEvent, error) {
	tr := Transition{
		From: student.Membership,
		To:   e.Evaluate(student.Position, fence),
	}
	if !tr.Changed() {
		return tr, nil, nil
	}
	student.Membership = tr.To

	log := e.logger.WithFields(logrus.Fields{
		"service":    "geofence",
		"method":     "Apply",
		"student_id": student.ID,
		"from":       tr.From.String(),
		"to":         tr.To.String(),
	})

	switch {
	case tr.To == models.MembershipInside:
		if err := e.sessions.OpenSession(student.ID, now); err != nil {
			log.WithError(err).Error("Failed to open session on entry")
			return tr, nil, fmt.Errorf("service: could not open session: %w", err)
		}
		log.Debug("Student entered geofence")
	case tr.IsBreach():
		if err := e.sessions.CloseOpenSession(student.ID, now); err != nil {
			log.WithError(err).Error("Failed to close session on exit")
			return tr, nil, fmt.Errorf("service: could not close session: %w", err)
		}
		log.Info("Student left geofence")
		return tr, newBreachEvent(student, fence, now), nil
	}
	// Unknown -> Outside: журнал не меняется, нарушать было нечего
	return tr, nil, nil
}

func newBreachEvent(student *models.Student, fence models.Geofence, now time.Time) *models.BreachEvent {
	return &models.BreachEvent{
		ID:          uuid.New(),
		StudentID:   student.ID,
		StudentName: student.Name,
		Timestamp:   now,
		Position:    student.Position,
		Message: fmt.Sprintf("%s (%s) left %s at %s on %s",
			student.Name, student.ID, fence.Name, student.Position, now.Format(time.RFC1123)),
	}
}
