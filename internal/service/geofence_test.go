package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/shenikar/campus_geofence/internal/geo"
	"github.com/shenikar/campus_geofence/internal/models"
	"github.com/shenikar/campus_geofence/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	campusCenter = models.Coordinate{Latitude: 34.0522, Longitude: -118.2437}
	insidePoint  = models.Coordinate{Latitude: 34.0524, Longitude: -118.2435}
	outsidePoint = models.Coordinate{Latitude: 34.0599, Longitude: -118.2449}
	testFence    = models.Geofence{ID: "main", Name: "Main Campus", Center: campusCenter, RadiusMeters: 100}
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func clock(hour, min int) time.Time {
	return time.Date(2023, time.November, 1, hour, min, 0, 0, time.UTC)
}

func newTestEngine() (*GeofenceEngine, *repository.SessionLogRepository) {
	repo := repository.NewSessionLogRepository(time.UTC)
	return NewGeofenceEngine(repo, quietLogger()), repo
}

func TestEvaluate_BoundaryIsInside(t *testing.T) {
	engine, _ := newTestEngine()
	edge := models.Coordinate{Latitude: 34.0531, Longitude: -118.2437}
	fence := testFence
	fence.RadiusMeters = geo.Distance(edge, campusCenter)

	assert.Equal(t, models.MembershipInside, engine.Evaluate(edge, fence))
	assert.Equal(t, models.MembershipOutside, engine.Evaluate(outsidePoint, fence))
}

func TestApply_FirstEvaluationInside(t *testing.T) {
	engine, repo := newTestEngine()
	student := &models.Student{ID: "STU-001", Name: "Alice Johnson", Position: insidePoint}

	tr, ev, err := engine.Apply(student, testFence, clock(9, 5))

	require.NoError(t, err)
	assert.Nil(t, ev)
	assert.Equal(t, Transition{From: models.MembershipUnknown, To: models.MembershipInside}, tr)
	assert.Equal(t, models.MembershipInside, student.Membership)
	log := repo.GetLog("STU-001")
	require.Len(t, log, 1)
	assert.True(t, log[0].IsOpen())
	assert.Equal(t, clock(9, 5), log[0].EntryTime)
}

func TestApply_FirstEvaluationOutside(t *testing.T) {
	engine, repo := newTestEngine()
	student := &models.Student{ID: "STU-003", Position: outsidePoint}

	tr, ev, err := engine.Apply(student, testFence, clock(9, 0))

	require.NoError(t, err)
	assert.Nil(t, ev)
	assert.False(t, tr.IsBreach())
	assert.Equal(t, models.MembershipOutside, student.Membership)
	assert.Empty(t, repo.GetLog("STU-003"))
}

func TestApply_SelfTransitionsDoNothing(t *testing.T) {
	engine, repo := newTestEngine()
	student := &models.Student{ID: "STU-001", Position: insidePoint}
	_, _, err := engine.Apply(student, testFence, clock(9, 0))
	require.NoError(t, err)

	student.Position = campusCenter
	tr, ev, err := engine.Apply(student, testFence, clock(9, 5))
	require.NoError(t, err)
	assert.False(t, tr.Changed())
	assert.Nil(t, ev)
	assert.Len(t, repo.GetLog("STU-001"), 1)

	outsider := &models.Student{ID: "STU-003", Position: outsidePoint, Membership: models.MembershipOutside}
	tr, ev, err = engine.Apply(outsider, testFence, clock(9, 5))
	require.NoError(t, err)
	assert.False(t, tr.Changed())
	assert.Nil(t, ev)
	assert.Empty(t, repo.GetLog("STU-003"))
}

func TestApply_OutsideInsideOutsideRoundTrip(t *testing.T) {
	engine, repo := newTestEngine()
	student := &models.Student{ID: "STU-001", Name: "Alice Johnson", Position: outsidePoint}

	var events []*models.BreachEvent
	steps := []struct {
		pos models.Coordinate
		at  time.Time
	}{
		{outsidePoint, clock(9, 0)},
		{insidePoint, clock(9, 5)},
		{outsidePoint, clock(13, 0)},
	}
	for _, step := range steps {
		student.Position = step.pos
		_, ev, err := engine.Apply(student, testFence, step.at)
		require.NoError(t, err)
		if ev != nil {
			events = append(events, ev)
		}
	}

	log := repo.GetLog("STU-001")
	require.Len(t, log, 1)
	assert.Equal(t, clock(9, 5), log[0].EntryTime)
	require.NotNil(t, log[0].ExitTime)
	assert.Equal(t, clock(13, 0), *log[0].ExitTime)

	require.Len(t, events, 1)
	assert.Equal(t, "STU-001", events[0].StudentID)
	assert.Equal(t, clock(13, 0), events[0].Timestamp)
	assert.Equal(t, outsidePoint, events[0].Position)
	assert.Contains(t, events[0].Message, "Alice Johnson")

	groups := repo.GroupByDay("STU-001")
	require.Len(t, groups, 1)
	assert.Equal(t, "2023-11-01", groups[0].Date)
	assert.Equal(t, log, groups[0].Sessions)
}

func TestApply_InsideToOutsideWithoutOpenSession(t *testing.T) {
	engine, _ := newTestEngine()
	student := &models.Student{ID: "STU-001", Position: outsidePoint, Membership: models.MembershipInside}

	_, ev, err := engine.Apply(student, testFence, clock(10, 0))

	assert.ErrorIs(t, err, models.ErrNoOpenSession)
	assert.Nil(t, ev)
}

func TestApply_EntryWithSessionAlreadyOpen(t *testing.T) {
	engine, repo := newTestEngine()
	require.NoError(t, repo.OpenSession("STU-001", clock(9, 0)))
	student := &models.Student{ID: "STU-001", Position: insidePoint, Membership: models.MembershipOutside}

	_, _, err := engine.Apply(student, testFence, clock(10, 0))

	assert.ErrorIs(t, err, models.ErrInvariantViolation)
	assert.Len(t, repo.GetLog("STU-001"), 1)
}
