package service

//go:generate mockgen -destination=mocks/mock_monitor.go -package=mocks github.com/shenikar/campus_geofence/internal/service Notifier,PositionSource,AlertPublisher,MonitorService

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/campus_geofence/internal/models"
	"github.com/sirupsen/logrus"
)

// Notifier - внешний сервис, превращающий факты нарушения в статус и текст
type Notifier interface {
	Notify(ctx context.Context, req models.NotificationRequest) (models.NotificationResponse, error)
}

// PositionSource выдаёт очередную позицию студента
type PositionSource interface {
	NextPosition(ctx context.Context, studentID string) (models.Coordinate, error)
}

// PositionSeeder - необязательное расширение PositionSource для новых студентов
type PositionSeeder interface {
	Seed(studentID string, start models.Coordinate)
}

// AlertPublisher доставляет события нарушения во внешние системы
type AlertPublisher interface {
	Publish(ctx context.Context, event models.BreachEvent) error
}

// MetricsRecorder принимает счётчики мониторинга
type MetricsRecorder interface {
	TickCompleted(active bool)
	TransitionRecorded(from, to models.Membership)
	NotificationCompleted(d time.Duration, err error)
	SessionsForceClosed(n int)
	MembershipCounts(inside, outside, unknown int)
}

// Clock - источник текущего времени
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type noopRecorder struct{}

func (noopRecorder) TickCompleted(bool)                                      {}
func (noopRecorder) TransitionRecorded(models.Membership, models.Membership) {}
func (noopRecorder) NotificationCompleted(time.Duration, error)              {}
func (noopRecorder) SessionsForceClosed(int)                                 {}
func (noopRecorder) MembershipCounts(int, int, int)                          {}

// MonitorService определяет контракт живого состояния для HTTP-слоя
type MonitorService interface {
	Snapshot(ctx context.Context) models.Snapshot
	Student(ctx context.Context, id string) (models.Student, error)
	Enroll(ctx context.Context, student models.Student) error
	Geofence(ctx context.Context) models.Geofence
	UpdateGeofence(ctx context.Context, fence models.Geofence) error
	Alerts(ctx context.Context) []models.Alert
	BreachEvents(ctx context.Context) []models.BreachEvent
	Status(ctx context.Context) models.MonitorStatus
	Subscribe() (<-chan models.Snapshot, func())
}

// MonitorConfig - параметры мониторинга
type MonitorConfig struct {
	Geofence          models.Geofence
	StartHour         int
	EndHour           int
	TickInterval      time.Duration
	Location          *time.Location
	NotifyTimeout     time.Duration
	AlertHistoryLimit int
}

// MonitorOption настраивает необязательные зависимости Monitor
type MonitorOption func(*Monitor)

// WithAlertPublisher подключает доставку событий нарушения
func WithAlertPublisher(p AlertPublisher) MonitorOption {
	return func(m *Monitor) { m.publisher = p }
}

// WithMetrics подключает сбор метрик
func WithMetrics(r MetricsRecorder) MonitorOption {
	return func(m *Monitor) { m.metrics = r }
}

// WithClock подменяет источник времени
func WithClock(c Clock) MonitorOption {
	return func(m *Monitor) { m.clock = c }
}

// Monitor - явный контейнер состояния мониторинга. Тики сериализуются mu;
// флаг PendingEvaluation не даёт повторно оценить студента, пока идёт уведомление.
type Monitor struct {
	cfg       MonitorConfig
	engine    *GeofenceEngine
	sessions  SessionStore
	positions PositionSource
	notifier  Notifier
	publisher AlertPublisher
	metrics   MetricsRecorder
	clock     Clock
	logger    *logrus.Logger

	mu       sync.Mutex
	fence    models.Geofence
	students map[string]*models.Student
	order    []string
	active   bool
	// period растёт при каждом завершении активных часов
	period   int
	alerts   []models.Alert
	breaches []models.BreachEvent

	subMu   sync.Mutex
	subs    map[int]chan models.Snapshot
	nextSub int

	inflight sync.WaitGroup
}

func NewMonitor(cfg MonitorConfig, sessions SessionStore, positions PositionSource, notifier Notifier, logger *logrus.Logger, opts ...MonitorOption) (*Monitor, error) {
	if err := cfg.Geofence.Validate(); err != nil {
		return nil, fmt.Errorf("service: could not create monitor: %w", err)
	}
	if cfg.StartHour < 0 || cfg.EndHour > 24 || cfg.StartHour >= cfg.EndHour {
		return nil, fmt.Errorf("service: invalid active hours [%d, %d)", cfg.StartHour, cfg.EndHour)
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 10 * time.Second
	}
	if cfg.AlertHistoryLimit <= 0 {
		cfg.AlertHistoryLimit = 100
	}

	m := &Monitor{
		cfg:       cfg,
		engine:    NewGeofenceEngine(sessions, logger),
		sessions:  sessions,
		positions: positions,
		notifier:  notifier,
		metrics:   noopRecorder{},
		clock:     systemClock{},
		logger:    logger,
		fence:     cfg.Geofence,
		students:  make(map[string]*models.Student),
		subs:      make(map[int]chan models.Snapshot),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Enroll добавляет студента в мониторинг со статусом Unknown
func (m *Monitor) Enroll(ctx context.Context, student models.Student) error {
	if student.ID == "" {
		return fmt.Errorf("service: student id is required")
	}

	m.mu.Lock()
	if _, exists := m.students[student.ID]; exists {
		m.mu.Unlock()
		return fmt.Errorf("service: %w: %s", models.ErrStudentExists, student.ID)
	}
	student.Membership = models.MembershipUnknown
	student.PendingEvaluation = false
	m.students[student.ID] = &student
	m.order = append(m.order, student.ID)
	m.mu.Unlock()

	if seeder, ok := m.positions.(PositionSeeder); ok {
		seeder.Seed(student.ID, student.Position)
	}

	m.logger.WithFields(logrus.Fields{
		"service":    "monitor",
		"method":     "Enroll",
		"student_id": student.ID,
	}).Info("Student enrolled")
	m.publish()
	return nil
}

// Tick выполняет один проход мониторинга
func (m *Monitor) Tick(ctx context.Context) {
	now := m.clock.Now().In(m.cfg.Location)
	active := m.inActiveHours(now)
	log := m.logger.WithFields(logrus.Fields{
		"service": "monitor",
		"method":  "Tick",
	})

	m.mu.Lock()
	switch {
	case !active && m.active:
		m.deactivateLocked(now)
	case active && !m.active:
		m.activateLocked()
	}
	m.active = active

	var breaches []models.BreachEvent
	if active {
		breaches = m.evaluateLocked(ctx, now, log)
	}
	period := m.period
	m.recordCountsLocked()
	m.mu.Unlock()

	for _, ev := range breaches {
		m.dispatch(ctx, ev, period)
	}
	m.metrics.TickCompleted(active)
	log.WithFields(logrus.Fields{
		"active":   active,
		"breaches": len(breaches),
	}).Debug("Tick completed")
	m.publish()
}

func (m *Monitor) evaluateLocked(ctx context.Context, now time.Time, log *logrus.Entry) []models.BreachEvent {
	var breaches []models.BreachEvent
	for _, id := range m.order {
		st := m.students[id]
		if st.PendingEvaluation {
			continue
		}

		pos, err := m.positions.NextPosition(ctx, id)
		if err != nil {
			log.WithError(err).WithField("student_id", id).Warn("Failed to get next position")
			continue
		}
		st.Position = pos

		tr, ev, err := m.engine.Apply(st, m.fence, now)
		if err != nil {
			log.WithError(err).WithField("student_id", id).Error("Session log rejected transition")
		}
		if tr.Changed() {
			m.metrics.TransitionRecorded(tr.From, tr.To)
		}
		if ev != nil {
			st.PendingEvaluation = true
			m.breaches = append(m.breaches, *ev)
			if over := len(m.breaches) - m.cfg.AlertHistoryLimit; over > 0 {
				m.breaches = append(m.breaches[:0:0], m.breaches[over:]...)
			}
			breaches = append(breaches, *ev)
		}
	}
	return breaches
}

// deactivateLocked закрывает открытые сессии по окончании активных часов.
// Такое закрытие не считается нарушением.
func (m *Monitor) deactivateLocked(now time.Time) {
	closed := m.sessions.ForceCloseAll(now)
	for _, st := range m.students {
		st.Membership = models.MembershipInside
		st.PendingEvaluation = false
	}
	m.period++
	m.metrics.SessionsForceClosed(len(closed))
	m.logger.WithFields(logrus.Fields{
		"service": "monitor",
		"method":  "deactivate",
		"closed":  len(closed),
	}).Info("Active hours ended, open sessions closed")
}

// activateLocked сбрасывает статусы, чтобы первая оценка заново открыла сессии
func (m *Monitor) activateLocked() {
	for _, st := range m.students {
		st.Membership = models.MembershipUnknown
	}
	m.logger.WithFields(logrus.Fields{
		"service": "monitor",
		"method":  "activate",
	}).Info("Active hours started")
}

func (m *Monitor) dispatch(ctx context.Context, ev models.BreachEvent, period int) {
	// уведомление не должно отменяться вместе с тиком
	base := context.WithoutCancel(ctx)

	// публикация не влияет на снятие PendingEvaluation
	if m.publisher != nil {
		m.inflight.Add(1)
		go func() {
			defer m.inflight.Done()
			pubCtx, cancel := context.WithTimeout(base, m.cfg.NotifyTimeout)
			defer cancel()
			if err := m.publisher.Publish(pubCtx, ev); err != nil {
				m.logger.WithError(err).WithField("student_id", ev.StudentID).Warn("Failed to publish breach event")
			}
		}()
	}

	m.inflight.Add(1)
	go func() {
		defer m.inflight.Done()
		callCtx, cancel := context.WithTimeout(base, m.cfg.NotifyTimeout)
		defer cancel()

		start := time.Now()
		resp, err := m.notify(callCtx, ev)
		m.metrics.NotificationCompleted(time.Since(start), err)
		m.resolve(ev, resp, err, period)
	}()
}

func (m *Monitor) notify(ctx context.Context, ev models.BreachEvent) (models.NotificationResponse, error) {
	req := models.NotificationRequest{
		IsBreaching:         true,
		StudentName:         ev.StudentName,
		StudentID:           ev.StudentID,
		LocationCoordinates: ev.Position.String(),
		TimeOfBreach:        ev.Timestamp.In(m.cfg.Location).Format("1/2/2006, 3:04:05 PM"),
	}
	resp, err := m.notifier.Notify(ctx, req)
	if err != nil {
		return resp, fmt.Errorf("%w: %w", models.ErrNotificationFailure, err)
	}
	if resp.NotificationMessage == "" {
		return resp, fmt.Errorf("%w: empty notification message", models.ErrNotificationFailure)
	}
	return resp, nil
}

// resolve снимает PendingEvaluation: Outside при успехе, Unknown при сбое.
// Уже применённые изменения журнала не откатываются.
func (m *Monitor) resolve(ev models.BreachEvent, resp models.NotificationResponse, err error, period int) {
	log := m.logger.WithFields(logrus.Fields{
		"service":    "monitor",
		"method":     "resolve",
		"student_id": ev.StudentID,
		"breach_id":  ev.ID,
	})

	m.mu.Lock()
	if st, ok := m.students[ev.StudentID]; ok && period == m.period {
		st.PendingEvaluation = false
		if err != nil {
			st.Membership = models.MembershipUnknown
		} else {
			st.Membership = models.MembershipOutside
		}
	}
	if err == nil {
		alert := models.Alert{
			ID:          uuid.New(),
			BreachID:    ev.ID,
			StudentID:   ev.StudentID,
			StudentName: ev.StudentName,
			Status:      resp.Status,
			Message:     resp.NotificationMessage,
			Time:        ev.Timestamp,
		}
		m.alerts = append([]models.Alert{alert}, m.alerts...)
		if len(m.alerts) > m.cfg.AlertHistoryLimit {
			m.alerts = m.alerts[:m.cfg.AlertHistoryLimit]
		}
	}
	m.recordCountsLocked()
	m.mu.Unlock()

	if err != nil {
		log.WithError(err).Warn("Breach notification failed, status downgraded to unknown")
	} else {
		log.Info("Breach notification delivered")
	}
	m.publish()
}

// Wait блокируется до завершения всех уведомлений в полёте
func (m *Monitor) Wait() {
	m.inflight.Wait()
}

func (m *Monitor) inActiveHours(t time.Time) bool {
	h := t.In(m.cfg.Location).Hour()
	return h >= m.cfg.StartHour && h < m.cfg.EndHour
}

func (m *Monitor) recordCountsLocked() {
	var inside, outside, unknown int
	for _, st := range m.students {
		switch st.Membership {
		case models.MembershipInside:
			inside++
		case models.MembershipOutside:
			outside++
		default:
			unknown++
		}
	}
	m.metrics.MembershipCounts(inside, outside, unknown)
}

// Snapshot возвращает копию живого состояния
func (m *Monitor) Snapshot(ctx context.Context) models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Monitor) snapshotLocked() models.Snapshot {
	students := make([]models.Student, 0, len(m.order))
	for _, id := range m.order {
		students = append(students, *m.students[id])
	}
	return models.Snapshot{
		Geofence: m.fence,
		Students: students,
		Active:   m.active,
	}
}

// Student возвращает студента по ID
func (m *Monitor) Student(ctx context.Context, id string) (models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.students[id]
	if !ok {
		return models.Student{}, fmt.Errorf("%w: %s", models.ErrStudentNotFound, id)
	}
	return *st, nil
}

// Geofence возвращает текущую геозону
func (m *Monitor) Geofence(ctx context.Context) models.Geofence {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fence
}

// UpdateGeofence перемещает геозону; новая граница действует со следующего тика
func (m *Monitor) UpdateGeofence(ctx context.Context, fence models.Geofence) error {
	if err := fence.Validate(); err != nil {
		return fmt.Errorf("service: could not update geofence: %w", err)
	}

	m.mu.Lock()
	if fence.ID == "" {
		fence.ID = m.fence.ID
	}
	m.fence = fence
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"service": "monitor",
		"method":  "UpdateGeofence",
		"name":    fence.Name,
		"radius":  fence.RadiusMeters,
	}).Info("Geofence updated")
	m.publish()
	return nil
}

// Alerts возвращает уведомления, новые первыми
func (m *Monitor) Alerts(ctx context.Context) []models.Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Alert, len(m.alerts))
	copy(out, m.alerts)
	return out
}

// BreachEvents возвращает последние события нарушения в порядке возникновения.
// Хранится не больше AlertHistoryLimit событий.
func (m *Monitor) BreachEvents(ctx context.Context) []models.BreachEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.BreachEvent, len(m.breaches))
	copy(out, m.breaches)
	return out
}

// Status возвращает состояние окна активных часов
func (m *Monitor) Status(ctx context.Context) models.MonitorStatus {
	now := m.clock.Now().In(m.cfg.Location)
	return models.MonitorStatus{
		Active:       m.inActiveHours(now),
		StartHour:    m.cfg.StartHour,
		EndHour:      m.cfg.EndHour,
		TickInterval: m.cfg.TickInterval,
		Now:          now,
	}
}

// Subscribe возвращает канал снимков состояния и функцию отписки.
// Медленный подписчик получает только последний снимок.
func (m *Monitor) Subscribe() (<-chan models.Snapshot, func()) {
	ch := make(chan models.Snapshot, 1)

	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch
	m.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.subMu.Lock()
			delete(m.subs, id)
			close(ch)
			m.subMu.Unlock()
		})
	}
}

func (m *Monitor) publish() {
	snap := m.Snapshot(context.Background())

	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
