package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/campus_geofence/internal/models"
)

const dateLayout = "2006-01-02"

// SessionLogRepository хранит журнал сессий каждого студента в памяти процесса.
// Журнал только дополняется: закрытые сессии не меняются и не удаляются.
type SessionLogRepository struct {
	mu   sync.RWMutex
	loc  *time.Location
	logs map[string][]models.Session
	// индекс открытой сессии в logs[id]
	open map[string]int
}

// NewSessionLogRepository создает хранилище; loc задаёт зону для календарных дат
func NewSessionLogRepository(loc *time.Location) *SessionLogRepository {
	if loc == nil {
		loc = time.Local
	}
	return &SessionLogRepository{
		loc:  loc,
		logs: make(map[string][]models.Session),
		open: make(map[string]int),
	}
}

// OpenSession добавляет новую сессию с временем входа ts
func (r *SessionLogRepository) OpenSession(studentID string, ts time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.open[studentID]; ok {
		return fmt.Errorf("open session for %s: %w", studentID, models.ErrInvariantViolation)
	}
	r.logs[studentID] = append(r.logs[studentID], models.Session{EntryTime: ts})
	r.open[studentID] = len(r.logs[studentID]) - 1
	return nil
}

// CloseOpenSession проставляет время выхода открытой сессии
func (r *SessionLogRepository) CloseOpenSession(studentID string, ts time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.open[studentID]
	if !ok {
		return fmt.Errorf("close session for %s: %w", studentID, models.ErrNoOpenSession)
	}
	r.closeAt(studentID, idx, ts)
	return nil
}

// ForceCloseAll закрывает все открытые сессии и возвращает ID затронутых студентов
func (r *SessionLogRepository) ForceCloseAll(ts time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	closed := make([]string, 0, len(r.open))
	for id, idx := range r.open {
		r.closeAt(id, idx, ts)
		closed = append(closed, id)
	}
	sort.Strings(closed)
	return closed
}

func (r *SessionLogRepository) closeAt(studentID string, idx int, ts time.Time) {
	s := &r.logs[studentID][idx]
	// выход не может предшествовать входу
	if ts.Before(s.EntryTime) {
		ts = s.EntryTime
	}
	exit := ts
	s.ExitTime = &exit
	delete(r.open, studentID)
}

// HasOpenSession сообщает, есть ли у студента открытая сессия
func (r *SessionLogRepository) HasOpenSession(studentID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.open[studentID]
	return ok
}

// GetLog возвращает копию журнала в порядке добавления
func (r *SessionLogRepository) GetLog(studentID string) []models.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copySessions(r.logs[studentID])
}

// GroupByDay группирует сессии по дате входа: дни от новых к старым, внутри дня по времени входа
func (r *SessionLogRepository) GroupByDay(studentID string) []models.DayGroup {
	sessions := r.GetLog(studentID)

	byDate := make(map[string][]models.Session)
	for _, s := range sessions {
		key := s.EntryTime.In(r.loc).Format(dateLayout)
		byDate[key] = append(byDate[key], s)
	}

	groups := make([]models.DayGroup, 0, len(byDate))
	for date, list := range byDate {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].EntryTime.Before(list[j].EntryTime)
		})
		groups = append(groups, models.DayGroup{Date: date, Sessions: list})
	}
	// формат YYYY-MM-DD сортируется лексикографически
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	return groups
}

// Location возвращает зону, в которой считаются календарные даты
func (r *SessionLogRepository) Location() *time.Location {
	return r.loc
}

func copySessions(src []models.Session) []models.Session {
	out := make([]models.Session, len(src))
	for i, s := range src {
		out[i] = models.Session{EntryTime: s.EntryTime}
		if s.ExitTime != nil {
			exit := *s.ExitTime
			out[i].ExitTime = &exit
		}
	}
	return out
}
