package position

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/shenikar/campus_geofence/internal/models"
)

// RandomWalk имитирует GPS: каждая позиция смещается на (rand-0.5)*step градусов по обеим осям
type RandomWalk struct {
	mu   sync.Mutex
	step float64
	rnd  *rand.Rand
	last map[string]models.Coordinate
}

// NewRandomWalk создает генератор с заданным шагом и зерном
func NewRandomWalk(step float64, seed int64) *RandomWalk {
	return &RandomWalk{
		step: step,
		rnd:  rand.New(rand.NewSource(seed)),
		last: make(map[string]models.Coordinate),
	}
}

// Seed задаёт стартовую позицию студента
func (w *RandomWalk) Seed(studentID string, start models.Coordinate) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.last[studentID] = start
}

// NextPosition возвращает следующую точку блуждания
func (w *RandomWalk) NextPosition(ctx context.Context, studentID string) (models.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinate{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	cur, ok := w.last[studentID]
	if !ok {
		return models.Coordinate{}, fmt.Errorf("position: %w: %s", models.ErrStudentNotFound, studentID)
	}
	next := models.Coordinate{
		Latitude:  clamp(cur.Latitude+(w.rnd.Float64()-0.5)*w.step, -90, 90),
		Longitude: clamp(cur.Longitude+(w.rnd.Float64()-0.5)*w.step, -180, 180),
	}
	w.last[studentID] = next
	return next, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
