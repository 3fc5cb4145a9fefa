package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Target - то, что выполняется на каждом тике
type Target interface {
	Tick(ctx context.Context)
}

// tickSource отдаёт канал тиков и функцию его остановки
type tickSource func(d time.Duration) (<-chan time.Time, func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Scheduler вызывает Target с фиксированным интервалом до отмены контекста.
// Тики не перекрываются: следующий начинается только после завершения текущего.
type Scheduler struct {
	target   Target
	interval time.Duration
	logger   *logrus.Logger
	ticks    tickSource
}

// NewScheduler создает новый Scheduler
func NewScheduler(target Target, interval time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		target:   target,
		interval: interval,
		logger:   logger,
		ticks:    realTicker,
	}
}

// Start запускает цикл в отдельной горутине. Канал закрывается после остановки.
func (s *Scheduler) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()
	return done
}

// Run выполняет первый тик сразу, затем по интервалу; блокируется до отмены ctx
func (s *Scheduler) Run(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "scheduler",
		"interval": s.interval.String(),
	})
	log.Info("Starting monitoring scheduler...")

	c, stop := s.ticks(s.interval)
	defer stop()

	s.target.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping monitoring scheduler.")
			return
		case <-c:
			s.target.Tick(ctx)
		}
	}
}
