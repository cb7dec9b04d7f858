package scheduler

import (
	"time"

	"cafe-pos-api/services"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the end-of-day report job. It only reads the sales log and
// logs the totals; nothing is materialized or written back.
type Scheduler struct {
	cron     *cron.Cron
	reports  *services.ReportService
	schedule string
	logger   *zap.Logger
}

func New(reports *services.ReportService, schedule string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(),
		reports:  reports,
		schedule: schedule,
		logger:   logger.Named("scheduler"),
	}
}

// Start registers the end-of-day job. An empty schedule disables it.
func (s *Scheduler) Start() {
	if s.schedule == "" {
		return
	}

	if _, err := s.cron.AddFunc(s.schedule, s.logDailySummary); err != nil {
		s.logger.Error("failed to schedule end-of-day report", zap.Error(err))
		return
	}
	s.logger.Info("end-of-day report scheduled", zap.String("schedule", s.schedule))
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) logDailySummary() {
	date := time.Now().Format("2006-01-02")
	report, err := s.reports.DailySummary(date)
	if err != nil {
		s.logger.Error("end-of-day report failed", zap.String("date", date), zap.Error(err))
		return
	}

	s.logger.Info("end-of-day summary",
		zap.String("date", date),
		zap.String("total_revenue", report.Summary.TotalRevenue.String()),
		zap.String("total_profit", report.Summary.TotalProfit.String()),
		zap.Int64("order_count", report.Summary.OrderCount))
}
