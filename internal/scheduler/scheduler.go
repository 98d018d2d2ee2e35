package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vedp2003/fitnessclub/internal/config"
	"github.com/vedp2003/fitnessclub/internal/domain/models"
	"github.com/vedp2003/fitnessclub/internal/observability"
	"github.com/vedp2003/fitnessclub/internal/service/notify"
	"github.com/vedp2003/fitnessclub/internal/service/reporting"
)

const reportTimeout = 2 * time.Minute

// ReportSource snapshots the roster into a billing report.
type ReportSource interface {
	BillingReport(ctx context.Context) (models.BillingReport, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	source       ReportSource
	reportingSvc *reporting.Service
	messagingSvc notify.MessagingService
	cfg          config.Config
	logger       *zap.Logger
	newRunID     func() string
}

// NewScheduler creates a new scheduler instance running in the configured timezone.
func NewScheduler(cfg config.Config, source ReportSource, reportingSvc *reporting.Service, messagingSvc notify.MessagingService, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := cfg.Reporting.Location()
	if err != nil {
		logger.Warn("unknown timezone, using local time", zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		source:       source,
		reportingSvc: reportingSvc,
		messagingSvc: messagingSvc,
		cfg:          cfg,
		logger:       logger,
		newRunID:     func() string { return uuid.NewString() },
	}
}

// Start registers the billing report job and starts the cron loop.
func (s *Scheduler) Start() {
	if !s.cfg.Reporting.Enabled() {
		s.logger.Info("billing report schedule disabled")
		return
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Reporting.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.sendBillingReport)
	if err != nil {
		s.logger.Error("failed to schedule billing report", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendBillingReport() {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("billing report failed", zap.Error(err))
	}
}

// RunOnce builds a billing report, sends it to the operators and exports metrics.
func (s *Scheduler) RunOnce(ctx context.Context) (models.BillingReport, error) {
	runID := s.newRunID()
	logger := s.logger.With(zap.String("run_id", runID))
	logger.Info("generating billing report")

	report, err := s.source.BillingReport(ctx)
	if err != nil {
		return models.BillingReport{}, fmt.Errorf("build billing report: %w", err)
	}
	report.RunID = runID

	observability.RecordBillingReport(report)

	msg := models.OutboundMessage{
		To:      "operators",
		Subject: "billing",
		Message: s.reportingSvc.FormatBillingReport(report),
	}
	if err := s.messagingSvc.SendOutbound(ctx, msg); err != nil {
		return report, fmt.Errorf("send billing report: %w", err)
	}

	if err := observability.WriteTextfile(s.cfg.Metrics.TextfilePath); err != nil {
		logger.Warn("failed to write metrics textfile", zap.String("path", s.cfg.Metrics.TextfilePath), zap.Error(err))
	}

	logger.Info("billing report sent", zap.Int("members", report.Members), zap.String("total_due", report.TotalDue.String()))
	return report, nil
}
