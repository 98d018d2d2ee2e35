package reporting

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vedp2003/fitnessclub/internal/domain/models"
)

var kindOrder = []models.Kind{models.KindBasic, models.KindFamily, models.KindPremium}

// Service builds billing summaries from roster snapshots.
type Service struct {
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// BuildBillingReport totals the next dues of members as of today.
func (s *Service) BuildBillingReport(members []models.Member, today models.Date, generatedAt time.Time) models.BillingReport {
	report := models.BillingReport{
		GeneratedAt: generatedAt,
		AsOf:        today,
		Members:     len(members),
		ByKind:      make(map[models.Kind]int, len(kindOrder)),
	}

	for _, m := range members {
		report.ByKind[m.Kind()]++
		report.TotalDue += m.Bill()
		if m.ExpiredOn(today) {
			report.Expired++
		}
	}

	s.logger.Debug("billing report built",
		zap.Int("members", report.Members),
		zap.Int("expired", report.Expired),
		zap.String("total_due", report.TotalDue.String()))

	return report
}

// FormatBillingReport renders a report as a short operator message.
func (s *Service) FormatBillingReport(report models.BillingReport) string {
	if report.Members == 0 {
		return fmt.Sprintf("Billing summary (%s): member database is empty.", report.AsOf)
	}

	counts := make([]string, 0, len(kindOrder))
	for _, kind := range kindOrder {
		counts = append(counts, fmt.Sprintf("%d %s", report.ByKind[kind], kind))
	}

	return fmt.Sprintf("Billing summary (%s): %d members (%s), %d expired, $%s due.",
		report.AsOf, report.Members, strings.Join(counts, ", "), report.Expired, report.TotalDue)
}

// ExpiredMembers lists the members whose membership lapsed before today.
func (s *Service) ExpiredMembers(members []models.Member, today models.Date) []models.Member {
	var expired []models.Member
	for _, m := range members {
		if m.ExpiredOn(today) {
			expired = append(expired, m)
		}
	}
	return expired
}
