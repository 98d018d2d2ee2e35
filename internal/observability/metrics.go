package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vedp2003/fitnessclub/internal/domain/models"
)

// Command outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

var (
	commandsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitnessclub",
		Name:      "commands_total",
		Help:      "Studio commands handled, by command and outcome.",
	}, []string{"command", "outcome"})
	rosterGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitnessclub",
		Name:      "roster_members",
		Help:      "Members currently in the studio roster.",
	})
	feesDueGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitnessclub",
		Name:      "fees_due_dollars",
		Help:      "Total next dues across the roster at the last billing report.",
	})
	reportsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitnessclub",
		Name:      "billing_reports_total",
		Help:      "Billing reports generated.",
	})
)

func init() {
	prometheus.MustRegister(commandsCounter, rosterGauge, feesDueGauge, reportsCounter)
}

// RecordCommand counts a handled command.
func RecordCommand(cmd models.CommandType, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeRejected
	}
	commandsCounter.WithLabelValues(string(cmd), outcome).Inc()
}

// RecordRosterSize updates the roster gauge.
func RecordRosterSize(n int) {
	rosterGauge.Set(float64(n))
}

// RecordBillingReport updates the report counter and the fees gauge.
func RecordBillingReport(report models.BillingReport) {
	reportsCounter.Inc()
	feesDueGauge.Set(report.TotalDue.Dollars())
	rosterGauge.Set(float64(report.Members))
}

// WriteTextfile writes every registered metric in the node exporter textfile format.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
