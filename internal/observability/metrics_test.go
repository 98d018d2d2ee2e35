package observability

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedp2003/fitnessclub/internal/domain/models"
)

func TestRecordCommand(t *testing.T) {
	ok := commandsCounter.WithLabelValues(string(models.CommandPrintFees), OutcomeOK)
	rejected := commandsCounter.WithLabelValues(string(models.CommandPrintFees), OutcomeRejected)
	beforeOK := testutil.ToFloat64(ok)
	beforeRejected := testutil.ToFloat64(rejected)

	RecordCommand(models.CommandPrintFees, nil)
	RecordCommand(models.CommandPrintFees, errors.New("boom"))
	RecordCommand(models.CommandPrintFees, nil)

	assert.InDelta(t, beforeOK+2, testutil.ToFloat64(ok), 0.0001)
	assert.InDelta(t, beforeRejected+1, testutil.ToFloat64(rejected), 0.0001)
}

func TestRecordBillingReport(t *testing.T) {
	before := testutil.ToFloat64(reportsCounter)

	RecordBillingReport(models.BillingReport{Members: 3, TotalDue: 86985})

	assert.InDelta(t, before+1, testutil.ToFloat64(reportsCounter), 0.0001)
	assert.InDelta(t, 869.85, testutil.ToFloat64(feesDueGauge), 0.0001)
	assert.InDelta(t, 3, testutil.ToFloat64(rosterGauge), 0.0001)

	RecordRosterSize(7)
	assert.InDelta(t, 7, testutil.ToFloat64(rosterGauge), 0.0001)
}

func TestWriteTextfile(t *testing.T) {
	require.NoError(t, WriteTextfile(""))

	path := filepath.Join(t.TempDir(), "fitnessclub.prom")
	RecordRosterSize(2)
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fitnessclub_roster_members 2")
	assert.Contains(t, string(data), "fitnessclub_billing_reports_total")
}
