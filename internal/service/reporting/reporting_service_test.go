package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vedp2003/fitnessclub/internal/domain/models"
)

func TestBuildBillingReport(t *testing.T) {
	svc := NewService(nil)
	today := models.NewDate(10, 18, 2026)
	dob := models.NewDate(1, 20, 2003)
	active := models.NewDate(11, 18, 2026)
	lapsed := models.NewDate(9, 1, 2026)

	members := []models.Member{
		models.NewBasic(models.NewProfile("A", "Basic", dob), active, models.Edison, 6),
		models.NewFamily(models.NewProfile("B", "Family", dob), lapsed, models.Edison, true),
		models.NewPremium(models.NewProfile("C", "Premium", dob), active, models.Franklin, 3),
	}
	generatedAt := time.Date(2026, time.October, 18, 20, 0, 0, 0, time.UTC)

	report := svc.BuildBillingReport(members, today, generatedAt)
	assert.Equal(t, 3, report.Members)
	assert.Equal(t, 1, report.Expired)
	assert.Equal(t, models.Money(5999+14997+65989), report.TotalDue)
	assert.Equal(t, map[models.Kind]int{models.KindBasic: 1, models.KindFamily: 1, models.KindPremium: 1}, report.ByKind)
	assert.Equal(t, generatedAt, report.GeneratedAt)

	assert.Equal(t,
		"Billing summary (10/18/2026): 3 members (1 basic, 1 family, 1 premium), 1 expired, $869.85 due.",
		svc.FormatBillingReport(report))

	expired := svc.ExpiredMembers(members, today)
	if assert.Len(t, expired, 1) {
		assert.Equal(t, models.KindFamily, expired[0].Kind())
	}
}

func TestFormatEmptyReport(t *testing.T) {
	svc := NewService(nil)
	report := svc.BuildBillingReport(nil, models.NewDate(1, 2, 2026), time.Now())
	assert.Equal(t, "Billing summary (1/2/2026): member database is empty.", svc.FormatBillingReport(report))
	assert.Zero(t, report.TotalDue)
}
