package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDOB   = NewDate(1, 20, 2003)
	testToday = NewDate(10, 18, 2026)
)

func TestBills(t *testing.T) {
	profile := NewProfile("John", "Doe", testDOB)
	expire := NewDate(12, 1, 2026)

	basic := NewBasic(profile, expire, Edison, 0)
	assert.Equal(t, "39.99", basic.Bill().String())
	for range 4 {
		basic.AddClass()
	}
	assert.Equal(t, "39.99", basic.Bill().String())
	basic.AddClass()
	basic.AddClass()
	assert.Equal(t, "59.99", basic.Bill().String())

	assert.Equal(t, "149.97", NewFamily(profile, expire, Edison, true).Bill().String())
	assert.Equal(t, "659.89", NewPremium(profile, expire, Edison, PremiumGuestPasses).Bill().String())
	assert.Equal(t, Money(0), NewMembership(profile, expire, Edison).Bill())
}

func TestDescribe(t *testing.T) {
	profile := NewProfile("John", "Doe", testDOB)
	active := NewDate(11, 18, 2026)
	lapsed := NewDate(9, 30, 2026)

	basic := NewBasic(profile, active, Bridgewater, 2)
	assert.Equal(t,
		"John:Doe:1/20/2003, Membership expires 11/18/2026, Home Studio: BRIDGEWATER, 08807, SOMERSET, (Basic) number of classes attended: 2",
		basic.Describe(testToday))

	family := NewFamily(profile, active, Edison, true)
	assert.Equal(t,
		"John:Doe:1/20/2003, Membership expires 11/18/2026, Home Studio: EDISON, 08837, MIDDLESEX, (Family) guest-pass remaining: 1",
		family.Describe(testToday))
	family.UseGuestPass()
	assert.Contains(t, family.Describe(testToday), "guest-pass remaining: 0")

	expiredFamily := NewFamily(profile, lapsed, Edison, true)
	assert.Equal(t,
		"John:Doe:1/20/2003, Membership expired 9/30/2026, Home Studio: EDISON, 08837, MIDDLESEX, (Family) guest-pass remaining: not eligible",
		expiredFamily.Describe(testToday))

	premium := NewPremium(profile, active, Somerville, PremiumGuestPasses)
	assert.Contains(t, premium.Describe(testToday), "(Premium) guest-pass remaining: 3")
	assert.Contains(t, NewPremium(profile, lapsed, Somerville, 3).Describe(testToday), "(Premium) guest-pass remaining: not eligible")
}

func TestExpiredOn(t *testing.T) {
	m := NewMembership(NewProfile("A", "B", testDOB), testToday, Franklin)
	assert.False(t, m.ExpiredOn(testToday))
	assert.True(t, m.ExpiredOn(NewDate(10, 19, 2026)))
	assert.Equal(t, KindNone, m.Kind())
}

func TestGuestPasses(t *testing.T) {
	profile := NewProfile("Jane", "Doe", testDOB)

	var holder GuestPassHolder = NewFamily(profile, testToday, Edison, true)
	require.True(t, holder.HasGuestPass())
	holder.UseGuestPass()
	assert.False(t, holder.HasGuestPass())
	holder.ReturnGuestPass()
	assert.True(t, holder.HasGuestPass())

	premium := NewPremium(profile, testToday, Edison, 1)
	premium.UseGuestPass()
	assert.False(t, premium.HasGuestPass())
	premium.UseGuestPass()
	assert.Equal(t, -1, premium.GuestPasses())
	premium.ReturnGuestPass()
	premium.ReturnGuestPass()
	assert.Equal(t, 1, premium.GuestPasses())
}

func TestCapabilities(t *testing.T) {
	profile := NewProfile("Jane", "Doe", testDOB)
	members := []Member{
		NewBasic(profile, testToday, Edison, 0),
		NewFamily(profile, testToday, Edison, true),
		NewPremium(profile, testToday, Edison, 3),
	}

	_, basicHolds := members[0].(GuestPassHolder)
	_, basicCounts := members[0].(ClassCounter)
	_, familyHolds := members[1].(GuestPassHolder)
	_, premiumHolds := members[2].(GuestPassHolder)
	_, premiumCounts := members[2].(ClassCounter)

	assert.False(t, basicHolds)
	assert.True(t, basicCounts)
	assert.True(t, familyHolds)
	assert.True(t, premiumHolds)
	assert.False(t, premiumCounts)

	assert.Equal(t, []Kind{KindBasic, KindFamily, KindPremium},
		[]Kind{members[0].Kind(), members[1].Kind(), members[2].Kind()})
	assert.True(t, SameMember(members[0], members[2]))
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-12.30", Money(-1230).String())
	assert.InDelta(t, 659.89, Money(65989).Dollars(), 0.0001)
}
