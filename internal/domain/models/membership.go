package models

import (
	"fmt"
	"strconv"
)

// Kind tags a membership variant.
type Kind string

const (
	KindNone    Kind = ""
	KindBasic   Kind = "basic"
	KindFamily  Kind = "family"
	KindPremium Kind = "premium"
)

// Fee schedule.
const (
	BasicMonthlyFee     Money = 3999
	BasicClassSurcharge Money = 1000
	BasicIncludedClass        = 4

	FamilyMonthlyFee   Money = 4999
	FamilyBilledMonths       = 3

	PremiumMonthlyFee   Money = 5999
	PremiumBilledMonths       = 11

	PremiumGuestPasses = 3
)

// Member is the capability set shared by every membership variant.
type Member interface {
	Profiler
	Kind() Kind
	Expiration() Date
	HomeStudio() Location
	Bill() Money
	ExpiredOn(today Date) bool
	IsExpired() bool
	Describe(today Date) string
	String() string
}

// GuestPassHolder is implemented by variants that may bring guests to class.
type GuestPassHolder interface {
	Member
	HasGuestPass() bool
	UseGuestPass()
	ReturnGuestPass()
}

// ClassCounter is implemented by variants billed per class attended.
type ClassCounter interface {
	Member
	Classes() int
	AddClass()
}

// SameMember reports whether two entities share an equal Profile.
func SameMember(a, b Profiler) bool {
	return a.Profile().Equal(b.Profile())
}

// Membership holds the state common to all variants and bills nothing on its own.
type Membership struct {
	profile    Profile
	expire     Date
	homeStudio Location
}

// NewMembership builds a base membership.
func NewMembership(profile Profile, expire Date, homeStudio Location) *Membership {
	return &Membership{profile: profile, expire: expire, homeStudio: homeStudio}
}

// Profile returns the member's identity.
func (m *Membership) Profile() Profile { return m.profile }

// Expiration returns the expiration date.
func (m *Membership) Expiration() Date { return m.expire }

// HomeStudio returns the member's home location.
func (m *Membership) HomeStudio() Location { return m.homeStudio }

// Kind returns KindNone for the base type.
func (m *Membership) Kind() Kind { return KindNone }

// Bill returns zero for the base type.
func (m *Membership) Bill() Money { return 0 }

// ExpiredOn reports whether the expiration date falls before today.
func (m *Membership) ExpiredOn(today Date) bool {
	return m.expire.Compare(today) < 0
}

// IsExpired is ExpiredOn the current system date.
func (m *Membership) IsExpired() bool {
	return m.ExpiredOn(Today())
}

// Describe renders the profile, expiration status and home studio.
func (m *Membership) Describe(today Date) string {
	status := "expires"
	if m.ExpiredOn(today) {
		status = "expired"
	}
	return fmt.Sprintf("%s, Membership %s %s, Home Studio: %s", m.profile, status, m.expire, m.homeStudio)
}

func (m *Membership) String() string {
	return m.Describe(Today())
}

// Basic is billed monthly plus a surcharge per class over the included count.
type Basic struct {
	Membership
	classes int
}

// NewBasic builds a Basic membership with an initial class count.
func NewBasic(profile Profile, expire Date, homeStudio Location, classes int) *Basic {
	return &Basic{Membership: *NewMembership(profile, expire, homeStudio), classes: classes}
}

func (b *Basic) Kind() Kind { return KindBasic }

// Classes returns the number of classes attended.
func (b *Basic) Classes() int { return b.classes }

// AddClass records one more attended class.
func (b *Basic) AddClass() { b.classes++ }

// Bill returns the monthly fee plus surcharges.
func (b *Basic) Bill() Money {
	amount := BasicMonthlyFee
	if b.classes > BasicIncludedClass {
		amount += BasicClassSurcharge * Money(b.classes-BasicIncludedClass)
	}
	return amount
}

func (b *Basic) Describe(today Date) string {
	return fmt.Sprintf("%s, (Basic) number of classes attended: %d", b.Membership.Describe(today), b.classes)
}

func (b *Basic) String() string { return b.Describe(Today()) }

// Family is billed three months at a time and carries a single guest pass.
type Family struct {
	Membership
	guest bool
}

// NewFamily builds a Family membership.
func NewFamily(profile Profile, expire Date, homeStudio Location, guest bool) *Family {
	return &Family{Membership: *NewMembership(profile, expire, homeStudio), guest: guest}
}

func (f *Family) Kind() Kind { return KindFamily }

// GuestAvailable reports whether the guest pass is unused.
func (f *Family) GuestAvailable() bool { return f.guest }

// SetGuestAvailable toggles the guest pass.
func (f *Family) SetGuestAvailable(available bool) { f.guest = available }

func (f *Family) HasGuestPass() bool { return f.guest }
func (f *Family) UseGuestPass()      { f.SetGuestAvailable(false) }
func (f *Family) ReturnGuestPass()   { f.SetGuestAvailable(true) }

// Bill returns three months of fees.
func (f *Family) Bill() Money {
	return FamilyMonthlyFee * FamilyBilledMonths
}

func (f *Family) Describe(today Date) string {
	remaining := "0"
	if f.guest {
		remaining = "1"
	}
	if f.ExpiredOn(today) {
		remaining = "not eligible"
	}
	return fmt.Sprintf("%s, (Family) guest-pass remaining: %s", f.Membership.Describe(today), remaining)
}

func (f *Family) String() string { return f.Describe(Today()) }

// Premium is billed yearly with one month free and carries countable guest passes.
type Premium struct {
	Membership
	guestPasses int
}

// NewPremium builds a Premium membership.
func NewPremium(profile Profile, expire Date, homeStudio Location, guestPasses int) *Premium {
	return &Premium{Membership: *NewMembership(profile, expire, homeStudio), guestPasses: guestPasses}
}

func (p *Premium) Kind() Kind { return KindPremium }

// GuestPasses returns the remaining pass count. It is not floored at zero.
func (p *Premium) GuestPasses() int { return p.guestPasses }

// AddGuestPass increments the pass count.
func (p *Premium) AddGuestPass() { p.guestPasses++ }

func (p *Premium) HasGuestPass() bool { return p.guestPasses > 0 }
func (p *Premium) UseGuestPass()      { p.guestPasses-- }
func (p *Premium) ReturnGuestPass()   { p.AddGuestPass() }

// Bill returns eleven months of fees.
func (p *Premium) Bill() Money {
	return PremiumMonthlyFee * PremiumBilledMonths
}

func (p *Premium) Describe(today Date) string {
	remaining := strconv.Itoa(p.guestPasses)
	if p.ExpiredOn(today) {
		remaining = "not eligible"
	}
	return fmt.Sprintf("%s, (Premium) guest-pass remaining: %s", p.Membership.Describe(today), remaining)
}

func (p *Premium) String() string { return p.Describe(Today()) }
