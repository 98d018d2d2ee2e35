package models

import (
	"errors"
	"fmt"
	"strings"
)

// Vocabulary lookup errors.
var (
	ErrUnknownLocation   = errors.New("unknown studio location")
	ErrUnknownInstructor = errors.New("unknown instructor")
	ErrUnknownOffer      = errors.New("unknown class offer")
	ErrUnknownTimeSlot   = errors.New("unknown time slot")
)

// Location enumerates the club's studio sites.
type Location int

const (
	Bridgewater Location = iota
	Edison
	Franklin
	Piscataway
	Somerville
)

type site struct {
	name    string
	county  string
	zipCode string
}

var sites = [...]site{
	Bridgewater: {"BRIDGEWATER", "SOMERSET", "08807"},
	Edison:      {"EDISON", "MIDDLESEX", "08837"},
	Franklin:    {"FRANKLIN", "SOMERSET", "08873"},
	Piscataway:  {"PISCATAWAY", "MIDDLESEX", "08854"},
	Somerville:  {"SOMERVILLE", "SOMERSET", "08876"},
}

// Locations lists every studio in declaration order.
func Locations() []Location {
	return []Location{Bridgewater, Edison, Franklin, Piscataway, Somerville}
}

// ParseLocation resolves a studio by name, ignoring case.
func ParseLocation(name string) (Location, error) {
	for _, loc := range Locations() {
		if strings.EqualFold(sites[loc].name, name) {
			return loc, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownLocation)
}

// Name returns the studio's town name.
func (l Location) Name() string { return sites[l].name }

// County returns the studio's county.
func (l Location) County() string { return sites[l].county }

// ZipCode returns the studio's zip code.
func (l Location) ZipCode() string { return sites[l].zipCode }

// String renders NAME, zip, COUNTY.
func (l Location) String() string {
	return l.Name() + ", " + l.ZipCode() + ", " + l.County()
}

// Instructor enumerates the club's instructors.
type Instructor int

const (
	Jennifer Instructor = iota
	Kim
	Denise
	Davis
	Emma
)

var instructorNames = [...]string{
	Jennifer: "JENNIFER",
	Kim:      "KIM",
	Denise:   "DENISE",
	Davis:    "DAVIS",
	Emma:     "EMMA",
}

// ParseInstructor resolves an instructor by name, ignoring case.
func ParseInstructor(name string) (Instructor, error) {
	for i, n := range instructorNames {
		if strings.EqualFold(n, name) {
			return Instructor(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownInstructor)
}

func (i Instructor) String() string { return instructorNames[i] }

// Offer enumerates the class types on the schedule.
type Offer int

const (
	Pilates Offer = iota
	Spinning
	Cardio
)

var offerNames = [...]string{
	Pilates:  "PILATES",
	Spinning: "SPINNING",
	Cardio:   "CARDIO",
}

// ParseOffer resolves a class type by name, ignoring case.
func ParseOffer(name string) (Offer, error) {
	for i, n := range offerNames {
		if strings.EqualFold(n, name) {
			return Offer(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownOffer)
}

func (o Offer) String() string { return offerNames[o] }

// TimeSlot enumerates the fixed class start times.
type TimeSlot int

const (
	Morning TimeSlot = iota
	Afternoon
	Evening
)

var slots = [...]struct {
	name         string
	hour, minute int
}{
	Morning:   {"MORNING", 9, 30},
	Afternoon: {"AFTERNOON", 14, 0},
	Evening:   {"EVENING", 18, 30},
}

// ParseTimeSlot resolves a slot by name (MORNING, AFTERNOON, EVENING), ignoring case.
func ParseTimeSlot(name string) (TimeSlot, error) {
	for i, s := range slots {
		if strings.EqualFold(s.name, name) {
			return TimeSlot(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownTimeSlot)
}

// Hour returns the start hour.
func (t TimeSlot) Hour() int { return slots[t].hour }

// Minute returns the start minute.
func (t TimeSlot) Minute() int { return slots[t].minute }

// String renders H:MM.
func (t TimeSlot) String() string {
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}
