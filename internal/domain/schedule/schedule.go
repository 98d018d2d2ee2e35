// Package schedule models the club's class sessions and their attendance lists.
package schedule

import (
	"errors"
	"fmt"

	"github.com/vedp2003/fitnessclub/internal/domain/models"
	"github.com/vedp2003/fitnessclub/internal/domain/roster"
)

// MaxSessions is the number of sessions a schedule can hold.
const MaxSessions = 15

// Domain errors
var (
	ErrSessionNotFound  = errors.New("class session not found")
	ErrScheduleFull     = errors.New("schedule is full")
	ErrDuplicateSession = errors.New("class session already scheduled")
)

// Session is one scheduled class. Identity is offer, instructor, studio and time;
// the attendance rosters are not part of it.
type Session struct {
	offer      models.Offer
	instructor models.Instructor
	studio     models.Location
	slot       models.TimeSlot
	members    *roster.Roster
	guests     *roster.Roster
}

// NewSession builds a session with empty attendance.
func NewSession(offer models.Offer, instructor models.Instructor, studio models.Location, slot models.TimeSlot) *Session {
	return &Session{
		offer:      offer,
		instructor: instructor,
		studio:     studio,
		slot:       slot,
		members:    roster.New(),
		guests:     roster.New(),
	}
}

func (s *Session) Offer() models.Offer           { return s.offer }
func (s *Session) Instructor() models.Instructor { return s.instructor }
func (s *Session) Studio() models.Location       { return s.studio }
func (s *Session) Time() models.TimeSlot         { return s.slot }

// Members returns the attending members.
func (s *Session) Members() *roster.Roster { return s.members }

// Guests returns the sponsoring members of attending guests.
func (s *Session) Guests() *roster.Roster { return s.guests }

// AddMember records m as attending.
func (s *Session) AddMember(m models.Member) bool { return s.members.Add(m) }

// RemoveMember drops m from attendance.
func (s *Session) RemoveMember(m models.Profiler) bool { return s.members.Remove(m) }

// AddGuest records a guest sponsored by m.
func (s *Session) AddGuest(m models.Member) bool { return s.guests.Add(m) }

// RemoveGuest drops the guest sponsored by m.
func (s *Session) RemoveGuest(m models.Profiler) bool { return s.guests.Remove(m) }

// Matches reports whether the session is the given class at the given studio.
func (s *Session) Matches(offer models.Offer, instructor models.Instructor, studio models.Location) bool {
	return s.offer == offer && s.instructor == instructor && s.studio == studio
}

// Equal compares the identifying 4-tuple.
func (s *Session) Equal(other *Session) bool {
	return s.Matches(other.offer, other.instructor, other.studio) && s.slot == other.slot
}

// String renders e.g. "PILATES - JENNIFER, 9:30, BRIDGEWATER".
func (s *Session) String() string {
	return fmt.Sprintf("%s - %s, %s, %s", s.offer, s.instructor, s.slot, s.studio.Name())
}

// Schedule is a bounded list of sessions.
type Schedule struct {
	sessions []*Session
}

// New returns an empty schedule.
func New() *Schedule {
	return &Schedule{sessions: make([]*Session, 0, MaxSessions)}
}

// Add appends a session.
func (sc *Schedule) Add(s *Session) error {
	for _, existing := range sc.sessions {
		if existing.Equal(s) {
			return fmt.Errorf("%s: %w", s, ErrDuplicateSession)
		}
	}
	if len(sc.sessions) >= MaxSessions {
		return fmt.Errorf("%s: %w", s, ErrScheduleFull)
	}
	sc.sessions = append(sc.sessions, s)
	return nil
}

// Find returns the first session matching offer, instructor and studio.
func (sc *Schedule) Find(offer models.Offer, instructor models.Instructor, studio models.Location) (*Session, error) {
	for _, s := range sc.sessions {
		if s.Matches(offer, instructor, studio) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%s by %s at %s: %w", offer, instructor, studio.Name(), ErrSessionNotFound)
}

// Sessions returns the scheduled sessions in load order.
func (sc *Schedule) Sessions() []*Session {
	out := make([]*Session, len(sc.sessions))
	copy(out, sc.sessions)
	return out
}

// Len returns the number of sessions.
func (sc *Schedule) Len() int { return len(sc.sessions) }

// Reset drops every session.
func (sc *Schedule) Reset() {
	sc.sessions = make([]*Session, 0, MaxSessions)
}
