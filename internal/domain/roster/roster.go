// Package roster holds the deduplicated member list shared by the studio and
// by every scheduled session.
package roster

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vedp2003/fitnessclub/internal/domain/models"
)

const (
	initialCapacity = 4
	growCapacity    = 4
)

// ErrNotFound is returned when no member carries the requested profile.
var ErrNotFound = errors.New("member not found")

// Roster is an ordered collection of members with no two equal profiles.
// All methods are safe for concurrent use.
type Roster struct {
	mu      sync.Mutex
	members []models.Member
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{members: make([]models.Member, 0, initialCapacity)}
}

// Len returns the number of members.
func (r *Roster) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

// Contains reports whether an entry shares m's profile.
func (r *Roster) Contains(m models.Profiler) bool {
	return r.ContainsProfile(m.Profile())
}

// ContainsProfile reports whether an entry carries an equal profile.
func (r *Roster) ContainsProfile(p models.Profile) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.indexOf(p) >= 0
}

// Find returns the first member with an equal profile.
func (r *Roster) Find(p models.Profile) (models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(p)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	return r.members[i], nil
}

// Add appends m unless its profile is already present. It reports whether m was added.
func (r *Roster) Add(m models.Member) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(m.Profile()) >= 0 {
		return false
	}
	if len(r.members) == cap(r.members) {
		r.grow()
	}
	r.members = append(r.members, m)
	return true
}

// Remove deletes the entry sharing m's profile, shifting later entries down
// by one. It reports whether an entry was removed.
func (r *Roster) Remove(m models.Profiler) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(m.Profile())
	if i < 0 {
		return false
	}
	copy(r.members[i:], r.members[i+1:])
	r.members[len(r.members)-1] = nil
	r.members = r.members[:len(r.members)-1]
	return true
}

// Members returns a copy of the entries in their current order.
func (r *Roster) Members() []models.Member {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.members)
}

// SortedByCountyThenZip returns a snapshot ordered by home studio county, then
// zip code. Ties keep their roster order.
func (r *Roster) SortedByCountyThenZip() []models.Member {
	out := r.Members()
	slices.SortStableFunc(out, func(a, b models.Member) int {
		if c := cmp.Compare(a.HomeStudio().County(), b.HomeStudio().County()); c != 0 {
			return c
		}
		return cmp.Compare(a.HomeStudio().ZipCode(), b.HomeStudio().ZipCode())
	})
	return out
}

// SortedByProfile returns a snapshot ordered by Profile.Compare. Ties keep
// their roster order.
func (r *Roster) SortedByProfile() []models.Member {
	out := r.Members()
	slices.SortStableFunc(out, func(a, b models.Member) int {
		return a.Profile().Compare(b.Profile())
	})
	return out
}

// RenderByCountyThenZip lists every member ordered by county then zip code.
func (r *Roster) RenderByCountyThenZip(today models.Date) string {
	return render("-list of members sorted by county then zipcode-", r.SortedByCountyThenZip(), func(m models.Member) string {
		return m.Describe(today)
	})
}

// RenderByProfile lists every member ordered by profile.
func (r *Roster) RenderByProfile(today models.Date) string {
	return render("-list of members sorted by member profiles-", r.SortedByProfile(), func(m models.Member) string {
		return m.Describe(today)
	})
}

// RenderFeeReport lists every member, in roster order, with the next amount due.
func (r *Roster) RenderFeeReport(today models.Date) string {
	return render("-list of members with next dues-", r.Members(), func(m models.Member) string {
		return FeeLine(m, today)
	})
}

// FeeLine renders a member description followed by its next bill.
func FeeLine(m models.Member, today models.Date) string {
	return fmt.Sprintf("%s [next due: $%s]", m.Describe(today), m.Bill())
}

func render(title string, members []models.Member, line func(models.Member) string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')
	for _, m := range members {
		b.WriteString(line(m))
		b.WriteByte('\n')
	}
	b.WriteString("-end of list-\n")
	return b.String()
}

func (r *Roster) indexOf(p models.Profile) int {
	for i, m := range r.members {
		if m.Profile().Equal(p) {
			return i
		}
	}
	return -1
}

func (r *Roster) grow() {
	grown := make([]models.Member, len(r.members), cap(r.members)+growCapacity)
	copy(grown, r.members)
	r.members = grown
}
