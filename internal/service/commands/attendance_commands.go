package commands

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vedp2003/fitnessclub/internal/domain/models"
	"github.com/vedp2003/fitnessclub/internal/domain/schedule"
)

// resolveAttendance parses "offer instructor studio first last dob" and looks
// up both the session and the member.
func (s *Service) resolveAttendance(args []string) (*schedule.Session, models.Member, error) {
	if len(args) != 6 {
		return nil, nil, fmt.Errorf("%w: expected class, instructor, studio, first name, last name and date of birth", ErrInvalidArguments)
	}

	offer, err := models.ParseOffer(args[0])
	if err != nil {
		return nil, nil, err
	}
	instructor, err := models.ParseInstructor(args[1])
	if err != nil {
		return nil, nil, err
	}
	studio, err := models.ParseLocation(args[2])
	if err != nil {
		return nil, nil, err
	}
	profile, err := parseProfile(args[3], args[4], args[5])
	if err != nil {
		return nil, nil, err
	}

	session, err := s.schedule.Find(offer, instructor, studio)
	if err != nil {
		return nil, nil, err
	}
	member, err := s.members.Find(profile)
	if err != nil {
		return nil, nil, err
	}
	return session, member, nil
}

// attend handles R.
func (s *Service) attend(args []string, today models.Date) (string, error) {
	session, member, err := s.resolveAttendance(args)
	if err != nil {
		return "", err
	}
	name := fullName(member.Profile())

	if member.ExpiredOn(today) {
		return "", fmt.Errorf("%s expired %s: %w", name, member.Expiration(), ErrMembershipExpired)
	}
	if member.Kind() == models.KindBasic && member.HomeStudio() != session.Studio() {
		return "", fmt.Errorf("%s is attending a class at %s - [BASIC] home studio at %s: %w",
			name, session.Studio().Name(), member.HomeStudio().Name(), ErrWrongStudio)
	}
	if session.Members().Contains(member) {
		return "", fmt.Errorf("%s: %w", name, ErrAlreadyAttending)
	}
	if conflict := s.conflictingSession(session, member); conflict != nil {
		return "", fmt.Errorf("%s is in %s: %w", name, conflict, ErrTimeConflict)
	}

	session.AddMember(member)
	if counter, ok := member.(models.ClassCounter); ok {
		counter.AddClass()
	}

	s.logger.Info("attendance recorded",
		zap.String("session", session.String()),
		zap.String("kind", string(member.Kind())))

	return fmt.Sprintf("%s attendance recorded %s at %s", name, session.Offer(), session.Studio().Name()), nil
}

// unattend handles U.
func (s *Service) unattend(args []string) (string, error) {
	session, member, err := s.resolveAttendance(args)
	if err != nil {
		return "", err
	}
	name := fullName(member.Profile())

	if !session.RemoveMember(member) {
		return "", fmt.Errorf("%s: %w", name, ErrNotAttending)
	}
	return fmt.Sprintf("%s is removed from %s - %s, %s, %s", name,
		session.Instructor(), session.Time(), session.Studio().Name(), session.Offer()), nil
}

// attendGuest handles RG. The member sponsors the guest and spends one pass.
func (s *Service) attendGuest(args []string, today models.Date) (string, error) {
	session, member, err := s.resolveAttendance(args)
	if err != nil {
		return "", err
	}
	name := fullName(member.Profile())

	holder, ok := member.(models.GuestPassHolder)
	if !ok {
		return "", fmt.Errorf("%s [%s]: %w", name, strings.ToUpper(string(member.Kind())), ErrGuestNotEligible)
	}
	if member.ExpiredOn(today) {
		return "", fmt.Errorf("%s expired %s: %w", name, member.Expiration(), ErrMembershipExpired)
	}
	if member.HomeStudio() != session.Studio() {
		return "", fmt.Errorf("%s (guest) is attending a class at %s - home studio at %s: %w",
			name, session.Studio().Name(), member.HomeStudio().Name(), ErrWrongStudio)
	}
	if !holder.HasGuestPass() {
		return "", fmt.Errorf("%s: %w", name, ErrGuestPassExhausted)
	}
	if !session.AddGuest(member) {
		return "", fmt.Errorf("guest of %s: %w", name, ErrAlreadyAttending)
	}
	holder.UseGuestPass()

	s.logger.Info("guest attendance recorded",
		zap.String("session", session.String()),
		zap.String("kind", string(member.Kind())))

	return fmt.Sprintf("%s (guest) attendance recorded %s at %s", name, session.Offer(), session.Studio().Name()), nil
}

// unattendGuest handles UG and returns the pass to the sponsor.
func (s *Service) unattendGuest(args []string) (string, error) {
	session, member, err := s.resolveAttendance(args)
	if err != nil {
		return "", err
	}
	name := fullName(member.Profile())

	holder, ok := member.(models.GuestPassHolder)
	if !ok {
		return "", fmt.Errorf("%s [%s]: %w", name, strings.ToUpper(string(member.Kind())), ErrGuestNotEligible)
	}
	if !session.RemoveGuest(member) {
		return "", fmt.Errorf("guest of %s: %w", name, ErrNotAttending)
	}
	holder.ReturnGuestPass()

	return fmt.Sprintf("%s (guest) is removed from %s - %s, %s, %s", name,
		session.Instructor(), session.Time(), session.Studio().Name(), session.Offer()), nil
}

// conflictingSession returns another session in the same time slot that
// already lists the member, or nil.
func (s *Service) conflictingSession(target *schedule.Session, member models.Member) *schedule.Session {
	for _, session := range s.schedule.Sessions() {
		if session == target || session.Time() != target.Time() {
			continue
		}
		if session.Members().Contains(member) {
			return session
		}
	}
	return nil
}

// showSchedule handles S, listing each session with its attendees.
func (s *Service) showSchedule(today models.Date) string {
	sessions := s.schedule.Sessions()
	if len(sessions) == 0 {
		return "Fitness class schedule is empty."
	}

	var b strings.Builder
	b.WriteString("-Fitness classes-\n")
	for _, session := range sessions {
		b.WriteString(session.String())
		b.WriteByte('\n')
		writeAttendees(&b, "[Attendees]", session.Members().Members(), today)
		writeAttendees(&b, "[Guests]", session.Guests().Members(), today)
	}
	b.WriteString("-end of class list-\n")
	return b.String()
}

func writeAttendees(b *strings.Builder, title string, members []models.Member, today models.Date) {
	if len(members) == 0 {
		return
	}
	b.WriteString(title)
	b.WriteByte('\n')
	for _, m := range members {
		b.WriteString("   ")
		b.WriteString(m.Describe(today))
		b.WriteByte('\n')
	}
}
