package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vedp2003/fitnessclub/internal/domain/models"
	"github.com/vedp2003/fitnessclub/internal/domain/schedule"
)

// Membership terms in months, counted from the day a member joins.
const (
	basicTermMonths   = 1
	familyTermMonths  = 3
	premiumTermMonths = 12
)

// addMember handles AB, AF and AP: first last dob studio.
func (s *Service) addMember(kind models.Kind, args []string, today models.Date) (string, error) {
	if len(args) != 4 {
		return "", fmt.Errorf("%w: expected first name, last name, date of birth and studio", ErrInvalidArguments)
	}

	profile, err := parseProfile(args[0], args[1], args[2])
	if err != nil {
		return "", err
	}
	dob := profile.DateOfBirth()
	if dob.IsOnOrAfter(today) {
		return "", fmt.Errorf("DOB %s: %w", dob, ErrFutureBirthDate)
	}
	if !dob.IsAtLeast18(today) {
		return "", fmt.Errorf("DOB %s: %w", dob, ErrUnderage)
	}

	studio, err := models.ParseLocation(args[3])
	if err != nil {
		return "", err
	}

	var member models.Member
	switch kind {
	case models.KindBasic:
		member = models.NewBasic(profile, today.AddMonths(basicTermMonths), studio, 0)
	case models.KindFamily:
		member = models.NewFamily(profile, today.AddMonths(familyTermMonths), studio, true)
	case models.KindPremium:
		member = models.NewPremium(profile, today.AddMonths(premiumTermMonths), studio, models.PremiumGuestPasses)
	default:
		return "", fmt.Errorf("membership kind %q: %w", kind, ErrUnsupportedCommand)
	}

	if !s.members.Add(member) {
		return "", fmt.Errorf("%s: %w", fullName(profile), ErrMemberExists)
	}

	s.logger.Info("member added",
		zap.String("kind", string(kind)),
		zap.String("studio", studio.Name()),
		zap.String("expires", member.Expiration().String()))

	return fmt.Sprintf("%s added.", fullName(profile)), nil
}

// cancelMember handles C: first last dob. The member also leaves every class.
func (s *Service) cancelMember(args []string) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("%w: expected first name, last name and date of birth", ErrInvalidArguments)
	}

	profile, err := parseProfile(args[0], args[1], args[2])
	if err != nil {
		return "", err
	}

	member, err := s.members.Find(profile)
	if err != nil {
		return "", err
	}

	for _, session := range s.schedule.Sessions() {
		session.RemoveMember(member)
		session.RemoveGuest(member)
	}
	s.members.Remove(member)

	s.logger.Info("member removed", zap.String("kind", string(member.Kind())))
	return fmt.Sprintf("%s removed.", fullName(member.Profile())), nil
}

// loadMembers handles LM. Members already present are skipped.
func (s *Service) loadMembers(ctx context.Context, today models.Date) (string, error) {
	if s.repo == nil {
		return "", errors.New("member repository is not configured")
	}

	loaded, err := s.repo.ReadMembers(ctx)
	if err != nil {
		return "", fmt.Errorf("load members: %w", err)
	}

	var b strings.Builder
	b.WriteString("-list of members loaded-\n")
	skipped := 0
	for _, m := range loaded {
		if !s.members.Add(m) {
			skipped++
			continue
		}
		b.WriteString(m.Describe(today))
		b.WriteByte('\n')
	}
	b.WriteString("-end of list-\n")

	if skipped > 0 {
		s.logger.Warn("duplicate members skipped while loading", zap.Int("skipped", skipped))
	}
	s.logger.Info("members loaded", zap.Int("added", len(loaded)-skipped))

	return b.String(), nil
}

// loadSchedule handles LS. The current schedule is only replaced when every
// session in the file is accepted.
func (s *Service) loadSchedule(ctx context.Context) (string, error) {
	if s.repo == nil {
		return "", errors.New("schedule repository is not configured")
	}

	sessions, err := s.repo.ReadSchedule(ctx)
	if err != nil {
		return "", fmt.Errorf("load schedule: %w", err)
	}

	next := schedule.New()
	for _, session := range sessions {
		if err := next.Add(session); err != nil {
			return "", fmt.Errorf("load schedule: %w", err)
		}
	}
	s.schedule = next

	var b strings.Builder
	b.WriteString("-Fitness classes loaded-\n")
	for _, session := range next.Sessions() {
		b.WriteString(session.String())
		b.WriteByte('\n')
	}
	b.WriteString("-end of class list-\n")

	s.logger.Info("class schedule loaded", zap.Int("sessions", next.Len()))
	return b.String(), nil
}
