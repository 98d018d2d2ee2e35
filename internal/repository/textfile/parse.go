// Package textfile loads member lists and class schedules from whitespace
// separated text files.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vedp2003/fitnessclub/internal/domain/models"
	"github.com/vedp2003/fitnessclub/internal/domain/schedule"
)

// ErrMalformedLine indicates a record with the wrong number of fields or an unknown type code.
var ErrMalformedLine = errors.New("malformed record")

const (
	memberFields   = 6
	scheduleFields = 4

	basicInitialClasses = 0
)

// ParseMembers reads "type first last dob expire studio" records, where type
// is B, F or P. Blank lines are skipped.
func ParseMembers(r io.Reader) ([]models.Member, error) {
	var members []models.Member
	err := scanRecords(r, memberFields, func(fields []string) error {
		m, err := parseMember(fields)
		if err != nil {
			return err
		}
		members = append(members, m)
		return nil
	})
	return members, err
}

// ParseSchedule reads "offer instructor slot studio" records. Blank lines are skipped.
func ParseSchedule(r io.Reader) ([]*schedule.Session, error) {
	var sessions []*schedule.Session
	err := scanRecords(r, scheduleFields, func(fields []string) error {
		offer, err := models.ParseOffer(fields[0])
		if err != nil {
			return err
		}
		instructor, err := models.ParseInstructor(fields[1])
		if err != nil {
			return err
		}
		slot, err := models.ParseTimeSlot(fields[2])
		if err != nil {
			return err
		}
		studio, err := models.ParseLocation(fields[3])
		if err != nil {
			return err
		}
		sessions = append(sessions, schedule.NewSession(offer, instructor, studio, slot))
		return nil
	})
	return sessions, err
}

func parseMember(fields []string) (models.Member, error) {
	dob, err := models.ParseDate(fields[3])
	if err != nil {
		return nil, err
	}
	expire, err := models.ParseDate(fields[4])
	if err != nil {
		return nil, err
	}
	studio, err := models.ParseLocation(fields[5])
	if err != nil {
		return nil, err
	}

	profile := models.NewProfile(fields[1], fields[2], dob)
	switch fields[0] {
	case "B":
		return models.NewBasic(profile, expire, studio, basicInitialClasses), nil
	case "F":
		return models.NewFamily(profile, expire, studio, true), nil
	case "P":
		return models.NewPremium(profile, expire, studio, models.PremiumGuestPasses), nil
	default:
		return nil, fmt.Errorf("membership type %q: %w", fields[0], ErrMalformedLine)
	}
}

func scanRecords(r io.Reader, want int, handle func([]string) error) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != want {
			return fmt.Errorf("line %d: expected %d fields, got %d: %w", line, want, len(fields), ErrMalformedLine)
		}
		if err := handle(fields); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}
