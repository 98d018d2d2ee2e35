package textfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedp2003/fitnessclub/internal/config"
	"github.com/vedp2003/fitnessclub/internal/domain/models"
)

const memberList = `B John Doe 1/20/2003 3/30/2027 BRIDGEWATER

F Mary Lindsey 12/1/1989 2/28/2027 edison
P Bill Scanlan 5/1/1999 3/31/2027 Somerville
`

const classSchedule = `PILATES JENNIFER MORNING BRIDGEWATER
spinning denise afternoon franklin
CARDIO KIM EVENING EDISON
`

func TestParseMembers(t *testing.T) {
	members, err := ParseMembers(strings.NewReader(memberList))
	require.NoError(t, err)
	require.Len(t, members, 3)

	basic, ok := members[0].(*models.Basic)
	require.True(t, ok)
	assert.Equal(t, 0, basic.Classes())
	assert.Equal(t, "John:Doe:1/20/2003", basic.Profile().String())
	assert.Equal(t, "3/30/2027", basic.Expiration().String())
	assert.Equal(t, models.Bridgewater, basic.HomeStudio())

	family, ok := members[1].(*models.Family)
	require.True(t, ok)
	assert.True(t, family.GuestAvailable())
	assert.Equal(t, models.Edison, family.HomeStudio())

	premium, ok := members[2].(*models.Premium)
	require.True(t, ok)
	assert.Equal(t, models.PremiumGuestPasses, premium.GuestPasses())
}

func TestParseMembersRejectsBadLines(t *testing.T) {
	cases := map[string]error{
		"X John Doe 1/20/2003 3/30/2027 EDISON":  ErrMalformedLine,
		"B John Doe 1/20/2003 EDISON":            ErrMalformedLine,
		"B John Doe 1-20-2003 3/30/2027 EDISON":  models.ErrDateFormat,
		"B John Doe 1/20/2003 3/30/2027 HOBOKEN": models.ErrUnknownLocation,
	}

	for line, want := range cases {
		t.Run(line, func(t *testing.T) {
			_, err := ParseMembers(strings.NewReader("\n" + line + "\n"))
			require.ErrorIs(t, err, want)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestParseSchedule(t *testing.T) {
	sessions, err := ParseSchedule(strings.NewReader(classSchedule))
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "PILATES - JENNIFER, 9:30, BRIDGEWATER", sessions[0].String())
	assert.Equal(t, "SPINNING - DENISE, 14:00, FRANKLIN", sessions[1].String())
	assert.Equal(t, models.Evening, sessions[2].Time())

	_, err = ParseSchedule(strings.NewReader("YOGA KIM EVENING EDISON\n"))
	assert.ErrorIs(t, err, models.ErrUnknownOffer)
}

func TestFileRepository(t *testing.T) {
	dir := t.TempDir()
	memberPath := filepath.Join(dir, "memberList.txt")
	schedulePath := filepath.Join(dir, "classSchedule.txt")
	require.NoError(t, os.WriteFile(memberPath, []byte(memberList), 0o600))
	require.NoError(t, os.WriteFile(schedulePath, []byte(classSchedule), 0o600))

	repo := NewFileRepository(config.StudioConfig{MemberFile: memberPath, ScheduleFile: schedulePath}, nil)
	ctx := context.Background()

	members, err := repo.ReadMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 3)

	sessions, err := repo.ReadSchedule(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 3)
}

func TestFileRepositoryErrors(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(config.StudioConfig{
		MemberFile:   filepath.Join(dir, "missing.txt"),
		ScheduleFile: filepath.Join(dir, "missing.txt"),
	}, nil)

	_, err := repo.ReadMembers(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.ReadSchedule(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
