package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileEqualIgnoresNameCase(t *testing.T) {
	dob := NewDate(4, 3, 1999)
	p := NewProfile("Roy", "Brooks", dob)

	assert.True(t, p.Equal(NewProfile("ROY", "brooks", dob)))
	assert.False(t, p.Equal(NewProfile("Roy", "Brooks", NewDate(4, 4, 1999))))
	assert.False(t, p.Equal(NewProfile("Roy", "Brook", dob)))
	assert.Equal(t, "Roy:Brooks:4/3/1999", p.String())
}

func TestProfileCompare(t *testing.T) {
	dob := NewDate(4, 3, 1999)

	assert.Negative(t, NewProfile("Zed", "adams", dob).Compare(NewProfile("Amy", "Brooks", dob)))
	assert.Positive(t, NewProfile("Roy", "Brooks", dob).Compare(NewProfile("Amy", "brooks", dob)))
	assert.Negative(t, NewProfile("Roy", "Brooks", NewDate(1, 1, 1990)).Compare(NewProfile("Roy", "Brooks", dob)))
	assert.Zero(t, NewProfile("Roy", "Brooks", dob).Compare(NewProfile("Roy", "BROOKS", dob)))
}

func TestVocabularies(t *testing.T) {
	loc, err := ParseLocation("piscataway")
	require.NoError(t, err)
	assert.Equal(t, Piscataway, loc)
	assert.Equal(t, "MIDDLESEX", loc.County())
	assert.Equal(t, "08854", loc.ZipCode())
	assert.Equal(t, "PISCATAWAY, 08854, MIDDLESEX", loc.String())
	assert.Len(t, Locations(), 5)

	_, err = ParseLocation("Newark")
	assert.ErrorIs(t, err, ErrUnknownLocation)

	instructor, err := ParseInstructor("davis")
	require.NoError(t, err)
	assert.Equal(t, "DAVIS", instructor.String())
	_, err = ParseInstructor("bob")
	assert.ErrorIs(t, err, ErrUnknownInstructor)

	offer, err := ParseOffer("Spinning")
	require.NoError(t, err)
	assert.Equal(t, "SPINNING", offer.String())
	_, err = ParseOffer("yoga")
	assert.ErrorIs(t, err, ErrUnknownOffer)

	slot, err := ParseTimeSlot("afternoon")
	require.NoError(t, err)
	assert.Equal(t, "14:00", slot.String())
	assert.Equal(t, "9:30", Morning.String())
	assert.Equal(t, 18, Evening.Hour())
	assert.Equal(t, 30, Evening.Minute())
	_, err = ParseTimeSlot("night")
	assert.ErrorIs(t, err, ErrUnknownTimeSlot)
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		line     string
		wantType CommandType
		wantArgs []string
	}{
		{"AB John Doe 1/20/2003 Bridgewater", CommandAddBasic, []string{"John", "Doe", "1/20/2003", "Bridgewater"}},
		{"  R  pilates jennifer bridgewater John Doe 1/20/2003", CommandAttend, []string{"pilates", "jennifer", "bridgewater", "John", "Doe", "1/20/2003"}},
		{"PF", CommandPrintFees, nil},
		{"Q", CommandQuit, nil},
		{"", CommandEmpty, nil},
		{"   ", CommandEmpty, nil},
		{"ab John Doe 1/20/2003 Edison", CommandUnknown, []string{"John", "Doe", "1/20/2003", "Edison"}},
		{"XYZ", CommandUnknown, nil},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			cmd := ParseCommand(tc.line)
			assert.Equal(t, tc.wantType, cmd.Type)
			assert.Equal(t, tc.wantArgs, cmd.Args)
			assert.Equal(t, tc.line, cmd.Raw)
		})
	}
}
