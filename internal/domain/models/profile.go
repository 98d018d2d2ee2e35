package models

import "strings"

// Profile identifies a member by name and date of birth.
type Profile struct {
	firstName string
	lastName  string
	dob       Date
}

// Profiler is anything that carries a member Profile.
type Profiler interface {
	Profile() Profile
}

// NewProfile builds a Profile.
func NewProfile(firstName, lastName string, dob Date) Profile {
	return Profile{firstName: firstName, lastName: lastName, dob: dob}
}

// FirstName returns the first name as entered.
func (p Profile) FirstName() string { return p.firstName }

// LastName returns the last name as entered.
func (p Profile) LastName() string { return p.lastName }

// DateOfBirth returns the date of birth.
func (p Profile) DateOfBirth() Date { return p.dob }

// Equal matches both names case-insensitively and the date of birth exactly.
func (p Profile) Equal(other Profile) bool {
	return strings.EqualFold(p.firstName, other.firstName) &&
		strings.EqualFold(p.lastName, other.lastName) &&
		p.dob.Equal(other.dob)
}

// Compare orders by last name ignoring case, then first name, then date of birth.
func (p Profile) Compare(other Profile) int {
	if c := strings.Compare(strings.ToLower(p.lastName), strings.ToLower(other.lastName)); c != 0 {
		return c
	}
	if c := strings.Compare(p.firstName, other.firstName); c != 0 {
		return c
	}
	return p.dob.Compare(other.dob)
}

// String renders first:last:dob.
func (p Profile) String() string {
	return p.firstName + ":" + p.lastName + ":" + p.dob.String()
}
