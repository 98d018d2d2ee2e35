package models

import "strings"

// CommandType enumerates supported studio manager commands.
type CommandType string

const (
	CommandAddBasic       CommandType = "AB"
	CommandAddFamily      CommandType = "AF"
	CommandAddPremium     CommandType = "AP"
	CommandCancel         CommandType = "C"
	CommandAttend         CommandType = "R"
	CommandUnattend       CommandType = "U"
	CommandAttendGuest    CommandType = "RG"
	CommandUnattendGuest  CommandType = "UG"
	CommandShowSchedule   CommandType = "S"
	CommandPrintByProfile CommandType = "PM"
	CommandPrintByCounty  CommandType = "PC"
	CommandPrintFees      CommandType = "PF"
	CommandLoadSchedule   CommandType = "LS"
	CommandLoadMembers    CommandType = "LM"
	CommandQuit           CommandType = "Q"
	CommandEmpty          CommandType = ""
	CommandUnknown        CommandType = "unknown"
)

var knownCommands = map[CommandType]struct{}{
	CommandAddBasic:       {},
	CommandAddFamily:      {},
	CommandAddPremium:     {},
	CommandCancel:         {},
	CommandAttend:         {},
	CommandUnattend:       {},
	CommandAttendGuest:    {},
	CommandUnattendGuest:  {},
	CommandShowSchedule:   {},
	CommandPrintByProfile: {},
	CommandPrintByCounty:  {},
	CommandPrintFees:      {},
	CommandLoadSchedule:   {},
	CommandLoadMembers:    {},
	CommandQuit:           {},
}

// Command represents a parsed line of operator input.
type Command struct {
	Type CommandType
	Raw  string
	Args []string
}

// ParseCommand derives a Command from a line of text. Command heads are
// case-sensitive, matching the operator console; arguments keep their case.
func ParseCommand(line string) Command {
	tokens := strings.Fields(line)
	cmd := Command{Raw: line}

	if len(tokens) == 0 {
		cmd.Type = CommandEmpty
		return cmd
	}

	head := CommandType(tokens[0])
	if _, ok := knownCommands[head]; ok {
		cmd.Type = head
	} else {
		cmd.Type = CommandUnknown
	}

	if len(tokens) > 1 {
		cmd.Args = tokens[1:]
	}

	return cmd
}
