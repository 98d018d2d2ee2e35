package models

// OutboundMessage is a report or notice pushed to the studio operators.
type OutboundMessage struct {
	To      string
	Subject string
	Message string
}
