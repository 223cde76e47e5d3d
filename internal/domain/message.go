package domain

import (
	"fmt"
	"strings"
)

// LocationShare selects which session slots are embedded in a message.
type LocationShare string

const (
	ShareNone        LocationShare = "none"
	ShareOrigin      LocationShare = "origin"
	ShareDestination LocationShare = "destination"
	ShareBoth        LocationShare = "both"
)

// ParseLocationShare treats an empty value as ShareNone.
func ParseLocationShare(s string) (LocationShare, error) {
	switch v := LocationShare(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return ShareNone, nil
	case ShareNone, ShareOrigin, ShareDestination, ShareBoth:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidShare, s)
}

// Includes reports whether the share selection asks for slot.
func (s LocationShare) Includes(slot Slot) bool {
	switch s {
	case ShareBoth:
		return true
	case ShareOrigin:
		return slot == SlotOrigin
	case ShareDestination:
		return slot == SlotDestination
	}
	return false
}

// A pre-filled messaging deep link. Not persisted beyond the send action.
type MessagePayload struct {
	RecipientDigits string `json:"recipient_digits"`
	Body            string `json:"body"`
	EncodedURL      string `json:"encoded_url"`
}

// A canned message body offered to users.
type MessageTemplate struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

var messageTemplates = []MessageTemplate{
	{Name: "Location Share", Body: "I'm sharing my location with you."},
	{Name: "Meeting Request", Body: "Can we schedule a meeting?"},
	{Name: "Emergency", Body: "This is an emergency. Please contact me immediately."},
	{Name: "Arrival Notice", Body: "I have reached the destination safely."},
	{Name: "Running Late", Body: "I'm running late, will reach in 15 minutes."},
	{Name: "Need Help", Body: "I need assistance. Please call me."},
}

// MessageTemplates returns the templates in display order.
func MessageTemplates() []MessageTemplate {
	out := make([]MessageTemplate, len(messageTemplates))
	copy(out, messageTemplates)
	return out
}

// LookupTemplate matches names case-insensitively.
func LookupTemplate(name string) (MessageTemplate, error) {
	name = strings.TrimSpace(name)
	for _, t := range messageTemplates {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return MessageTemplate{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
}
