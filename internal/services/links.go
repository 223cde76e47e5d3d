package services

import (
	"fmt"
	"navigation-service/internal/domain"
	"strings"
	"unicode"
)

const (
	routeURLPrefix   = "https://www.google.com/maps/dir/"
	mapPinURLPrefix  = "https://maps.google.com/?q="
	messageURLPrefix = "https://wa.me/"

	minRecipientDigits = 10
	locationHeader     = "\n\n📍 Location Details:\n"
)

// Travel-mode flags appended to the routing URL's data segment.
var modeFlags = map[domain.TravelMode]string{
	domain.ModeDrive:   "3e0",
	domain.ModeWalk:    "3e2",
	domain.ModeTransit: "3e3",
}

var shareLabels = map[domain.Slot]string{
	domain.SlotOrigin:      "Current",
	domain.SlotDestination: "Destination",
}

// BuildRouteURL formats a map routing URL from origin to destination.
// URLs for different modes differ only in the trailing mode flag.
func BuildRouteURL(origin, destination domain.Coordinates, mode domain.TravelMode) string {
	flag, ok := modeFlags[mode]
	if !ok {
		panic(fmt.Sprintf("build route url: unknown travel mode %q", string(mode)))
	}

	return fmt.Sprintf(
		"%s%s/%s/@%s,12z/data=!3m1!4b1!4m2!4m1!%s",
		routeURLPrefix, origin.Pair(), destination.Pair(), origin.Pair(), flag,
	)
}

// BuildRouteLinks returns one link per supported travel mode.
func BuildRouteLinks(origin, destination domain.Coordinates) []domain.NavigationLink {
	links := make([]domain.NavigationLink, 0, len(domain.TravelModes))
	for _, m := range domain.TravelModes {
		links = append(links, domain.NavigationLink{
			Mode: m,
			URL:  BuildRouteURL(origin, destination, m),
		})
	}
	return links
}

// MapPinURL points a map at a single coordinate.
func MapPinURL(c domain.Coordinates) string {
	return mapPinURLPrefix + c.Pair()
}

// NormalizeRecipient strips a leading "+" and every non-digit character.
func NormalizeRecipient(raw string) string {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "+")

	var b strings.Builder
	for _, r := range raw {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildMessagePayload prepares a messaging deep link for recipientRaw.
//
// Requested slots that are empty in state are skipped without error: sharing
// is best effort and a partially populated session is a normal condition.
// state may be nil, which behaves like an empty session.
func BuildMessagePayload(
	recipientRaw string,
	body string,
	share domain.LocationShare,
	state *domain.LocationState,
) (domain.MessagePayload, error) {
	digits := NormalizeRecipient(recipientRaw)
	if len(digits) < minRecipientDigits {
		return domain.MessagePayload{}, fmt.Errorf(
			"build message: %w (got %d digits)",
			domain.ErrInvalidRecipient, len(digits),
		)
	}

	final := body + locationDetails(share, state)
	if final == "" {
		return domain.MessagePayload{}, fmt.Errorf("build message: %w", domain.ErrEmptyBody)
	}

	return domain.MessagePayload{
		RecipientDigits: digits,
		Body:            final,
		EncodedURL:      messageURLPrefix + digits + "?text=" + escapeMessageText(final),
	}, nil
}

func locationDetails(share domain.LocationShare, state *domain.LocationState) string {
	if state == nil {
		return ""
	}

	var b strings.Builder
	for _, slot := range []domain.Slot{domain.SlotOrigin, domain.SlotDestination} {
		if !share.Includes(slot) {
			continue
		}
		loc, ok := state.Get(slot)
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "%s: %s\n", shareLabels[slot], loc.DisplayAddress)
		fmt.Fprintf(&b, "📐 %s\n", loc.Coordinates.Fixed())
		fmt.Fprintf(&b, "🗺️ %s\n", MapPinURL(loc.Coordinates))
	}

	if b.Len() == 0 {
		return ""
	}
	return locationHeader + b.String()
}

// escapeMessageText percent-encodes every UTF-8 byte outside the RFC 3986
// unreserved set, leaving "/" literal.
func escapeMessageText(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
