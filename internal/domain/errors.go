package domain

import "errors"

// Geocoding outcomes.
var (
	ErrEmptyQuery          = errors.New("query must not be empty")
	ErrNotFound            = errors.New("location not found, try a more specific address")
	ErrMalformedCoordinate = errors.New("malformed coordinate in geocoder response")
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
)

// Message building.
var (
	ErrInvalidRecipient = errors.New("recipient must contain at least 10 digits including country code")
	ErrEmptyBody        = errors.New("message body must not be empty")
	ErrUnknownTemplate  = errors.New("unknown message template")
)

// Session and request validation.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrIncompleteRoute = errors.New("both origin and destination must be set")
	ErrInvalidSlot     = errors.New("slot must be origin or destination")
	ErrInvalidShare    = errors.New("share must be none, origin, destination or both")
	ErrInvalidMode     = errors.New("mode must be drive, walk or transit")
)
