package domain

// A place resolved by a geocoder: its coordinates and the provider's
// canonical display name. Values are replaced, never mutated.
type ResolvedLocation struct {
	Coordinates    Coordinates `json:"coordinates"`
	DisplayAddress string      `json:"display_address"`
}
