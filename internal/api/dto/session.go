package dto

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type LocationResponse struct {
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	DisplayAddress string  `json:"display_address"`
}

type SessionResponse struct {
	SessionID   string            `json:"session_id"`
	Phase       string            `json:"phase"`
	Origin      *LocationResponse `json:"origin"`
	Destination *LocationResponse `json:"destination"`
}

type ResolveLocationRequest struct {
	Query string `json:"query" validate:"max=512"`
}

type ResolveLocationResponse struct {
	Slot     string           `json:"slot"`
	Location LocationResponse `json:"location"`
}
