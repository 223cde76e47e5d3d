package dto

type LinkResponse struct {
	Mode string `json:"mode"`
	URL  string `json:"url"`
}

type NavigationResponse struct {
	Origin      LocationResponse `json:"origin"`
	Destination LocationResponse `json:"destination"`
	DistanceKm  float64          `json:"distance_km"`
	Distance    string           `json:"distance"`
	Links       []LinkResponse   `json:"links"`
}
