package response_models

// ItineraryResponse is the only success body the service returns.
type ItineraryResponse struct {
	Itinerary string `json:"itinerary"`
	Tag       string `json:"tag"`
}
