package services

import (
	"fmt"

	"travelhelper/internal/models/request_models"
)

const itineraryPromptTemplate = "Create a summer vacation detailed itinerary trip to go to %s for a %s. %s people will be going on this trip planning to do %s"

// BuildItineraryPrompt interpolates the request verbatim; nothing is escaped or trimmed.
func BuildItineraryPrompt(req request_models.GenerationRequest) string {
	return fmt.Sprintf(itineraryPromptTemplate, req.Destination, req.Duration, req.NumPeople, req.ActivityList())
}
