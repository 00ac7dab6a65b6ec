package utils

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"travelhelper/internal/models/response_models"
)

const (
	contentTypeJSON = "application/json"

	ParseErrorBody    = `{"error": "Error while parsing request"}`
	InternalErrorBody = `{"error": "Internal Server Error"}`
)

// EncodeItinerary renders the response envelope. HTML characters are left
// unescaped so the stored text round-trips byte for byte.
func EncodeItinerary(resp response_models.ItineraryResponse) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return []byte(InternalErrorBody)
	}
	return bytes.TrimRight(buf.Bytes(), "\n")
}

// RespondItinerary writes the envelope under the status chosen by the caller,
// including the fallback error body if encoding fails.
func RespondItinerary(c *gin.Context, code int, resp response_models.ItineraryResponse) {
	c.Data(code, contentTypeJSON, EncodeItinerary(resp))
}

func RespondParseError(c *gin.Context) {
	c.Data(http.StatusBadRequest, contentTypeJSON, []byte(ParseErrorBody))
}
