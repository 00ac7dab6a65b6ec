package request_models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"travelhelper/pkg/utils"
)

// GenerationRequestBody is the wire shape of a generation call. Pointer fields
// let binding tell an absent or null field apart from an empty string.
type GenerationRequestBody struct {
	Destination *string   `json:"destination" binding:"required"`
	Duration    *string   `json:"duration" binding:"required"`
	NumPeople   *string   `json:"num_people" binding:"required"`
	Activities  []*string `json:"activities" binding:"required,dive,required"`
}

// GenerationRequest is a validated trip request. Values are opaque text.
type GenerationRequest struct {
	Destination string
	Duration    string
	NumPeople   string
	Activities  []string
}

// DecodeGenerationRequest parses a request body strictly: it must be valid
// UTF-8 holding exactly one JSON object. Field names match exactly, a known
// field may appear once, unknown fields are skipped. Every error wraps
// utils.ErrInvalidRequest.
func DecodeGenerationRequest(raw []byte) (GenerationRequest, error) {
	if !utf8.Valid(raw) {
		return GenerationRequest{}, invalid(errors.New("body is not valid UTF-8"))
	}

	var body GenerationRequestBody
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil {
		return GenerationRequest{}, invalid(err)
	} else if tok != json.Delim('{') {
		return GenerationRequest{}, invalid(fmt.Errorf("expected object, got %v", tok))
	}

	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return GenerationRequest{}, invalid(err)
		}
		key, _ := tok.(string)

		var target any
		switch key {
		case "destination":
			target = &body.Destination
		case "duration":
			target = &body.Duration
		case "num_people":
			target = &body.NumPeople
		case "activities":
			target = &body.Activities
		default:
			target = new(json.RawMessage)
		}
		if _, unknown := target.(*json.RawMessage); !unknown {
			if seen[key] {
				return GenerationRequest{}, invalid(fmt.Errorf("duplicate field %q", key))
			}
			seen[key] = true
		}
		if err := dec.Decode(target); err != nil {
			return GenerationRequest{}, invalid(fmt.Errorf("field %q: %w", key, err))
		}
	}
	if _, err := dec.Token(); err != nil {
		return GenerationRequest{}, invalid(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return GenerationRequest{}, invalid(errors.New("trailing data after object"))
	}

	if err := binding.Validator.ValidateStruct(&body); err != nil {
		return GenerationRequest{}, invalid(err)
	}
	return body.ToGenerationRequest(), nil
}

func (b GenerationRequestBody) ToGenerationRequest() GenerationRequest {
	activities := make([]string, 0, len(b.Activities))
	for _, a := range b.Activities {
		if a != nil {
			activities = append(activities, *a)
		}
	}
	return GenerationRequest{
		Destination: deref(b.Destination),
		Duration:    deref(b.Duration),
		NumPeople:   deref(b.NumPeople),
		Activities:  activities,
	}
}

func (r GenerationRequest) ActivityList() string {
	return strings.Join(r.Activities, ", ")
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
