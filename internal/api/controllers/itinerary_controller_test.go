package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"travelhelper/internal/models/response_models"
	"travelhelper/internal/repositories"
	"travelhelper/internal/services"
	"travelhelper/pkg/kvstore"
	"travelhelper/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingLLM struct {
	text    string
	err     error
	prompts []string
}

func (r *recordingLLM) Infer(ctx context.Context, model, prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	return r.text, r.err
}

func (r *recordingLLM) Close() error { return nil }

type harness struct {
	engine *gin.Engine
	store  *kvstore.MemoryStore
	llm    *recordingLLM
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := kvstore.NewMemoryStore()
	llm := &recordingLLM{text: "Day 1: arrive in paradise"}
	svc := services.NewItineraryService(
		repositories.NewItineraryRepository(store),
		services.NewInferenceService(llm, "llama2-chat", 0, zap.NewNop()),
		utils.NewTagGenerator(nil),
		1,
		zap.NewNop(),
	)

	engine := gin.New()
	engine.NoRoute(NewItineraryController(svc, zap.NewNop()).HandleTravelHelper)
	return &harness{engine: engine, store: store, llm: llm}
}

func (h *harness) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response_models.ItineraryResponse {
	t.Helper()
	var resp response_models.ItineraryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

const mauiBody = `{"destination":"Maui","duration":"one week","num_people":"4","activities":["snorkeling","hiking"]}`

func TestExtractTag(t *testing.T) {
	tests := []struct {
		path  string
		tag   string
		fetch bool
	}{
		{"/plan-my-trip/abcdfghj", "abcdfghj", true},
		{"/plan-my-trip/", "", true},
		{"/plan-my-trip/a/b", "a/b", true},
		{"/plan-my-trip", "", false},
		{"/generate", "", false},
		{"/", "", false},
		{"/api/plan-my-trip/x", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			tag, ok := ExtractTag(tt.path)
			assert.Equal(t, tt.fetch, ok)
			assert.Equal(t, tt.tag, tag)
		})
	}
}

func TestHandleTravelHelper_Generation(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/generate", mauiBody)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Day 1: arrive in paradise", resp.Itinerary)
	assert.Len(t, resp.Tag, utils.TagLength)

	require.Len(t, h.llm.prompts, 1)
	assert.Equal(t, "Create a summer vacation detailed itinerary trip to go to Maui for a one week. 4 people will be going on this trip planning to do snorkeling, hiking", h.llm.prompts[0])

	stored, found, err := h.store.Get(context.Background(), resp.Tag)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, resp.Itinerary, string(stored))
}

func TestHandleTravelHelper_RoundTrip(t *testing.T) {
	h := newHarness(t)

	created := decodeEnvelope(t, h.do(http.MethodPost, "/", mauiBody))

	w := h.do(http.MethodGet, "/plan-my-trip/"+created.Tag, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, created, decodeEnvelope(t, w))
	assert.Len(t, h.llm.prompts, 1, "retrieval must not call inference")
}

func TestHandleTravelHelper_Retrieval(t *testing.T) {
	ctx := context.Background()

	t.Run("stored tag returns 200 with any method", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.store.Set(ctx, "abcdfghj", []byte("Day 2: road to Hana")))

		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
			w := h.do(method, "/plan-my-trip/abcdfghj", "")
			require.Equal(t, http.StatusOK, w.Code, method)
			assert.JSONEq(t, `{"itinerary":"Day 2: road to Hana","tag":"abcdfghj"}`, w.Body.String())
		}
	})

	t.Run("unknown tag without body is a parse error", func(t *testing.T) {
		h := newHarness(t)
		w := h.do(http.MethodGet, "/plan-my-trip/nothere1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, utils.ParseErrorBody, w.Body.String())
		assert.Empty(t, h.llm.prompts)
	})

	t.Run("unknown tag with valid body falls through to generation", func(t *testing.T) {
		h := newHarness(t)
		w := h.do(http.MethodGet, "/plan-my-trip/nothere1", mauiBody)
		require.Equal(t, http.StatusCreated, w.Code)

		resp := decodeEnvelope(t, w)
		assert.NotEqual(t, "nothere1", resp.Tag)
		assert.Len(t, h.llm.prompts, 1)
	})

	t.Run("escaped tag is looked up as sent", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.store.Set(ctx, "a%20b", []byte("encoded")))
		require.NoError(t, h.store.Set(ctx, "a b", []byte("decoded")))

		w := h.do(http.MethodGet, "/plan-my-trip/a%20b", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"itinerary":"encoded","tag":"a%20b"}`, w.Body.String())
	})

	t.Run("undecodable stored bytes fall through", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.store.Set(ctx, "binary01", []byte{0xff}))
		w := h.do(http.MethodGet, "/plan-my-trip/binary01", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleTravelHelper_InvalidBodies(t *testing.T) {
	bodies := map[string]string{
		"empty":                "",
		"not json":             "plan me a trip",
		"missing destination":  `{"duration":"one week","num_people":"4","activities":["hiking"]}`,
		"missing activities":   `{"destination":"Maui","duration":"one week","num_people":"4"}`,
		"null duration":        `{"destination":"Maui","duration":null,"num_people":"4","activities":[]}`,
		"numeric num_people":   `{"destination":"Maui","duration":"one week","num_people":4,"activities":[]}`,
		"activities not array": `{"destination":"Maui","duration":"one week","num_people":"4","activities":"hiking"}`,
		"null activity":        `{"destination":"Maui","duration":"one week","num_people":"4","activities":["hiking",null]}`,
		"numeric activity":     `{"destination":"Maui","duration":"one week","num_people":"4","activities":[1]}`,
		"array body":           `[]`,
		"trailing garbage":     mauiBody + ` not json`,
		"second object":        mauiBody + `{}`,
		"invalid utf8":         "{\"destination\":\"Ma\xffui\",\"duration\":\"one week\",\"num_people\":\"4\",\"activities\":[]}",
		"duplicate field":      `{"destination":"A","destination":"B","duration":"one week","num_people":"4","activities":[]}`,
		"wrong key casing":     `{"Destination":"Maui","duration":"one week","num_people":"4","activities":[]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			w := h.do(http.MethodPost, "/generate", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, `{"error": "Error while parsing request"}`, w.Body.String())
			assert.Empty(t, h.llm.prompts)
			assert.Equal(t, 0, h.store.Len())
		})
	}
}

func TestHandleTravelHelper_LenientBodies(t *testing.T) {
	bodies := map[string]string{
		"empty strings and activities": `{"destination":"","duration":"","num_people":"","activities":[]}`,
		"unknown fields ignored":       `{"destination":"Maui","duration":"a week","num_people":"2","activities":["surf"],"budget":"low"}`,
		"trailing whitespace":          mauiBody + " \n\t",
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			w := h.do(http.MethodPut, "/anything/at/all", body)
			assert.Equal(t, http.StatusCreated, w.Code)
		})
	}
}

func TestHandleTravelHelper_InferenceFailure(t *testing.T) {
	h := newHarness(t)
	h.llm.err = errors.New("model unavailable")

	w := h.do(http.MethodPost, "/generate", mauiBody)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Error in LLM", resp.Itinerary)

	w = h.do(http.MethodGet, "/plan-my-trip/"+resp.Tag, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Error in LLM", decodeEnvelope(t, w).Itinerary)
}
