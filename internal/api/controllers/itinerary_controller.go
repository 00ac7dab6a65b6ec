package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelhelper/internal/models/request_models"
	"travelhelper/internal/services"
	"travelhelper/pkg/utils"
)

// FetchPrefix marks a retrieval path; whatever follows it is the tag.
const FetchPrefix = "/plan-my-trip/"

// ExtractTag returns the raw remainder of path after FetchPrefix. The tag is
// not validated or unescaped, so it may be empty or contain slashes.
func ExtractTag(path string) (string, bool) {
	return strings.CutPrefix(path, FetchPrefix)
}

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	logger           *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, logger *zap.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// HandleTravelHelper serves every method and path. A fetch path whose tag
// resolves returns 200; anything else, including an unknown tag, is handled
// as a generation request built from the body.
func (ic *ItineraryController) HandleTravelHelper(c *gin.Context) {
	ctx := c.Request.Context()

	if tag, ok := ExtractTag(c.Request.URL.EscapedPath()); ok {
		if resp, found := ic.itineraryService.Retrieve(ctx, tag); found {
			utils.RespondItinerary(c, http.StatusOK, resp)
			return
		}
	}

	raw, err := c.GetRawData()
	if err != nil {
		ic.logger.Debug("Failed to read request body", zap.Error(err))
		utils.RespondParseError(c)
		return
	}
	req, err := request_models.DecodeGenerationRequest(raw)
	if err != nil {
		ic.logger.Debug("Rejected generation request", zap.Error(err))
		utils.RespondParseError(c)
		return
	}

	resp := ic.itineraryService.Generate(ctx, req)
	utils.RespondItinerary(c, http.StatusCreated, resp)
}
