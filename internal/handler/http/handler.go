package http

import (
	"encoding/json"
	"net/http"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/internal/utils"
	"github.com/saarzint/candle-recall/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// decodeJSON reads the request body into v. On failure it answers 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, fn string) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return false
	}
	return true
}

// userID returns the ID the auth middleware put into the context. A missing
// ID answers 401.
func userID(w http.ResponseWriter, r *http.Request, fn string) (int64, bool) {
	id, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		logger.FromRequest(r).Error().Str("func", fn).Msg("no user ID was given")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return 0, false
	}
	return id, true
}
