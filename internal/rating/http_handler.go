package rating

import (
	"net/http"

	"profrate/internal/httpx"

	"github.com/rs/zerolog"
)

type HTTPHandler struct {
	service *Service
	log     zerolog.Logger
}

func NewHTTPHandler(service *Service, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

type submitRatingReq struct {
	ProfessorID      int64 `json:"professor_id" validate:"required,gt=0"`
	ModuleInstanceID int64 `json:"module_instance_id" validate:"required,gt=0"`
	Score            int   `json:"score"`
}

type submitRatingResp struct {
	Outcome Outcome `json:"outcome"`
	Rating  Rating  `json:"rating"`
}

// Submit handles POST /v1/ratings
// @Summary Rate a professor in a module instance
// @Description Creates the caller's rating, or overwrites the score of an existing one
// @Tags ratings
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body submitRatingReq true "Rating"
// @Success 201 {object} httpx.SuccessResponse "created"
// @Success 200 {object} httpx.SuccessResponse "updated"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/ratings [post]
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req submitRatingReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	outcome, saved, err := h.service.Submit(r.Context(), userID, SubmitInput{
		ProfessorID:      req.ProfessorID,
		ModuleInstanceID: req.ModuleInstanceID,
		Score:            req.Score,
	})
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if outcome == OutcomeCreated {
		status = http.StatusCreated
	}
	httpx.JSONSuccessStatus(w, r, status, submitRatingResp{Outcome: outcome, Rating: saved}, nil)
}

// Mine handles GET /v1/ratings
// @Summary List the caller's ratings
// @Tags ratings
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/ratings [get]
func (h *HTTPHandler) Mine(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListForUser(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, entries, map[string]any{"total": len(entries)})
}

// Overview handles GET /v1/professors
// @Summary Professor ratings overview
// @Description Every professor with their average rating rounded to whole stars
// @Tags professors
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/professors [get]
func (h *HTTPHandler) Overview(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Overview(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, rows, nil)
}

// ProfessorAverage handles GET /v1/professors/{id}/average
// @Summary Average rating of a professor
// @Description Mean of every rating of the professor, rounded half up to whole stars; 0 when unrated
// @Tags professors
// @Produce json
// @Security Bearer
// @Param id path int true "Professor ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/professors/{id}/average [get]
func (h *HTTPHandler) ProfessorAverage(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}
	avg, err := h.service.AverageForProfessor(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, avg, nil)
}

// ModuleAverage handles GET /v1/professors/{id}/modules/{code}/average
// @Summary Average rating of a professor in a module
// @Tags professors
// @Produce json
// @Security Bearer
// @Param id path int true "Professor ID"
// @Param code path string true "Module code"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse "professor does not teach the module"
// @Router /v1/professors/{id}/modules/{code}/average [get]
func (h *HTTPHandler) ModuleAverage(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}
	avg, err := h.service.AverageForProfessorInModule(r.Context(), id, r.PathValue("code"))
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, avg, nil)
}
