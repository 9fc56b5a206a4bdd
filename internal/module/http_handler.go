package module

import (
	"net/http"
	"strconv"

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

// ListInstances handles GET /v1/module-instances
// @Summary List module instances
// @Description Every module offering with the professors who teach it
// @Tags modules
// @Produce json
// @Security Bearer
// @Param module query string false "Module code"
// @Param year query int false "Academic year"
// @Param semester query int false "Semester (1 or 2)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /v1/module-instances [get]
func (h *HTTPHandler) ListInstances(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, pageSize := httpx.Page(r)

	q := ListQuery{
		ModuleCode: query.Get("module"),
		Limit:      pageSize,
		Offset:     httpx.Offset(page, pageSize),
	}
	if v := query.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid year", nil)
			return
		}
		q.Year = year
	}
	if v := query.Get("semester"); v != "" {
		sem, err := strconv.Atoi(v)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid semester", nil)
			return
		}
		q.Semester = Semester(sem)
	}

	instances, total, err := h.service.ListInstances(r.Context(), q)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, instances, httpx.PageMeta(page, pageSize, total))
}

// GetInstance handles GET /v1/module-instances/{id}
func (h *HTTPHandler) GetInstance(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}
	inst, err := h.service.GetInstance(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, inst, nil)
}

type createModuleReq struct {
	Code        string `json:"code" validate:"required,module_code"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Credits     int    `json:"credits" validate:"gte=0,lte=120"`
}

// CreateModule handles POST /v1/admin/modules
// @Summary Create a module
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body createModuleReq true "Module"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/admin/modules [post]
func (h *HTTPHandler) CreateModule(w http.ResponseWriter, r *http.Request) {
	var req createModuleReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Code = NormalizeCode(req.Code)
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	m, err := h.service.CreateModule(r.Context(), CreateModuleInput{
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
		Credits:     req.Credits,
	})
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, m)
}

type createInstanceReq struct {
	ModuleCode   string  `json:"module_code" validate:"required,module_code"`
	Year         int     `json:"year" validate:"gte=2000,lte=2100"`
	Semester     int     `json:"semester" validate:"semester"`
	ProfessorIDs []int64 `json:"professor_ids" validate:"dive,gt=0"`
}

// CreateInstance handles POST /v1/admin/module-instances
// @Summary Offer a module in a year and semester
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body createInstanceReq true "Module instance"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/admin/module-instances [post]
func (h *HTTPHandler) CreateInstance(w http.ResponseWriter, r *http.Request) {
	var req createInstanceReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.ModuleCode = NormalizeCode(req.ModuleCode)
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	inst, err := h.service.CreateInstance(r.Context(), CreateInstanceInput{
		ModuleCode:   req.ModuleCode,
		Year:         req.Year,
		Semester:     Semester(req.Semester),
		ProfessorIDs: req.ProfessorIDs,
	})
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, inst)
}

type assignReq struct {
	ProfessorID int64 `json:"professor_id" validate:"required,gt=0"`
}

// AssignProfessor handles POST /v1/admin/module-instances/{id}/professors
func (h *HTTPHandler) AssignProfessor(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}
	var req assignReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	inst, err := h.service.AssignProfessor(r.Context(), id, req.ProfessorID)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, inst, nil)
}
