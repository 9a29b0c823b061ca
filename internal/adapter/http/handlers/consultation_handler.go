package handlers

import (
	"net/http"

	"placement_service/internal/adapter/http/dto/request"
	"placement_service/internal/adapter/http/dto/response"
	"placement_service/internal/infrastructure/metrics"
	"placement_service/internal/usecase"
	"placement_service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ConsultationHandler struct {
	usecase usecase.IConsultationUseCase
}

func NewConsultationHandler(uc usecase.IConsultationUseCase) *ConsultationHandler {
	return &ConsultationHandler{usecase: uc}
}

// Create godoc
// @Summary      Submit a consultation request
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Param        body  body      request.ConsultationCreateRequest  true  "Consultation"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  pkg.HTTPError
// @Router       /v1/consultations [post]
func (h *ConsultationHandler) Create(c *gin.Context) {
	var req request.ConsultationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		log.Error().Err(err).Str("contact", logger.MaskContact(req.Contact)).Msg("[consultation][handler] create failed")
		writeError(c, mapUseCaseError(err))
		return
	}
	metrics.Submissions.WithLabelValues("consultation").Inc()

	c.JSON(http.StatusCreated, response.Envelope{
		Message: "상담 신청이 접수되었습니다.",
		Data:    response.FromConsultation(created),
	})
}

// List godoc
// @Summary      List consultations
// @Tags         consultations
// @Produce      json
// @Security     BearerAuth
// @Param        status     query  string  false  "Status filter"
// @Param        q          query  string  false  "Name or contact substring"
// @Param        page       query  int     false  "Page"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  response.ListResponse[response.ConsultationResponse]
// @Failure      401  {object}  pkg.HTTPError
// @Router       /v1/consultations [get]
func (h *ConsultationHandler) List(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	filter := q.ToFilter()
	items, total, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("[consultation][handler] list failed")
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(response.FromConsultations(items), total, filter))
}

// Update godoc
// @Summary      Update a consultation
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      request.ConsultationUpdateRequest  true  "Patch"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /v1/consultations [patch]
func (h *ConsultationHandler) Update(c *gin.Context) {
	var req request.ConsultationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), req.ID, req.ToPatch())
	if err != nil {
		log.Warn().Err(err).Str("id", req.ID).Msg("[consultation][handler] update failed")
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.Envelope{Message: "updated", Data: response.FromConsultation(updated)})
}

// Delete godoc
// @Summary      Delete consultations
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      request.DeleteRequest  true  "IDs"
// @Success      200   {object}  response.DeleteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /v1/consultations [delete]
func (h *ConsultationHandler) Delete(c *gin.Context) {
	var req request.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	n, err := h.usecase.Delete(c.Request.Context(), req.IDs)
	if err != nil {
		log.Error().Err(err).Int("ids", len(req.IDs)).Msg("[consultation][handler] delete failed")
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.DeleteResponse{Deleted: n})
}

// Export godoc
// @Summary      Export consultations as CSV
// @Tags         consultations
// @Produce      text/csv
// @Security     BearerAuth
// @Param        status  query  string  false  "Status filter"
// @Param        q       query  string  false  "Name or contact substring"
// @Success      200  {file}  file
// @Router       /v1/consultations/export [get]
func (h *ConsultationHandler) Export(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	items, _, err := h.usecase.List(c.Request.Context(), q.ToExportFilter())
	if err != nil {
		log.Error().Err(err).Msg("[consultation][handler] export failed")
		writeError(c, mapUseCaseError(err))
		return
	}
	if err := writeCSV(c, "consultations", consultationCSVHeader, consultationRows(items)); err != nil {
		log.Error().Err(err).Msg("[consultation][handler] write csv")
	}
}
