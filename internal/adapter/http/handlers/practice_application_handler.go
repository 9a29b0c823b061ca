package handlers

import (
	"errors"
	"net/http"

	"placement_service/internal/adapter/http/dto/request"
	"placement_service/internal/adapter/http/dto/response"
	"placement_service/internal/infrastructure/metrics"
	"placement_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PracticeApplicationHandler struct {
	usecase usecase.IPracticeApplicationUseCase
}

func NewPracticeApplicationHandler(uc usecase.IPracticeApplicationUseCase) *PracticeApplicationHandler {
	return &PracticeApplicationHandler{usecase: uc}
}

// Submit godoc
// @Summary      Submit a practice placement application
// @Description  Stores the application and, when payapp is configured, opens a payment request.
// @Tags         practice
// @Accept       json
// @Produce      json
// @Param        body  body      request.PracticeApplicationCreateRequest  true  "Application"
// @Success      201   {object}  response.PracticeSubmitResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /v1/practice [post]
func (h *PracticeApplicationHandler) Submit(c *gin.Context) {
	var req request.PracticeApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), req.ToEntity())
	if res.Application.ID != "" {
		metrics.Submissions.WithLabelValues("practice").Inc()
	}
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentRequestFailed) {
			log.Error().Err(err).Str("id", res.Application.ID).Msg("[practice][handler] stored without payment request")
		} else {
			log.Error().Err(err).Msg("[practice][handler] submit failed")
		}
		writeError(c, mapUseCaseError(err))
		return
	}

	c.JSON(http.StatusCreated, response.PracticeSubmitResponse{
		ID:            res.Application.ID,
		PaymentStatus: string(res.Application.PaymentStatus),
		PayURL:        res.PayURL,
	})
}

// List godoc
// @Summary      List practice applications
// @Tags         practice
// @Produce      json
// @Security     BearerAuth
// @Param        status     query  string  false  "Status or payment status"
// @Param        q          query  string  false  "Name or contact substring"
// @Param        page       query  int     false  "Page"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  response.ListResponse[response.PracticeApplicationResponse]
// @Failure      401  {object}  pkg.HTTPError
// @Router       /v1/practice [get]
func (h *PracticeApplicationHandler) List(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	filter := q.ToFilter()
	items, total, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("[practice][handler] list failed")
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(response.FromPracticeApplications(items), total, filter))
}

// Update godoc
// @Summary      Update a practice application
// @Tags         practice
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      request.PracticeApplicationUpdateRequest  true  "Patch"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /v1/practice [patch]
func (h *PracticeApplicationHandler) Update(c *gin.Context) {
	var req request.PracticeApplicationUpdateRequest
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
		log.Warn().Err(err).Str("id", req.ID).Msg("[practice][handler] update failed")
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.Envelope{Message: "updated", Data: response.FromPracticeApplication(updated)})
}

// Delete godoc
// @Summary      Delete practice applications
// @Tags         practice
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      request.DeleteRequest  true  "IDs"
// @Success      200   {object}  response.DeleteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /v1/practice [delete]
func (h *PracticeApplicationHandler) Delete(c *gin.Context) {
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
		log.Error().Err(err).Int("ids", len(req.IDs)).Msg("[practice][handler] delete failed")
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.DeleteResponse{Deleted: n})
}

// Export godoc
// @Summary      Export practice applications as CSV
// @Tags         practice
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {file}  file
// @Router       /v1/practice/export [get]
func (h *PracticeApplicationHandler) Export(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	items, _, err := h.usecase.List(c.Request.Context(), q.ToExportFilter())
	if err != nil {
		log.Error().Err(err).Msg("[practice][handler] export failed")
		writeError(c, mapUseCaseError(err))
		return
	}
	if err := writeCSV(c, "practice_applications", practiceCSVHeader, practiceRows(items)); err != nil {
		log.Error().Err(err).Msg("[practice][handler] write csv")
	}
}
