package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazation/praktikaBack/internal/dto"
	"github.com/mazation/praktikaBack/internal/middleware"
	"github.com/mazation/praktikaBack/internal/service"
	"github.com/rs/zerolog/log"
)

type ResultController struct {
	resultService service.ResultService
}

func NewResultController(resultService service.ResultService) *ResultController {
	return &ResultController{resultService: resultService}
}

// SubmitResult godoc
// @Summary Submit a scored attempt
// @Description Records one finished attempt for the caller against a test. Repeat submissions create new rows.
// @Tags Results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param result body dto.SubmitResultRequest true "Test id and score"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or score out of range"
// @Failure 404 {object} dto.ErrorResponse "Unknown test"
// @Router /results [post]
func (c *ResultController) SubmitResult(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}

	var req dto.SubmitResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitResult: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.resultService.Record(principal, req)
	if err != nil {
		log.Warn().Err(err).Uint("userID", principal.ID).Uint("testID", req.TestID).Msg("SubmitResult: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// TeacherReport godoc
// @Summary Aggregated results for authored tests
// @Description For every test the caller authored, lists each recorded result with the student's name. Teachers only.
// @Tags Results
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TeacherReportResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [get]
func (c *ResultController) TeacherReport(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}

	resp, err := c.resultService.TeacherReport(principal)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
