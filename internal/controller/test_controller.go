package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mazation/praktikaBack/internal/dto"
	"github.com/mazation/praktikaBack/internal/middleware"
	"github.com/mazation/praktikaBack/internal/quiz"
	"github.com/mazation/praktikaBack/internal/service"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	testService service.TestService
}

func NewTestController(testService service.TestService) *TestController {
	return &TestController{testService: testService}
}

// Dashboard godoc
// @Summary List tests visible to the caller
// @Description Teachers get only the tests they authored; students get every test.
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *TestController) Dashboard(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}

	resp, err := c.testService.Dashboard(principal)
	if err != nil {
		log.Error().Err(err).Uint("userID", principal.ID).Msg("Dashboard: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateTest godoc
// @Summary Upload a new test definition
// @Description Teacher uploads a semicolon-delimited definition file (base64). The max score is snapshotted from its question count.
// @Tags Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test body dto.CreateTestRequest true "Test title, base64 file, optional max time"
// @Success 201 {object} dto.CreateTestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body, bad base64, or malformed definition"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Failure 500 {object} dto.ErrorResponse "Storage or database failure"
// @Router /tests/create [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}

	var req dto.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.testService.CreateTest(principal, req)
	if err != nil {
		// A definition that fails to decode at upload time is client input.
		var decodeErr *quiz.DecodeError
		if errors.As(err, &decodeErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("userID", principal.ID).Msg("CreateTest: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetTest godoc
// @Summary Fetch the question set of a test
// @Description Any authenticated caller may fetch any test's decoded questions by id.
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.GetTestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 422 {object} dto.ErrorResponse "Stored definition failed to decode"
// @Router /tests/{test_id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	testID, err := strconv.ParseUint(ctx.Param("test_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Test ID format"})
		return
	}

	resp, err := c.testService.GetTest(uint(testID))
	if err != nil {
		log.Warn().Err(err).Uint64("testID", testID).Msg("GetTest: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
