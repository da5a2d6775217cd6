package analysis

import (
	"upsolve-tracker/core/apperror"
	"upsolve-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for handle analysis.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the analysis routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/analysis/:handle", h.HandleAnalyze)
}

// HandleAnalyze returns the upsolve analysis of a handle.
// @Summary Analyze Handle
// @Description Per rated contest, problems solved during vs after the contest, plus every upsolved problem newest first.
// @Tags analysis
// @Produce json
// @Param handle path string true "Codeforces handle"
// @Success 200 {object} Report
// @Failure 503 {object} map[string]string "Judge Unavailable"
// @Router /analysis/{handle} [get]
func (h *Handler) HandleAnalyze(c *fiber.Ctx) error {
	handle := c.Params("handle")

	report, err := h.service.Analyze(c.Context(), handle)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Analysis failed", zap.String("handle", handle), zap.Error(err))
		return apperror.Respond(c, err)
	}
	return c.JSON(report)
}
