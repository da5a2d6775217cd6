package upsolve

import (
	"upsolve-tracker/core/apperror"
	"upsolve-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the upsolve queue.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the upsolve routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/students/:userID")
	group.Get("/participated-contests", h.HandleParticipatedContests)
	group.Get("/contests", h.HandleMyContests)
	group.Get("/upsolve-queue", h.HandleQueue)
	group.Get("/stats", h.HandleStats)
	group.Post("/bulk-upsolve", h.HandleBulkUpsolve)
	group.Post("/smart-upsolve", h.HandleRecommend)
	group.Post("/add-personal-contest", h.HandleAddPersonalContest)
	group.Put("/mark-solved/:statusID", h.HandleMarkSolved)
	group.Post("/verify-problem/:statusID", h.HandleVerify)
	group.Post("/verify-queue", h.HandleVerifyQueue)
}

// RecommendRequest is the body of POST /students/{userID}/smart-upsolve.
type RecommendRequest struct {
	ContestID uint `json:"contestId"`
	Count     int  `json:"count"`
}

// PersonalContestRequest is the body of POST /students/{userID}/add-personal-contest.
type PersonalContestRequest struct {
	ContestID int `json:"cfContestId"`
	Count     int `json:"count"`
}

// QueueResponse is the upsolve queue listing.
type QueueResponse struct {
	Total int         `json:"total"`
	Queue []QueueItem `json:"queue"`
}

func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// fail logs server side failures and writes the mapped error response.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	if apperror.Status(err) >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return apperror.Respond(c, err)
}

// HandleParticipatedContests lists recent rated contests.
// @Summary Participated Contests
// @Description Last 15 rated contests of the student with rating change.
// @Tags upsolve
// @Produce json
// @Param userID path int true "Student ID"
// @Success 200 {array} ParticipatedContest
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Judge Unavailable"
// @Router /students/{userID}/participated-contests [get]
func (h *Handler) HandleParticipatedContests(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userID")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	out, err := h.service.ParticipatedContests(c.Context(), userID)
	if err != nil {
		return h.fail(c, "Participated contests failed", err)
	}
	return c.JSON(out)
}

// HandleMyContests lists the student's internal contests.
// @Summary My Contests
// @Tags upsolve
// @Produce json
// @Param userID path int true "Student ID"
// @Success 200 {array} Contest
// @Router /students/{userID}/contests [get]
func (h *Handler) HandleMyContests(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userID")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	out, err := h.service.MyContests(c.Context(), userID)
	if err != nil {
		return h.fail(c, "My contests failed", err)
	}
	return c.JSON(out)
}

// HandleQueue lists the pending upsolve queue.
// @Summary Upsolve Queue
// @Tags upsolve
// @Produce json
// @Param userID path int true "Student ID"
// @Success 200 {object} QueueResponse
// @Router /students/{userID}/upsolve-queue [get]
func (h *Handler) HandleQueue(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userID")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	items, err := h.service.Queue(c.Context(), userID)
	if err != nil {
		return h.fail(c, "Queue listing failed", err)
	}
	if items == nil {
		items = []QueueItem{}
	}
	return c.JSON(QueueResponse{Total: len(items), Queue: items})
}

// HandleStats returns queue statistics.
// @Summary Queue Stats
// @Tags upsolve
// @Produce json
// @Param userID path int true "Student ID"
// @Success 200 {object} Stats
// @Router /students/{userID}/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userID")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	st, err := h.service.Stats(c.Context(), userID)
	if err != nil {
		return h.fail(c, "Stats failed", err)
	}
	return c.JSON(st)
}

// HandleBulkUpsolve reconciles the queue against the rating history.
// @Summary Bulk Upsolve
// @Description Reconcile the student's queue with the judge. Pass dryRun=true to only compute the plan.
// @Tags upsolve
// @Produce json
// @Param userID path int true "Student ID"
// @Param dryRun query bool false "Compute without writing"
// @Success 200 {object} SyncReport
// @Failure 400 {object} map[string]string "Handle Required"
// @Router /students/{userID}/bulk-upsolve [post]
func (h *Handler) HandleBulkUpsolve(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userID")
	if !ok {
		return badRequest(c, "invalid user id")
	}

	dryRun := c.QueryBool("dryRun", false)
	plan, res, err := h.service.Reconcile(c.Context(), userID, dryRun)
	if err != nil {
		return h.fail(c, "Bulk upsolve failed", err)
	}
	return c.JSON(SyncReport{Summary: plan.Summary, Applied: res})
}

// HandleRecommend queues unsolved problems of an internal contest.
// @Summary Smart Upsolve
// @Tags upsolve
// @Accept json
// @Produce json
// @Param userID path int true "Student ID"
// @Param body body RecommendRequest true "Contest and count (1-3)"
// @Success 200 {object} AddResult
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /students/{userID}/smart-upsolve [post]
func (h *Handler) HandleRecommend(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userID")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	var req RecommendRequest
	if err := c.BodyParser(&req); err != nil || req.ContestID == 0 {
		return badRequest(c, "contestId required")
	}

	out, err := h.service.Recommend(c.Context(), userID, req.ContestID, req.Count)
	if err != nil {
		return h.fail(c, "Smart upsolve failed", err)
	}
	return c.JSON(out)
}

// HandleAddPersonalContest mirrors a judge contest and queues its problems.
// @Summary Add Personal Contest
// @Tags upsolve
// @Accept json
// @Produce json
// @Param userID path int true "Student ID"
// @Param body body PersonalContestRequest true "Judge contest id and count (1-5)"
// @Success 200 {object} AddResult
// @Failure 404 {object} map[string]string "Contest Not Found"
// @Router /students/{userID}/add-personal-contest [post]
func (h *Handler) HandleAddPersonalContest(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userID")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	var req PersonalContestRequest
	if err := c.BodyParser(&req); err != nil || req.ContestID <= 0 {
		return badRequest(c, "cfContestId required")
	}

	out, err := h.service.AddPersonalContest(c.Context(), userID, req.ContestID, req.Count)
	if err != nil {
		return h.fail(c, "Add personal contest failed", err)
	}
	return c.JSON(out)
}

// HandleMarkSolved closes a queue entry.
// @Summary Mark Solved
// @Tags upsolve
// @Produce json
// @Param userID path int true "Student ID"
// @Param statusID path int true "Queue entry ID"
// @Success 200 {object} ProblemStatus
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /students/{userID}/mark-solved/{statusID} [put]
func (h *Handler) HandleMarkSolved(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userID")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	statusID, ok := paramID(c, "statusID")
	if !ok {
		return badRequest(c, "invalid status id")
	}

	entry, err := h.service.MarkSolved(c.Context(), userID, statusID)
	if err != nil {
		return h.fail(c, "Mark solved failed", err)
	}
	return c.JSON(entry)
}

// HandleVerify verifies one queue entry against the submission log.
// @Summary Verify Problem
// @Tags upsolve
// @Produce json
// @Param userID path int true "Student ID"
// @Param statusID path int true "Queue entry ID"
// @Success 200 {object} VerifyResult
// @Failure 503 {object} map[string]string "Judge Unavailable"
// @Router /students/{userID}/verify-problem/{statusID} [post]
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userID")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	statusID, ok := paramID(c, "statusID")
	if !ok {
		return badRequest(c, "invalid status id")
	}

	out, err := h.service.Verify(c.Context(), userID, statusID)
	if err != nil {
		return h.fail(c, "Verify failed", err)
	}
	return c.JSON(out)
}

// HandleVerifyQueue verifies every pending entry.
// @Summary Verify Queue
// @Tags upsolve
// @Produce json
// @Param userID path int true "Student ID"
// @Success 200 {object} VerifyQueueResult
// @Router /students/{userID}/verify-queue [post]
func (h *Handler) HandleVerifyQueue(c *fiber.Ctx) error {
	userID, ok := paramID(c, "userID")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	out, err := h.service.VerifyQueue(c.Context(), userID)
	if err != nil {
		return h.fail(c, "Verify queue failed", err)
	}
	return c.JSON(out)
}
