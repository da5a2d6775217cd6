package students

import (
	"upsolve-tracker/core/apperror"
	"upsolve-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for student profiles.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the student routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/students")
	group.Post("/", h.HandleCreate)
	group.Get("/:userID", h.HandleGet)
	group.Put("/:userID/handle", h.HandleUpdateHandle)
}

// CreateRequest is the body of POST /students.
type CreateRequest struct {
	Name   string `json:"name"`
	Handle string `json:"codeforcesHandle"`
}

// HandleRequest is the body of PUT /students/{userID}/handle.
type HandleRequest struct {
	Handle string `json:"codeforcesHandle"`
}

// HandleCreate creates a student.
// @Summary Create Student
// @Tags students
// @Accept json
// @Produce json
// @Param body body CreateRequest true "Student"
// @Success 201 {object} Student
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /students [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	st, err := h.service.Create(c.Context(), req.Name, req.Handle)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Create student failed", zap.Error(err))
		return apperror.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

// HandleGet returns a student.
// @Summary Get Student
// @Tags students
// @Produce json
// @Param userID path int true "Student ID"
// @Success 200 {object} Student
// @Failure 404 {object} map[string]string "Not Found"
// @Router /students/{userID} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userID")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}

	st, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(st)
}

// HandleUpdateHandle sets the student's judge handle.
// @Summary Update Codeforces Handle
// @Tags students
// @Accept json
// @Produce json
// @Param userID path int true "Student ID"
// @Param body body HandleRequest true "Handle"
// @Success 200 {object} Student
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /students/{userID}/handle [put]
func (h *Handler) HandleUpdateHandle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userID")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}
	var req HandleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	st, err := h.service.UpdateHandle(c.Context(), uint(id), req.Handle)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Update handle failed", zap.Error(err))
		return apperror.Respond(c, err)
	}
	return c.JSON(st)
}
