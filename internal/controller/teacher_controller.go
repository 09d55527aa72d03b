package controller

import (
	"studiq-be/internal/dto"
	"studiq-be/internal/pkg/serverutils"
	"studiq-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITeacherController interface {
	RegisterRoutes(r fiber.Router)
}

type teacherController struct {
	service service.ITeacherService
}

func NewTeacherController(service service.ITeacherService) ITeacherController {
	return &teacherController{service: service}
}

func (c *teacherController) RegisterRoutes(r fiber.Router) {
	// Teacher-owned authoring surface
	h := r.Group("/teacher", serverutils.JwtMiddleware, serverutils.RequireRole("teacher", "admin"))
	h.Post("/assessments", c.CreateAssessment)
	h.Get("/assessments", c.ListAssessments)
	h.Delete("/assessments/:id", c.DeleteAssessment)
	h.Get("/assessments/:id/submissions", c.ListSubmissions)
	h.Post("/syllabi", c.CreateSyllabus)
	h.Get("/syllabi", c.ListSyllabi)
	h.Put("/syllabi/:id", c.UpdateSyllabus)
	h.Delete("/syllabi/:id", c.DeleteSyllabus)

	// Student-facing assessment surface
	s := r.Group("/assessments", serverutils.JwtMiddleware)
	s.Get("/:id", c.GetAssessment)
	s.Post("/:id/submit", c.SubmitAssessment)
}

func (c *teacherController) CreateAssessment(ctx *fiber.Ctx) error {
	teacherId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	var req dto.CreateAssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateAssessment(ctx.Context(), teacherId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Assessment created", res))
}

func (c *teacherController) ListAssessments(ctx *fiber.Ctx) error {
	teacherId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	res, err := c.service.ListAssessments(ctx.Context(), teacherId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Assessments", res))
}

func (c *teacherController) GetAssessment(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid assessment id"))
	}

	res, err := c.service.GetAssessment(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Assessment", res))
}

func (c *teacherController) DeleteAssessment(ctx *fiber.Ctx) error {
	teacherId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid assessment id"))
	}

	if err := c.service.DeleteAssessment(ctx.Context(), teacherId, id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Assessment deleted", nil))
}

func (c *teacherController) SubmitAssessment(ctx *fiber.Ctx) error {
	studentId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid assessment id"))
	}

	var req dto.SubmitAssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SubmitAssessment(ctx.Context(), studentId, id, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Assessment submitted", res))
}

func (c *teacherController) ListSubmissions(ctx *fiber.Ctx) error {
	teacherId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid assessment id"))
	}

	res, err := c.service.ListSubmissions(ctx.Context(), teacherId, id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Submissions", res))
}

func (c *teacherController) CreateSyllabus(ctx *fiber.Ctx) error {
	teacherId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	var req dto.CreateSyllabusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateSyllabus(ctx.Context(), teacherId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Syllabus created", res))
}

func (c *teacherController) ListSyllabi(ctx *fiber.Ctx) error {
	teacherId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	res, err := c.service.ListSyllabi(ctx.Context(), teacherId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Syllabi", res))
}

func (c *teacherController) UpdateSyllabus(ctx *fiber.Ctx) error {
	teacherId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid syllabus id"))
	}

	var req dto.CreateSyllabusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdateSyllabus(ctx.Context(), teacherId, id, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Syllabus updated", res))
}

func (c *teacherController) DeleteSyllabus(ctx *fiber.Ctx) error {
	teacherId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid syllabus id"))
	}

	if err := c.service.DeleteSyllabus(ctx.Context(), teacherId, id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Syllabus deleted", nil))
}
