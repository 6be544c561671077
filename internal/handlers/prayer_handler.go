package handlers

import (
	"errors"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gracechapel/church-backend/internal/dto"
	"github.com/gracechapel/church-backend/internal/middleware"
	"github.com/gracechapel/church-backend/internal/models"
	"github.com/gracechapel/church-backend/internal/services"
)

type PrayerHandler struct {
	prayers *services.PrayerService
	reports *services.ReportService
}

func NewPrayerHandler(prayers *services.PrayerService, reports *services.ReportService) *PrayerHandler {
	return &PrayerHandler{prayers: prayers, reports: reports}
}

// Submit handles POST /api/prayers — the public submission endpoint.
func (h *PrayerHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitPrayerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	prayer, err := h.prayers.Submit(&services.SubmitPrayerInput{
		Name:         req.Name,
		Email:        req.Email,
		RequestText:  req.PrayerRequest,
		IsPublic:     req.IsPublic,
		ShowName:     req.ShowName,
		MemberID:     middleware.OptionalMemberID(c),
		CaptchaToken: req.TurnstileToken,
		Honeypot:     req.Honeypot,
		StartedAt:    req.StartedAt,
		RemoteIP:     c.IP(),
		UserAgent:    c.Get("User-Agent"),
	})
	if err != nil {
		return submissionError(c, err)
	}

	message := "Your prayer request was submitted successfully."
	if prayer.Status == models.StatusQuarantine {
		message = "Your prayer request was submitted and is under automatic review."
	}

	return c.JSON(fiber.Map{
		"success": true,
		"status":  prayer.Status,
		"message": message,
		"prayer":  prayer,
	})
}

// Report handles POST /api/prayers/report.
func (h *PrayerHandler) Report(c *fiber.Ctx) error {
	var req dto.ReportPrayerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.PrayerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "prayer_id is required",
		})
	}
	prayerID, err := uuid.Parse(req.PrayerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid prayer_id",
		})
	}

	result, err := h.reports.Report(prayerID, req.TurnstileToken, c.IP())
	if err != nil {
		return submissionError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Thank you, the request has been flagged for review.",
		"reports": result.Reports,
		"hidden":  result.Hidden,
	})
}

// Wall handles GET /api/prayers — the public prayer wall.
func (h *PrayerHandler) Wall(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	prayers, total, err := h.prayers.Wall(page, limit)
	if err != nil {
		return serverError(c, "failed to load prayer wall", err)
	}

	return c.JSON(fiber.Map{
		"prayers": prayers,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// MyPrayers handles GET /api/members/me/prayers (JWT required).
func (h *PrayerHandler) MyPrayers(c *fiber.Ctx) error {
	memberID, err := middleware.GetMemberID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	prayers, total, err := h.prayers.MemberPrayers(memberID, page, limit)
	if err != nil {
		return serverError(c, "failed to load member prayers", err)
	}

	return c.JSON(fiber.Map{
		"prayers": prayers,
		"total":   total,
	})
}

// submissionError maps pipeline sentinel errors onto HTTP statuses. Unknown
// errors are persistence or infrastructure failures and stay generic.
func submissionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrBotSuspected),
		errors.Is(err, services.ErrTextTooShort),
		errors.Is(err, services.ErrDuplicateReport):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrRateLimited),
		errors.Is(err, services.ErrReportRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrPrayerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return serverError(c, "prayer pipeline failed", err)
	}
}

func serverError(c *fiber.Ctx, action string, err error) error {
	slog.Error(action, "path", c.Path(), "error", err)
	sentry.CaptureException(err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Something went wrong, please try again.",
	})
}
