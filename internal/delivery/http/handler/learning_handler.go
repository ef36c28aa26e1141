package handler

import (
	"github.com/edulytics/edulytics-be/internal/delivery/http/domain"
	"github.com/edulytics/edulytics-be/internal/delivery/http/entity"
	"github.com/edulytics/edulytics-be/internal/delivery/http/usecase"
	"github.com/edulytics/edulytics-be/internal/pkg/response"
	"github.com/edulytics/edulytics-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	LearningHandler interface {
		StartSession(ctx *fiber.Ctx) error
		GenerateGame(ctx *fiber.Ctx) error
		SubmitAnswer(ctx *fiber.Ctx) error
		StudentAnalytics(ctx *fiber.Ctx) error
		TeacherAnalytics(ctx *fiber.Ctx) error
		AdminAnalytics(ctx *fiber.Ctx) error
		StudentFeedback(ctx *fiber.Ctx) error
		ExportSessionCSV(ctx *fiber.Ctx) error
		AdminReport(ctx *fiber.Ctx) error
		ChatWithMentor(ctx *fiber.Ctx) error
		GetMentorHistory(ctx *fiber.Ctx) error
	}

	learningHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.LearningUsecase
	}
)

func NewLearningHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.LearningUsecase) LearningHandler {
	return &learningHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /sessions
func (h *learningHandler) StartSession(ctx *fiber.Ctx) error {
	var req entity.StartSessionRequest
	if len(ctx.Body()) > 0 {
		if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
			return response.NewFailed(domain.LEARNING_SESSION_START_FAILED, err, h.logger).Send(ctx)
		}
	}

	result, err := h.usecase.StartSession(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.LEARNING_SESSION_START_FAILED, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LEARNING_SESSION_START_SUCCESS, result, nil).Send(ctx)
}

// POST /sessions/:session_id/game
func (h *learningHandler) GenerateGame(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.LEARNING_GAME_GENERATE_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	var req entity.GenerateGameRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.LEARNING_GAME_GENERATE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.GenerateGame(ctx.UserContext(), sessionID, req)
	if err != nil {
		return response.NewFailed(domain.LEARNING_GAME_GENERATE_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LEARNING_GAME_GENERATE_SUCCESS, result, nil).Send(ctx)
}

// POST /sessions/:session_id/answers
func (h *learningHandler) SubmitAnswer(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.LEARNING_SUBMIT_ANSWER_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	var req entity.SubmitAnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.LEARNING_SUBMIT_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitAnswer(ctx.UserContext(), sessionID, req)
	if err != nil {
		return response.NewFailed(domain.LEARNING_SUBMIT_ANSWER_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LEARNING_SUBMIT_ANSWER_SUCCESS, result, nil).Send(ctx)
}

// GET /analytics/student/:session_id
func (h *learningHandler) StudentAnalytics(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.LEARNING_STUDENT_VIEW_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.StudentAnalytics(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.LEARNING_STUDENT_VIEW_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LEARNING_STUDENT_VIEW_SUCCESS, result, nil).Send(ctx)
}

// GET /analytics/teacher/:session_id
func (h *learningHandler) TeacherAnalytics(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.LEARNING_TEACHER_VIEW_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.TeacherAnalytics(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.LEARNING_TEACHER_VIEW_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LEARNING_TEACHER_VIEW_SUCCESS, result, nil).Send(ctx)
}

// GET /analytics/admin
func (h *learningHandler) AdminAnalytics(ctx *fiber.Ctx) error {
	result, err := h.usecase.AdminAnalytics(ctx.UserContext())
	if err != nil {
		return response.NewFailed(domain.LEARNING_ADMIN_VIEW_FAILED, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LEARNING_ADMIN_VIEW_SUCCESS, result, nil).Send(ctx)
}

// GET /analytics/student/:session_id/feedback
func (h *learningHandler) StudentFeedback(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.LEARNING_FEEDBACK_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.StudentFeedback(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.LEARNING_FEEDBACK_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LEARNING_FEEDBACK_SUCCESS, result, nil).Send(ctx)
}

// GET /export/sessions/:session_id/csv
func (h *learningHandler) ExportSessionCSV(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.LEARNING_EXPORT_CSV_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	data, err := h.usecase.ExportSessionCSV(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.LEARNING_EXPORT_CSV_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Attachment("class_analytics.csv")
	return ctx.Send(data)
}

// GET /export/admin/report
func (h *learningHandler) AdminReport(ctx *fiber.Ctx) error {
	result, err := h.usecase.AdminReport(ctx.UserContext())
	if err != nil {
		return response.NewFailed(domain.LEARNING_ADMIN_REPORT_FAILED, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LEARNING_ADMIN_REPORT_SUCCESS, result, nil).Send(ctx)
}

// POST /mentor/sessions/:session_id
func (h *learningHandler) ChatWithMentor(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.LEARNING_MENTOR_CHAT_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	var req entity.ChatRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.LEARNING_MENTOR_CHAT_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.ChatWithMentor(ctx.UserContext(), sessionID, req.Message)
	if err != nil {
		return response.NewFailed(domain.LEARNING_MENTOR_CHAT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LEARNING_MENTOR_CHAT_SUCCESS, result, nil).Send(ctx)
}

// GET /mentor/sessions/:session_id/history
func (h *learningHandler) GetMentorHistory(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.LEARNING_MENTOR_HISTORY_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.GetMentorHistory(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.LEARNING_MENTOR_HISTORY_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LEARNING_MENTOR_HISTORY_SUCCESS, result, nil).Send(ctx)
}
