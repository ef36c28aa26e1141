package route

import (
	"github.com/edulytics/edulytics-be/internal/delivery/http/handler"
	"github.com/edulytics/edulytics-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupLearningRoute(api *fiber.App, handler handler.LearningHandler, m *middleware.Middleware) {
	sessionRouter := api.Group("/sessions")
	{
		sessionRouter.Post("/", handler.StartSession)
		sessionRouter.Post("/:session_id/game", handler.GenerateGame)
		sessionRouter.Post("/:session_id/answers", handler.SubmitAnswer)
	}

	analyticsRouter := api.Group("/analytics")
	{
		analyticsRouter.Get("/student/:session_id", handler.StudentAnalytics)
		analyticsRouter.Get("/student/:session_id/feedback", handler.StudentFeedback)
		analyticsRouter.Get("/teacher/:session_id", handler.TeacherAnalytics)
		analyticsRouter.Get("/admin", handler.AdminAnalytics)
	}

	exportRouter := api.Group("/export")
	{
		exportRouter.Get("/sessions/:session_id/csv", handler.ExportSessionCSV)
		exportRouter.Get("/admin/report", handler.AdminReport)
	}

	mentorRouter := api.Group("/mentor")
	{
		mentorRouter.Post("/sessions/:session_id", handler.ChatWithMentor)
		mentorRouter.Get("/sessions/:session_id/history", handler.GetMentorHistory)
	}
}
