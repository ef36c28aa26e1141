package config

import (
	"github.com/edulytics/edulytics-be/internal/analytics"
	"github.com/edulytics/edulytics-be/internal/delivery/http/handler"
	"github.com/edulytics/edulytics-be/internal/delivery/http/middleware"
	"github.com/edulytics/edulytics-be/internal/delivery/http/repository"
	"github.com/edulytics/edulytics-be/internal/delivery/http/route"
	"github.com/edulytics/edulytics-be/internal/delivery/http/usecase"
	"github.com/edulytics/edulytics-be/internal/pkg/llm"
	"github.com/edulytics/edulytics-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	apiKey := ""
	model := ""
	baseURL := ""
	promptTemplate := ""
	if config.Config != nil {
		apiKey = config.Config.GetString("llm.groq.api_key")
		model = config.Config.GetString("llm.groq.model")
		baseURL = config.Config.GetString("llm.groq.base_url")
		promptTemplate = config.Config.GetString("llm.groq.question_template")
	}

	groq := llm.NewGroqClient(apiKey, model, baseURL)
	learningRepo := repository.NewLearningRepository(config.DB)
	learningUsecase := usecase.NewLearningUsecase(usecase.LearningConfig{
		DB:             config.DB,
		Groq:           groq,
		PromptTemplate: promptTemplate,
		Repository:     learningRepo,
		Registry:       analytics.NewRegistry(),
		Config:         config.Config,
		Log:            config.Log,
	})
	learningHandler := handler.NewLearningHandler(config.Validator, config.Log, learningUsecase)

	route.Setup(&route.RouteConfig{
		Api:             config.Api,
		Middleware:      mid,
		LearningHandler: learningHandler,
	})

}
