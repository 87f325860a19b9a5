package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"github.com/Vignesh-V27/prepgenie-app/internal/handlers"
	"github.com/Vignesh-V27/prepgenie-app/internal/middleware"
	"github.com/Vignesh-V27/prepgenie-app/internal/models"
	"github.com/Vignesh-V27/prepgenie-app/internal/services"
)

const livenessMessage = "PrepGenie Backend is Running!"

const (
	routeGenerateQuestions     = "/generate-questions"
	routeGenerateMoreQuestions = "/generate-more-questions"
	routeEvaluateAnswers       = "/evaluate-answers"
)

type Options struct {
	AllowedOrigins string
	BodyLimit      int64
	Provider       string
}

// New builds the Fiber app with middleware and every route registered.
func New(opts Options, interview services.InterviewService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "PrepGenie Backend",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    int(opts.BodyLimit),
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	questionHandler := handlers.NewQuestionHandler(interview)
	evaluationHandler := handlers.NewEvaluationHandler(interview)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(livenessMessage)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status:   "healthy",
			Provider: opts.Provider,
			Time:     time.Now(),
		})
	})

	app.Post(routeGenerateQuestions, questionHandler.HandleGenerateQuestions)
	app.Post(routeGenerateMoreQuestions, questionHandler.HandleGenerateMoreQuestions)
	app.Post(routeEvaluateAnswers, evaluationHandler.HandleEvaluateAnswers)

	return app
}

// errorHandler catches anything a handler returned or panicked with. Only
// fiber errors keep their own message; everything else is collapsed to the
// route's generic failure body.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := genericFailure(c.Path())

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.WithError(err).WithFields(log.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("unhandled error")
	}

	return c.Status(code).JSON(models.ErrorResponse{Error: message})
}

func genericFailure(path string) string {
	if strings.TrimRight(path, "/") == routeEvaluateAnswers {
		return handlers.MsgEvaluationFailed
	}
	return handlers.MsgInternalError
}
