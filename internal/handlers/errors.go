package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/Vignesh-V27/prepgenie-app/internal/models"
	"github.com/Vignesh-V27/prepgenie-app/internal/services"
)

const (
	MsgUnsupportedFormat = "Unsupported file format. Please upload PDF or DOCX."
	MsgMissingInputs     = "Missing inputs"
	MsgInternalError     = "Internal Server Error"
	MsgEvaluationFailed  = "Evaluation failed"
)

// failureMessages are the client-facing bodies for one endpoint. Upstream
// and internal detail is only ever logged.
type failureMessages struct {
	upstream string
	internal string
}

var (
	questionsFailure = failureMessages{
		upstream: "Failed to generate questions",
		internal: MsgInternalError,
	}
	moreQuestionsFailure = failureMessages{
		upstream: "Failed to generate more questions",
		internal: MsgInternalError,
	}
	evaluationFailure = failureMessages{
		upstream: "Answer evaluation failed",
		internal: MsgEvaluationFailed,
	}
)

// writeError is the single place where pipeline errors become HTTP
// statuses.
func writeError(c *fiber.Ctx, err error, msgs failureMessages) error {
	entry := log.WithError(err).WithFields(log.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	})

	var upstream *services.UpstreamError

	switch {
	case errors.Is(err, services.ErrUnsupportedFormat):
		entry.Warn("rejected resume upload")
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: MsgUnsupportedFormat})

	case errors.Is(err, services.ErrMissingInputs):
		entry.Warn("missing inputs for type, resume or job description")
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: MsgMissingInputs})

	case errors.As(err, &upstream):
		entry.WithFields(log.Fields{
			"provider":      upstream.Provider,
			"status":        upstream.StatusCode,
			"upstream_body": upstream.Body,
		}).Error("completion API error")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: msgs.upstream})

	default:
		entry.Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: msgs.internal})
	}
}
