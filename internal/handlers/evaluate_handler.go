package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Vignesh-V27/prepgenie-app/internal/models"
	"github.com/Vignesh-V27/prepgenie-app/internal/services"
)

type EvaluationHandler struct {
	interview services.InterviewService
}

func NewEvaluationHandler(interview services.InterviewService) *EvaluationHandler {
	return &EvaluationHandler{
		interview: interview,
	}
}

// HandleEvaluateAnswers handles POST /evaluate-answers
func (h *EvaluationHandler) HandleEvaluateAnswers(c *fiber.Ctx) error {
	var req models.EvaluateAnswersRequest

	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fmt.Errorf("invalid evaluation payload: %w", err), evaluationFailure)
	}

	evaluations, err := h.interview.EvaluateAnswers(c.UserContext(), req.QAPairs)
	if err != nil {
		return writeError(c, err, evaluationFailure)
	}

	return c.JSON(models.EvaluationsResponse{Evaluations: evaluations})
}
