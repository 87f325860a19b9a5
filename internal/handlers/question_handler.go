package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/Vignesh-V27/prepgenie-app/internal/models"
	"github.com/Vignesh-V27/prepgenie-app/internal/services"
)

type QuestionHandler struct {
	interview services.InterviewService
}

func NewQuestionHandler(interview services.InterviewService) *QuestionHandler {
	return &QuestionHandler{
		interview: interview,
	}
}

// HandleGenerateQuestions handles POST /generate-questions
func (h *QuestionHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	cc := models.CandidateContext{
		JobTitle:       c.FormValue("jobTitle"),
		Company:        c.FormValue("company"),
		Experience:     c.FormValue("experience"),
		JobDescription: c.FormValue("jobDescription"),
	}

	resume, err := resumeUpload(c)
	if err != nil {
		return writeError(c, err, questionsFailure)
	}

	questions, err := h.interview.GenerateQuestions(c.UserContext(), cc, resume)
	if err != nil {
		return writeError(c, err, questionsFailure)
	}

	return c.JSON(models.QuestionsResponse{Questions: questions})
}

// HandleGenerateMoreQuestions handles POST /generate-more-questions
func (h *QuestionHandler) HandleGenerateMoreQuestions(c *fiber.Ctx) error {
	req := models.MoreQuestionsRequest{
		Type:           c.FormValue("type"),
		Resume:         c.FormValue("resume"),
		JobDescription: c.FormValue("jobDescription"),
	}

	questions, err := h.interview.GenerateMoreQuestions(c.UserContext(), req)
	if err != nil {
		return writeError(c, err, moreQuestionsFailure)
	}

	return c.JSON(models.MoreQuestionsResponse{NewQuestions: questions})
}

// resumeUpload returns the optional resume file, or nil when the request
// carries none.
func resumeUpload(c *fiber.Ctx) (*multipart.FileHeader, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read resume upload: %w", err)
	}

	if file.Filename == "" {
		return nil, nil
	}

	return file, nil
}
