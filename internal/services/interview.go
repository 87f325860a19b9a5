package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	log "github.com/sirupsen/logrus"

	"github.com/Vignesh-V27/prepgenie-app/internal/models"
)

var ErrMissingInputs = errors.New("missing inputs")

type InterviewService interface {
	GenerateQuestions(ctx context.Context, cc models.CandidateContext, resume *multipart.FileHeader) ([]string, error)
	GenerateMoreQuestions(ctx context.Context, req models.MoreQuestionsRequest) ([]string, error)
	EvaluateAnswers(ctx context.Context, pairs []models.QAPair) ([]models.AnswerEvaluation, error)
}

type interviewService struct {
	completion            CompletionService
	storage               StorageService
	parser                DocumentParserService
	promptBuilder         *PromptBuilder
	evaluationConcurrency int
}

func NewInterviewService(
	completion CompletionService,
	storage StorageService,
	parser DocumentParserService,
	evaluationConcurrency int,
) InterviewService {
	return &interviewService{
		completion:            completion,
		storage:               storage,
		parser:                parser,
		promptBuilder:         NewPromptBuilder(),
		evaluationConcurrency: evaluationConcurrency,
	}
}

// GenerateQuestions builds the initial question set. resume may be nil.
func (s *interviewService) GenerateQuestions(ctx context.Context, cc models.CandidateContext, resume *multipart.FileHeader) ([]string, error) {
	if resume != nil {
		text, err := s.extractResume(resume)
		if err != nil {
			return nil, err
		}
		cc.ResumeText = text
	}

	content, err := s.completion.Complete(ctx, CompletionRequest{
		SystemMessage: questionsSystemMessage,
		UserPrompt:    s.promptBuilder.BuildQuestionsPrompt(cc),
		Sampling:      questionSampling,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	return SplitQuestions(content), nil
}

func (s *interviewService) extractResume(resume *multipart.FileHeader) (string, error) {
	kind, err := DetectKind(resume.Filename)
	if err != nil {
		return "", err
	}

	tmp, err := s.storage.SaveTemp(resume, kind)
	if err != nil {
		return "", err
	}
	defer tmp.Release()

	text, err := s.parser.ExtractText(tmp.Path, kind)
	if err != nil {
		return "", fmt.Errorf("failed to extract resume text: %w", err)
	}

	log.WithFields(log.Fields{
		"kind":  kind,
		"chars": len(text),
	}).Debug("resume extracted")

	return text, nil
}

// GenerateMoreQuestions caps resume and job description before checking
// that every input is present.
func (s *interviewService) GenerateMoreQuestions(ctx context.Context, req models.MoreQuestionsRequest) ([]string, error) {
	req.Resume = TruncateChars(req.Resume, maxResumeChars)
	req.JobDescription = TruncateChars(req.JobDescription, maxJobDescriptionChars)

	if req.Type == "" || req.Resume == "" || req.JobDescription == "" {
		return nil, ErrMissingInputs
	}

	content, err := s.completion.Complete(ctx, CompletionRequest{
		SystemMessage: moreQuestionsSystemMessage,
		UserPrompt:    s.promptBuilder.BuildMoreQuestionsPrompt(req),
		Sampling:      moreQuestionsSampling,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate more questions: %w", err)
	}

	return SplitQuestions(content), nil
}

// EvaluateAnswers is all-or-nothing: one failed pair fails the batch.
func (s *interviewService) EvaluateAnswers(ctx context.Context, pairs []models.QAPair) ([]models.AnswerEvaluation, error) {
	evaluations, err := runOrdered(ctx, len(pairs), s.evaluationConcurrency, func(ctx context.Context, i int) (models.AnswerEvaluation, error) {
		pair := pairs[i]
		content, err := s.completion.Complete(ctx, CompletionRequest{
			SystemMessage: evaluationSystemMessage,
			UserPrompt:    s.promptBuilder.BuildEvaluationPrompt(pair),
			Sampling:      evaluationSampling,
		})
		if err != nil {
			return models.AnswerEvaluation{}, fmt.Errorf("failed to evaluate answer %d: %w", i, err)
		}

		return models.AnswerEvaluation{
			Question:   pair.Question,
			Answer:     pair.Answer,
			Evaluation: content,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return evaluations, nil
}
