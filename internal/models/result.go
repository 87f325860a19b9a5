package models

import "time"

type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

type MoreQuestionsResponse struct {
	NewQuestions []string `json:"newQuestions"`
}

type EvaluationsResponse struct {
	Evaluations []AnswerEvaluation `json:"evaluations"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status   string    `json:"status"`
	Provider string    `json:"provider"`
	Time     time.Time `json:"time"`
}
