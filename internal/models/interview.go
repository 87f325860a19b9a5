package models

// CandidateContext is the job-application context for one question
// generation request. ResumeText is derived from the uploaded file and may
// be empty.
type CandidateContext struct {
	JobTitle       string
	Company        string
	Experience     string
	JobDescription string
	ResumeText     string
}

type MoreQuestionsRequest struct {
	Type           string
	Resume         string
	JobDescription string
}

type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type EvaluateAnswersRequest struct {
	QAPairs []QAPair `json:"qaPairs"`
}

type AnswerEvaluation struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Evaluation string `json:"evaluation"`
}
