package services

import (
	"fmt"

	"github.com/Vignesh-V27/prepgenie-app/internal/models"
)

const (
	questionsSystemMessage     = "You are an expert career coach."
	moreQuestionsSystemMessage = "You are a helpful interview coach."
	evaluationSystemMessage    = "You are a helpful AI interview coach."
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionsPrompt creates the prompt for the initial technical and
// behavioral question set.
func (pb *PromptBuilder) BuildQuestionsPrompt(cc models.CandidateContext) string {
	return fmt.Sprintf(`
You are an AI specialized in preparing customized job interview questions.

Given the following details:
- Job Title: %s
- Company: %s
- Experience Level: %s
- Job Description: %s
- Candidate Resume Content: %s

Generate 5 technical interview questions and 5 behavioral interview questions that would be likely asked for this position. 
Label them clearly as "Technical Questions" and "Behavioral Questions".
`,
		cc.JobTitle, cc.Company, cc.Experience, cc.JobDescription, cc.ResumeText)
}

// BuildMoreQuestionsPrompt expects resume and job description to be
// truncated already.
func (pb *PromptBuilder) BuildMoreQuestionsPrompt(req models.MoreQuestionsRequest) string {
	return fmt.Sprintf(`
You are an AI that generates high-quality interview questions.

Given the following candidate resume and job description:
Resume: %s
Job Description: %s

Generate 5 %s interview questions that are relevant, realistic, and personalized.
Return just the questions, one per line.
`,
		req.Resume, req.JobDescription, req.Type)
}

func (pb *PromptBuilder) BuildEvaluationPrompt(pair models.QAPair) string {
	return fmt.Sprintf(`
You are an AI interview coach. Evaluate the following candidate response:

Question: %s
Answer: %s

Provide:
- Constructive feedback
- Suggestions for improvement
- A score out of 10

Use this format:
Feedback: ...
Improvement: ...
Score: ...
`,
		pair.Question, pair.Answer)
}
