package ai

import (
	"fmt"
	"strings"
)

// jsonOnlyDirective is shared by every prompt so the model returns machine
// parseable output. Models still ignore it often enough that the recovery
// parser stays mandatory.
const jsonOnlyDirective = `You MUST respond with ONLY valid JSON.
Do NOT include markdown.
Do NOT include backticks.
Do NOT include the word "json".
Do NOT include explanations outside JSON.
Do NOT include any text before or after JSON.
If you fail to follow this, the system will break.`

// BuildCodePrompt renders the instruction block for evaluating a code submission.
func BuildCodePrompt(question, language, code string) string {
	builder := strings.Builder{}
	builder.WriteString("You are a strict technical coding interviewer.\n\n")
	builder.WriteString(jsonOnlyDirective)
	builder.WriteString("\n\nEvaluate the following solution.\n\nQuestion:\n")
	builder.WriteString(question)
	builder.WriteString("\n\nLanguage:\n")
	builder.WriteString(language)
	builder.WriteString("\n\nCode:\n")
	builder.WriteString(code)
	builder.WriteString("\n\nReturn EXACTLY this JSON format:\n\n")
	builder.WriteString(`{
  "score": 0,
  "correctness": "",
  "timeComplexity": "",
  "codeQuality": "",
  "suggestions": []
}`)
	builder.WriteString("\n\nAll values must be filled.\nScore must be between 0 and 10.\nSuggestions must be an array of strings.\n")
	return builder.String()
}

// BuildAptitudePrompt renders the instruction block for checking an aptitude answer.
func BuildAptitudePrompt(question string, options []string, selectedAnswer string) string {
	builder := strings.Builder{}
	builder.WriteString("You are a quantitative aptitude expert.\n\n")
	builder.WriteString(jsonOnlyDirective)
	builder.WriteString("\n\nQuestion:\n")
	builder.WriteString(question)
	builder.WriteString("\n\nOptions:\n")
	builder.WriteString(strings.Join(options, "\n"))
	builder.WriteString("\n\nSelected Answer:\n")
	builder.WriteString(selectedAnswer)
	builder.WriteString("\n\nEvaluate:\n")
	builder.WriteString("1. Whether the selected answer is correct (true/false)\n")
	builder.WriteString("2. Provide the correct answer\n")
	builder.WriteString("3. Provide a clear explanation\n")
	builder.WriteString("4. Rate difficulty as Easy, Medium, or Hard\n")
	builder.WriteString("\nReturn EXACTLY this JSON format:\n\n")
	builder.WriteString(`{
  "isCorrect": true,
  "correctAnswer": "",
  "explanation": "",
  "difficulty": ""
}`)
	builder.WriteString("\n")
	return builder.String()
}

// BuildCommunicationPrompt renders the instruction block for scoring a writing sample.
func BuildCommunicationPrompt(response string) string {
	builder := strings.Builder{}
	builder.WriteString("You are a professional English communication coach.\n\n")
	builder.WriteString(jsonOnlyDirective)
	builder.WriteString("\n\nEvaluate the following communication response:\n\n")
	builder.WriteString(response)
	builder.WriteString("\n\nScore strictly between 0 and 100.\n\nReturn EXACTLY this JSON format:\n\n")
	builder.WriteString(`{
  "grammar": 0,
  "clarity": 0,
  "confidence": 0,
  "vocabulary": 0,
  "overall": 0,
  "suggestions": []
}`)
	builder.WriteString("\n\nAll numeric values must be between 0 and 100.\nSuggestions must be an array of strings.\n")
	return builder.String()
}

// BuildInsightPrompt renders the instruction block for the cross-skill summary.
func BuildInsightPrompt(coding, aptitude, communication float64) string {
	builder := strings.Builder{}
	builder.WriteString("You are a career performance analyst.\n\n")
	builder.WriteString(jsonOnlyDirective)
	builder.WriteString("\n\nBased on:\n\n")
	builder.WriteString(fmt.Sprintf("Coding Score: %g\n", coding))
	builder.WriteString(fmt.Sprintf("Aptitude Score: %g\n", aptitude))
	builder.WriteString(fmt.Sprintf("Communication Score: %g\n", communication))
	builder.WriteString("\nAnalyze:\n")
	builder.WriteString("1. Strongest skill\n")
	builder.WriteString("2. Weakest skill\n")
	builder.WriteString("3. Suggested career path\n")
	builder.WriteString("4. 3 improvement recommendations\n")
	builder.WriteString("\nReturn EXACTLY:\n\n")
	builder.WriteString(`{
  "strongest": "",
  "weakest": "",
  "careerSuggestion": "",
  "recommendations": []
}`)
	builder.WriteString("\n")
	return builder.String()
}
