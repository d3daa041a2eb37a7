package ai

// FallbackReason identifies which degraded path produced a fallback result.
type FallbackReason string

const (
	// FallbackUnavailable is used when the generative service call failed.
	FallbackUnavailable FallbackReason = "unavailable"
	// FallbackUnparsable is used when the model output defeated every parse attempt.
	FallbackUnparsable FallbackReason = "unparsable"
	// FallbackInternal is used when an unexpected fault interrupted orchestration.
	FallbackInternal FallbackReason = "internal"
)

// CodeEvaluation is the structured verdict for a code submission.
type CodeEvaluation struct {
	Score          float64  `json:"score"`
	Correctness    string   `json:"correctness"`
	TimeComplexity string   `json:"timeComplexity"`
	CodeQuality    string   `json:"codeQuality"`
	Suggestions    []string `json:"suggestions"`
}

// AptitudeEvaluation is the structured verdict for an aptitude answer.
type AptitudeEvaluation struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
	Difficulty    string `json:"difficulty"`
}

// CommunicationEvaluation is the structured verdict for a communication sample.
type CommunicationEvaluation struct {
	Grammar     float64  `json:"grammar"`
	Clarity     float64  `json:"clarity"`
	Confidence  float64  `json:"confidence"`
	Vocabulary  float64  `json:"vocabulary"`
	Overall     float64  `json:"overall"`
	Suggestions []string `json:"suggestions"`
}

// InsightResult is the cross-skill advisory summary.
type InsightResult struct {
	Strongest        string   `json:"strongest"`
	Weakest          string   `json:"weakest"`
	CareerSuggestion string   `json:"careerSuggestion"`
	Recommendations  []string `json:"recommendations"`
}

// CodeEvaluationFallback returns the degraded code result for the given reason.
func CodeEvaluationFallback(reason FallbackReason) CodeEvaluation {
	switch reason {
	case FallbackUnavailable:
		return CodeEvaluation{
			Score:          5,
			Correctness:    "AI temporarily unavailable",
			TimeComplexity: "Unknown",
			CodeQuality:    "Fallback response",
			Suggestions:    []string{"Gemini API failed."},
		}
	case FallbackInternal:
		return CodeEvaluation{
			Score:          5,
			Correctness:    "Server error",
			TimeComplexity: "Unknown",
			CodeQuality:    "Fallback response",
			Suggestions:    []string{"Unexpected server error occurred."},
		}
	default:
		return CodeEvaluation{
			Score:          0,
			Correctness:    "Unable to evaluate response",
			TimeComplexity: "Unknown",
			CodeQuality:    "Needs review",
			Suggestions:    []string{"AI returned unexpected format"},
		}
	}
}

// AptitudeEvaluationFallback returns the degraded aptitude result for the given reason.
func AptitudeEvaluationFallback(reason FallbackReason) AptitudeEvaluation {
	result := AptitudeEvaluation{Difficulty: "Unknown"}
	switch reason {
	case FallbackUnavailable:
		result.Explanation = "AI temporarily unavailable"
	case FallbackInternal:
		result.Explanation = "Unexpected server error occurred"
	default:
		result.Explanation = "Unable to evaluate response"
	}
	return result
}

// CommunicationEvaluationFallback returns the degraded communication result for the given reason.
func CommunicationEvaluationFallback(reason FallbackReason) CommunicationEvaluation {
	result := CommunicationEvaluation{Suggestions: []string{}}
	switch reason {
	case FallbackUnavailable:
		result.Suggestions = []string{"AI temporarily unavailable"}
	case FallbackInternal:
		result.Suggestions = []string{"Unexpected server error occurred"}
	default:
		result.Suggestions = []string{"AI returned unexpected format"}
	}
	return result
}

// InsightResultFallback returns the degraded insight result for the given reason.
func InsightResultFallback(reason FallbackReason) InsightResult {
	result := InsightResult{}
	switch reason {
	case FallbackUnavailable:
		result.Recommendations = []string{"Gemini API failed."}
	case FallbackInternal:
		result.Recommendations = []string{"Unexpected server error occurred"}
	default:
		result.Recommendations = []string{"Unable to generate insight"}
	}
	return result
}

// Normalized clamps the score to its documented 0-10 range and guarantees a
// non-nil suggestion list. In-range values pass through untouched.
func (e CodeEvaluation) Normalized() CodeEvaluation {
	e.Score = clamp(e.Score, 0, 10)
	if e.Suggestions == nil {
		e.Suggestions = []string{}
	}
	return e
}

// Normalized substitutes "Unknown" for any difficulty outside the documented set.
func (e AptitudeEvaluation) Normalized() AptitudeEvaluation {
	switch e.Difficulty {
	case "Easy", "Medium", "Hard", "Unknown":
	default:
		e.Difficulty = "Unknown"
	}
	return e
}

// Normalized clamps every metric to its documented 0-100 range and guarantees
// a non-nil suggestion list. In-range values pass through untouched.
func (e CommunicationEvaluation) Normalized() CommunicationEvaluation {
	e.Grammar = clamp(e.Grammar, 0, 100)
	e.Clarity = clamp(e.Clarity, 0, 100)
	e.Confidence = clamp(e.Confidence, 0, 100)
	e.Vocabulary = clamp(e.Vocabulary, 0, 100)
	e.Overall = clamp(e.Overall, 0, 100)
	if e.Suggestions == nil {
		e.Suggestions = []string{}
	}
	return e
}

// Normalized guarantees a non-nil recommendation list.
func (r InsightResult) Normalized() InsightResult {
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
	return r
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
