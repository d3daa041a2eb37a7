package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/singhkartik1407/skillforge-ai/pkg/ai"
)

func TestCodeEvaluationNormalizedClampsScore(t *testing.T) {
	result := ai.CodeEvaluation{Score: 57, Correctness: "correct"}.Normalized()
	require.Equal(t, 10.0, result.Score)
	require.Equal(t, "correct", result.Correctness)
	require.NotNil(t, result.Suggestions)

	negative := ai.CodeEvaluation{Score: -3}.Normalized()
	require.Equal(t, 0.0, negative.Score)
}

func TestCodeEvaluationNormalizedPassThrough(t *testing.T) {
	result := ai.CodeEvaluation{
		Score:          7,
		Correctness:    "mostly correct",
		TimeComplexity: "O(n log n)",
		CodeQuality:    "clean",
		Suggestions:    []string{"add tests"},
	}
	require.Equal(t, result, result.Normalized())
}

func TestAptitudeEvaluationNormalizedDifficulty(t *testing.T) {
	require.Equal(t, "Easy", ai.AptitudeEvaluation{Difficulty: "Easy"}.Normalized().Difficulty)
	require.Equal(t, "Unknown", ai.AptitudeEvaluation{Difficulty: "Trivial"}.Normalized().Difficulty)
	require.Equal(t, "Unknown", ai.AptitudeEvaluation{}.Normalized().Difficulty)
}

func TestCommunicationEvaluationNormalized(t *testing.T) {
	result := ai.CommunicationEvaluation{
		Grammar:    120,
		Clarity:    -5,
		Confidence: 50,
		Vocabulary: 100,
		Overall:    85,
	}.Normalized()

	require.Equal(t, 100.0, result.Grammar)
	require.Equal(t, 0.0, result.Clarity)
	require.Equal(t, 50.0, result.Confidence)
	require.Equal(t, 100.0, result.Vocabulary)
	require.Equal(t, 85.0, result.Overall)
	require.NotNil(t, result.Suggestions)
}

func TestUnavailableFallbackText(t *testing.T) {
	code := ai.CodeEvaluationFallback(ai.FallbackUnavailable)
	require.Equal(t, 5.0, code.Score)
	require.Equal(t, "AI temporarily unavailable", code.Correctness)
	require.Equal(t, []string{"Gemini API failed."}, code.Suggestions)

	aptitude := ai.AptitudeEvaluationFallback(ai.FallbackUnavailable)
	require.Equal(t, "AI temporarily unavailable", aptitude.Explanation)

	communication := ai.CommunicationEvaluationFallback(ai.FallbackUnavailable)
	require.Equal(t, []string{"AI temporarily unavailable"}, communication.Suggestions)

	insight := ai.InsightResultFallback(ai.FallbackUnavailable)
	require.Equal(t, []string{"Gemini API failed."}, insight.Recommendations)
}

func TestFallbacksAreFullyPopulated(t *testing.T) {
	for _, reason := range []ai.FallbackReason{ai.FallbackUnavailable, ai.FallbackUnparsable, ai.FallbackInternal} {
		code := ai.CodeEvaluationFallback(reason)
		require.NotEmpty(t, code.Correctness)
		require.NotEmpty(t, code.TimeComplexity)
		require.NotEmpty(t, code.Suggestions)

		aptitude := ai.AptitudeEvaluationFallback(reason)
		require.False(t, aptitude.IsCorrect)
		require.Equal(t, "Unknown", aptitude.Difficulty)
		require.NotEmpty(t, aptitude.Explanation)

		communication := ai.CommunicationEvaluationFallback(reason)
		require.Zero(t, communication.Overall)
		require.NotEmpty(t, communication.Suggestions)

		insight := ai.InsightResultFallback(reason)
		require.NotEmpty(t, insight.Recommendations)
	}
}
