package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"recruitai/recruitment-agent/internal/matcher"
)

// aiMatcher is an alternative matching strategy backed by the text
// generation service. It honors the same contract as the deterministic
// engine; on any generation or parsing failure the whole batch falls back
// to the engine, so matching always completes.
type aiMatcher struct {
	gemini        GeminiService
	fallback      matcher.Matcher
	promptBuilder *PromptBuilder
	maxRetries    int
	maxResumes    int
}

func NewAIMatcher(gemini GeminiService, fallback matcher.Matcher, maxRetries, maxResumes int) matcher.Matcher {
	if maxResumes <= 0 {
		maxResumes = matcher.DefaultMaxResumes
	}
	return &aiMatcher{
		gemini:        gemini,
		fallback:      fallback,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
		maxResumes:    maxResumes,
	}
}

type matchAnalysis struct {
	Score         int      `json:"score"`
	MissingSkills []string `json:"missing_skills"`
	Remarks       string   `json:"remarks"`
}

// MatchCandidates implements matcher.Matcher.
func (m *aiMatcher) MatchCandidates(ctx context.Context, jobDescription string, resumes []matcher.Resume) ([]matcher.CandidateResult, error) {
	if err := matcher.ValidateInputs(jobDescription, resumes, m.maxResumes); err != nil {
		return nil, err
	}

	results := make([]matcher.CandidateResult, 0, len(resumes))
	for _, resume := range resumes {
		analysis, err := m.analyzeResume(ctx, jobDescription, resume.Text)
		if err != nil {
			log.Printf("⚠️ AI matching failed for %s, falling back to deterministic engine: %v\n", resume.Name, err)
			return m.fallback.MatchCandidates(ctx, jobDescription, resumes)
		}

		missing := analysis.MissingSkills
		if missing == nil {
			missing = make([]string, 0)
		}
		results = append(results, matcher.CandidateResult{
			Filename:      resume.Name,
			Score:         clampScore(analysis.Score),
			MissingSkills: missing,
			Remarks:       analysis.Remarks,
		})
	}

	return matcher.Rank(results), nil
}

func (m *aiMatcher) analyzeResume(ctx context.Context, jobDescription, resumeText string) (*matchAnalysis, error) {
	prompt := m.promptBuilder.BuildMatchAnalysisPrompt(jobDescription, resumeText)

	response, err := m.gemini.GenerateTextWithRetry(ctx, prompt, 0.3, m.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate match analysis: %w", err)
	}

	var analysis matchAnalysis
	if err := parseJSONResponse(response, &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse match analysis: %w", err)
	}

	return &analysis, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func parseJSONResponse(response string, target interface{}) error {
	// Try to extract JSON from response (LLM might wrap it in markdown)
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
