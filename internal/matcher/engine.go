package matcher

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Engine is the built-in deterministic matching strategy. It needs no
// external service: tokenization, skill extraction, scoring, and ranking
// are pure set operations, so identical inputs always produce identical
// output.
type Engine struct {
	cfg Config
}

// NewEngine returns an Engine with the given configuration. Zero-value
// fields fall back to the defaults.
func NewEngine(cfg Config) *Engine {
	if len(cfg.StopWords) == 0 {
		cfg.StopWords = defaultStopWords
	}
	if len(cfg.SectionHeaders) == 0 {
		cfg.SectionHeaders = defaultSectionHeaders
	}
	if cfg.MaxResumes <= 0 {
		cfg.MaxResumes = DefaultMaxResumes
	}
	return &Engine{cfg: cfg}
}

// MatchCandidates implements Matcher. It validates the batch, extracts the
// job's skill vocabulary once, scores every resume concurrently (inputs are
// immutable, each resume is independent), and ranks the joined results.
func (e *Engine) MatchCandidates(ctx context.Context, jobDescription string, resumes []Resume) ([]CandidateResult, error) {
	if err := ValidateInputs(jobDescription, resumes, e.cfg.MaxResumes); err != nil {
		return nil, err
	}

	skills, err := ExtractSkills(jobDescription, e.cfg)
	if err != nil {
		return nil, err
	}

	results := make([]CandidateResult, len(resumes))
	g, _ := errgroup.WithContext(ctx)
	for i, resume := range resumes {
		g.Go(func() error {
			tokens := TokenSet(resume.Text)
			score, err := Score(skills, tokens)
			if err != nil {
				return err
			}
			results[i] = CandidateResult{
				Filename:      resume.Name,
				Score:         score,
				MissingSkills: MissingSkills(skills, tokens),
				Remarks:       Remark(score),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Rank(results), nil
}
