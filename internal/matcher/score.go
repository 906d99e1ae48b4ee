package matcher

import "math"

// Score returns the percentage of the job's skills present in the resume's
// token set, rounded half away from zero: round(100 * matched / total).
// The measure is recall of required skills, so unrelated resume content
// never dilutes the score, and 100 is returned only when every skill is
// matched. skills must be non-empty; an empty skill set is an extraction
// failure surfaced as EmptySkillSetError, never a silent 0.
func Score(skills []string, tokens map[string]struct{}) (int, error) {
	if len(skills) == 0 {
		return 0, &EmptySkillSetError{}
	}

	matched := 0
	for _, skill := range skills {
		if _, ok := tokens[skill]; ok {
			matched++
		}
	}

	score := int(math.Round(100 * float64(matched) / float64(len(skills))))
	// 100 means full coverage. With enough skills (199 of 200 matched),
	// rounding alone would reach 100 despite a missing skill.
	if score == 100 && matched < len(skills) {
		score = 99
	}

	return score, nil
}

// MissingSkills returns the job's skills absent from the resume's token
// set, in the order the skills first appear in the job description. skills
// is already deduplicated by ExtractSkills, so the result is too.
func MissingSkills(skills []string, tokens map[string]struct{}) []string {
	missing := make([]string, 0, len(skills))
	for _, skill := range skills {
		if _, ok := tokens[skill]; !ok {
			missing = append(missing, skill)
		}
	}
	return missing
}
