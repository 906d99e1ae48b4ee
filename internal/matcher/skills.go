package matcher

import (
	"regexp"
	"strings"
)

// Config holds the tunable parameters of the engine. Stop words and section
// header patterns materially affect scoring, so they are explicit
// configuration rather than hidden constants.
type Config struct {
	// StopWords are tokens never treated as skills: common English words
	// and job-posting boilerplate.
	StopWords []string
	// SectionHeaders are lowercase header names that mark the start of a
	// skills-style section ("requirements", "skills", ...).
	SectionHeaders []string
	// MaxResumes caps the number of resumes per request.
	MaxResumes int
}

// DefaultMaxResumes is the per-request resume cap.
const DefaultMaxResumes = 10

var defaultStopWords = []string{
	"the", "and", "for", "with", "our", "you", "your", "are", "will",
	"have", "has", "this", "that", "from", "not", "all", "any", "can",
	"may", "who", "what", "when", "where", "about", "into", "over",
	"other", "more", "than", "such", "well", "also", "etc",
	"experience", "experienced", "years", "year", "team", "company",
	"role", "position", "job", "candidate", "candidates", "ideal",
	"work", "working", "knowledge", "strong", "good", "excellent",
	"great", "ability", "able", "skills", "skill", "required",
	"requirements", "require", "requires", "must", "should", "plus",
	"preferred", "proficiency", "proficient", "familiarity", "familiar",
	"understanding", "background", "degree", "bachelor", "bachelors",
	"master", "masters", "equivalent", "related", "field", "join",
	"seeking", "looking", "responsibilities", "qualifications",
}

var defaultSectionHeaders = []string{
	"requirements", "requirement",
	"required skills", "key skills", "skills", "skill set",
	"must have", "must-have", "must haves", "must-haves",
	"must have skills", "must-have skills",
	"qualifications", "required qualifications", "minimum qualifications",
	"tech stack", "technical stack", "technologies", "technical skills",
}

// DefaultConfig returns the engine configuration used when no overrides are
// supplied.
func DefaultConfig() Config {
	return Config{
		StopWords:      defaultStopWords,
		SectionHeaders: defaultSectionHeaders,
		MaxResumes:     DefaultMaxResumes,
	}
}

// headerTrim strips decoration (bullets, colons, markdown emphasis) from a
// candidate header line before comparing it against SectionHeaders.
var headerTrim = regexp.MustCompile(`^[^a-zA-Z]+|[^a-zA-Z]+$`)

// ExtractSkills derives the skill vocabulary of a job description.
//
// Two deterministic tiers: if any skills-style section header is found, only
// the lines of those sections contribute tokens; otherwise the whole
// document does. Stop words are removed in both tiers. The result is
// deduplicated and ordered by first appearance in the job description, so
// downstream missing-skill lists preserve the recruiter's emphasis order.
// An empty result yields EmptySkillSetError.
func ExtractSkills(jobDescription string, cfg Config) ([]string, error) {
	source := jobDescription
	if sections := skillSectionText(jobDescription, cfg.SectionHeaders); sections != "" {
		source = sections
	}

	stop := make(map[string]struct{}, len(cfg.StopWords))
	for _, w := range cfg.StopWords {
		stop[strings.ToLower(w)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var skills []string
	for _, tok := range Tokenize(source) {
		if _, isStop := stop[tok]; isStop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		skills = append(skills, tok)
	}

	if len(skills) == 0 {
		return nil, &EmptySkillSetError{}
	}
	return skills, nil
}

// skillSectionText collects the lines of every skills-style section: each
// run of lines after a header line, up to the next blank line or header.
// Returns "" when no header is present.
func skillSectionText(text string, headers []string) string {
	lines := strings.Split(text, "\n")

	var collected []string
	inSection := false
	found := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isSectionHeader(trimmed, headers) {
			inSection = true
			found = true
			continue
		}
		if !inSection {
			continue
		}
		if trimmed == "" {
			inSection = false
			continue
		}
		collected = append(collected, trimmed)
	}

	if !found {
		return ""
	}
	return strings.Join(collected, "\n")
}

func isSectionHeader(line string, headers []string) bool {
	name := strings.ToLower(headerTrim.ReplaceAllString(line, ""))
	if name == "" {
		return false
	}
	for _, h := range headers {
		if name == h {
			return true
		}
	}
	return false
}
