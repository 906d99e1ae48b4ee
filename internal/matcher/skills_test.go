package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_FallbackDropsStopWords(t *testing.T) {
	skills, err := ExtractSkills("Python, Django, PostgreSQL required", DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, []string{"python", "django", "postgresql"}, skills)
}

func TestExtractSkills_FirstAppearanceOrderDeduplicated(t *testing.T) {
	skills, err := ExtractSkills("Kafka then Redis then Kafka again, plus Go", DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, []string{"kafka", "then", "redis", "again", "go"}, skills)
}

func TestExtractSkills_StructuredSectionWins(t *testing.T) {
	jd := `We are a fast-growing fintech company in Berlin.

Requirements:
- Python and Django
- PostgreSQL

About us:
We offer competitive compensation and Elasticsearch of opportunities.`

	skills, err := ExtractSkills(jd, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, []string{"python", "django", "postgresql"}, skills)
	assert.NotContains(t, skills, "elasticsearch", "tokens outside the skills section must be ignored")
	assert.NotContains(t, skills, "fintech")
}

func TestExtractSkills_SectionEndsAtBlankLine(t *testing.T) {
	jd := "Skills:\nGo\nKubernetes\n\nWe ship Rust sometimes."

	skills, err := ExtractSkills(jd, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "kubernetes"}, skills)
}

func TestExtractSkills_MultipleSections(t *testing.T) {
	jd := "Must-have:\nPython\n\nNice prose here about the team.\n\nTech stack:\nDocker\nTerraform"

	skills, err := ExtractSkills(jd, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, []string{"python", "docker", "terraform"}, skills)
}

func TestExtractSkills_HeaderDecorationIgnored(t *testing.T) {
	for _, header := range []string{"Requirements:", "## Requirements", "**Requirements**", "REQUIREMENTS"} {
		jd := header + "\nGo\nRedis"

		skills, err := ExtractSkills(jd, DefaultConfig())

		require.NoError(t, err, "header %q", header)
		assert.Equal(t, []string{"go", "redis"}, skills, "header %q", header)
	}
}

func TestExtractSkills_OnlyStopWords(t *testing.T) {
	_, err := ExtractSkills("the and team company", DefaultConfig())

	var emptyErr *EmptySkillSetError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestExtractSkills_EmptyText(t *testing.T) {
	_, err := ExtractSkills("", DefaultConfig())

	var emptyErr *EmptySkillSetError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestExtractSkills_CustomStopWords(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StopWords = []string{"banana"}

	skills, err := ExtractSkills("banana python", cfg)

	require.NoError(t, err)
	assert.Equal(t, []string{"python"}, skills)
}

func TestExtractSkills_CompoundSkillInSection(t *testing.T) {
	jd := "Requirements:\nC++ and C# on .NET"

	skills, err := ExtractSkills(jd, DefaultConfig())

	require.NoError(t, err)
	assert.Contains(t, skills, "c++")
	assert.Contains(t, skills, "c#")
	assert.Contains(t, skills, ".net")
}
