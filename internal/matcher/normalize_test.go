package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_LowerCasesAndSplitsOnPunctuation(t *testing.T) {
	tokens := Tokenize("Python, Django; PostgreSQL!\nRedis\tKafka")

	assert.Equal(t, []string{"python", "django", "postgresql", "redis", "kafka"}, tokens)
}

func TestTokenize_DropsShortAndNumericTokens(t *testing.T) {
	tokens := Tokenize("a 5 10 2020 Go R x86 v2")

	// Single characters and pure numbers are noise; "x86" and "v2" mix
	// letters with digits and survive ("v2" has two characters).
	assert.Equal(t, []string{"go", "x86", "v2"}, tokens)
}

func TestTokenize_CompoundSkillsSurvive(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"cpp", "Expert in C++ and Java", []string{"expert", "in", "c++", "and", "java"}},
		{"csharp", "C# developer", []string{"c#", "developer"}},
		{"nodejs", "We use Node.js daily", []string{"we", "use", "node.js", "daily"}},
		{"dotnet", "Worked on .NET services", []string{"worked", "on", ".net", "services"}},
		{"aspnet", "ASP.NET experience", []string{"asp.net", "experience"}},
		{"cicd", "Owns CI/CD pipelines", []string{"owns", "ci/cd", "pipelines"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestTokenize_CompoundNotMatchedInsideWord(t *testing.T) {
	tokens := Tokenize("internet magnet")

	assert.Equal(t, []string{"internet", "magnet"}, tokens)
}

func TestTokenize_BulletMarkersAreDelimiters(t *testing.T) {
	tokens := Tokenize("- Python\n* Django\n• PostgreSQL")

	assert.Equal(t, []string{"python", "django", "postgresql"}, tokens)
}

func TestTokenize_PreservesDuplicatesInOrder(t *testing.T) {
	tokens := Tokenize("python django python")

	assert.Equal(t, []string{"python", "django", "python"}, tokens)
}

func TestTokenize_EmptyText(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  \n\t ... !!! "))
}

func TestTokenSet_Deduplicates(t *testing.T) {
	set := TokenSet("Go go GO golang")

	assert.Len(t, set, 2)
	assert.Contains(t, set, "go")
	assert.Contains(t, set, "golang")
}
