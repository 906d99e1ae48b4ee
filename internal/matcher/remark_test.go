package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemark_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Weak match"},
		{39, "Weak match"},
		{40, "Moderate match, notable gaps"},
		{64, "Moderate match, notable gaps"},
		{65, "Good match with minor gaps"},
		{84, "Good match with minor gaps"},
		{85, "Excellent match"},
		{100, "Excellent match"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Remark(tt.score), "score %d", tt.score)
	}
}

func TestRemark_BandsAreExhaustive(t *testing.T) {
	// Every integer score maps to exactly one remark.
	for score := 0; score <= 100; score++ {
		remark := Remark(score)
		assert.NotEmpty(t, remark, "score %d", score)

		matches := 0
		for _, band := range remarkBands {
			if band.remark == remark {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "score %d must map to one band", score)
	}
}
