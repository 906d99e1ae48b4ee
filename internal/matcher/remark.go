package matcher

// remarkBands maps score ranges to qualitative remarks. Bands are
// contiguous and cover 0-100: the first entry whose floor the score reaches
// wins.
var remarkBands = []struct {
	floor  int
	remark string
}{
	{85, "Excellent match"},
	{65, "Good match with minor gaps"},
	{40, "Moderate match, notable gaps"},
	{0, "Weak match"},
}

// Remark returns the qualitative banding statement for a score.
func Remark(score int) string {
	for _, band := range remarkBands {
		if score >= band.floor {
			return band.remark
		}
	}
	return remarkBands[len(remarkBands)-1].remark
}
