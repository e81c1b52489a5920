package scanner

// maxScore is the clamp ceiling. The current weights sum to 91, so the
// clamp only becomes active if weights are raised past 100.
const maxScore = 100

// readmePoints is awarded when any README variant is present.
const readmePoints = 25

// filePoints are the per-category weights for doc and env files.
var filePoints = []struct {
	Key    string
	Points int
}{
	{KeyLicense, 8},
	{KeyContributing, 8},
	{KeyCodeOfConduct, 5},
	{KeySecurity, 5},
	{KeyChangelog, 4},
	{KeyEnvExample, 10},
}

// sectionPoints are the per-section weights for README coverage.
var sectionPoints = []struct {
	Key    string
	Points int
}{
	{"installation", 6},
	{"usage", 6},
	{"configuration", 6},
	{"tests", 4},
	{"development", 4},
}

// computeScore sums the fixed weights for each satisfied condition and
// clamps the total to maxScore.
//
// Scoring breakdown:
//   - README present:        25
//   - LICENSE:                8
//   - CONTRIBUTING:           8
//   - CODE_OF_CONDUCT:        5
//   - SECURITY:               5
//   - CHANGELOG:              4
//   - ENV_EXAMPLE:           10
//   - installation section:   6
//   - usage section:          6
//   - configuration section:  6
//   - tests section:          4
//   - development section:    4
func computeScore(res *Result, readmeFound bool) int {
	score := 0
	if readmeFound {
		score += readmePoints
	}
	for _, w := range filePoints {
		if res.Files[w.Key] != nil {
			score += w.Points
		}
	}
	for _, w := range sectionPoints {
		if res.Readme.Sections[w.Key] {
			score += w.Points
		}
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}
