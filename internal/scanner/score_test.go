package scanner

import "testing"

func fullResult() *Result {
	name := "x"
	res := &Result{
		Files:  map[string]*string{},
		Readme: Readme{Sections: map[string]bool{}},
	}
	for _, w := range filePoints {
		res.Files[w.Key] = &name
	}
	for _, sec := range sectionTaxonomy {
		res.Readme.Sections[sec.Key] = true
	}
	return res
}

func TestComputeScore_MaxUnclampedSum(t *testing.T) {
	// Everything satisfied: 25 + 8 + 8 + 5 + 5 + 4 + 10 + 6 + 6 + 6 + 4 + 4 = 91.
	score := computeScore(fullResult(), true)
	if score != 91 {
		t.Errorf("expected 91, got %d", score)
	}
}

func TestComputeScore_AlwaysWithinBounds(t *testing.T) {
	empty := &Result{Files: map[string]*string{}, Readme: Readme{Sections: map[string]bool{}}}
	for _, res := range []*Result{empty, fullResult()} {
		for _, readme := range []bool{false, true} {
			score := computeScore(res, readme)
			if score < 0 || score > maxScore {
				t.Errorf("score %d out of [0, %d]", score, maxScore)
			}
		}
	}
}

func TestComputeScore_LicenseSectionCarriesNoWeight(t *testing.T) {
	res := &Result{
		Files:  map[string]*string{},
		Readme: Readme{Sections: map[string]bool{"license": true}},
	}
	if score := computeScore(res, false); score != 0 {
		t.Errorf("license section alone should score 0, got %d", score)
	}
}
