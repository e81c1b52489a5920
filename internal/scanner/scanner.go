package scanner

import (
	"path/filepath"
	"strings"
)

// Scan runs the onboarding heuristics over the tree rooted at root and
// returns the complete result. It is a pure function over a directory
// snapshot: read-only filesystem access, no other side effects, safe to
// call concurrently. Absent files are data, not errors; an empty or
// missing directory yields a zero-score result.
func Scan(root string) *Result {
	res := &Result{
		Files: make(map[string]*string),
		Readme: Readme{
			Headings: []string{},
			Sections: make(map[string]bool, len(sectionTaxonomy)),
		},
		Suggestions: []string{},
	}

	// README and section coverage.
	readmeName, readmeFound := FindFirst(root, readmeNames)
	if readmeFound {
		path := readmeName
		res.Readme.Path = &path
		headings := ExtractHeadings(readTextSafe(filepath.Join(root, readmeName)))
		res.Readme.Headings = headings
		for _, sec := range sectionTaxonomy {
			res.Readme.Sections[sec.Key] = headingPresent(headings, sec.Variants)
		}
	} else {
		for _, sec := range sectionTaxonomy {
			res.Readme.Sections[sec.Key] = false
		}
	}

	// Fixed doc-file categories: key always present, nil when missing.
	for _, cat := range docCategories {
		if name, ok := FindFirst(root, cat.Names); ok {
			res.Files[cat.Key] = &name
		} else {
			res.Files[cat.Key] = nil
		}
	}

	// Environment example.
	if name, ok := FindFirst(root, envExampleNames); ok {
		res.Files[KeyEnvExample] = &name
	} else {
		res.Files[KeyEnvExample] = nil
	}

	// Build tooling: each filename checked independently, recorded sparsely.
	for _, name := range buildToolFiles {
		if fileExists(root, name) {
			found := name
			res.Files[name] = &found
		}
	}

	res.Score = computeScore(res, readmeFound)
	res.Suggestions = buildSuggestions(res, readmeFound)
	return res
}

// headingPresent reports whether any heading contains any of the variants
// as a substring. Headings are already lowercased, so the comparison is
// case-insensitive by construction.
func headingPresent(headings, variants []string) bool {
	for _, h := range headings {
		for _, v := range variants {
			if strings.Contains(h, v) {
				return true
			}
		}
	}
	return false
}
