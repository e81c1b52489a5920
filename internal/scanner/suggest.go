package scanner

import "fmt"

// suggestedSections are the README sections that produce a suggestion when
// missing. development and license are tracked in Sections but never
// suggested: license presence is already covered by the LICENSE file check.
var suggestedSections = []string{"installation", "usage", "configuration", "tests"}

// buildSuggestions generates remediation hints in fixed priority order:
// a missing README suppresses all section-level suggestions; the file-level
// checks for LICENSE, CONTRIBUTING, and ENV_EXAMPLE always run. Missing
// CODE_OF_CONDUCT, SECURITY, or CHANGELOG never produce a suggestion.
func buildSuggestions(res *Result, readmeFound bool) []string {
	suggestions := []string{}

	if !readmeFound {
		suggestions = append(suggestions, "Add a README.md with purpose + quickstart + dev instructions.")
	} else {
		for _, key := range suggestedSections {
			if !res.Readme.Sections[key] {
				suggestions = append(suggestions, fmt.Sprintf("Add a README section: %s.", sectionTitle(key)))
			}
		}
	}

	if res.Files[KeyLicense] == nil {
		suggestions = append(suggestions, "Add a LICENSE file (MIT/Apache-2.0/etc).")
	}
	if res.Files[KeyContributing] == nil {
		suggestions = append(suggestions, "Add CONTRIBUTING.md with local dev + PR guidelines.")
	}
	if res.Files[KeyEnvExample] == nil {
		suggestions = append(suggestions, "Add .env.example (or document required environment variables).")
	}

	return suggestions
}

func sectionTitle(key string) string {
	for _, sec := range sectionTaxonomy {
		if sec.Key == key {
			return sec.Title
		}
	}
	return key
}
