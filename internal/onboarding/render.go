// Package onboarding renders the generated onboarding-checklist document
// from a scan result.
package onboarding

import (
	"strings"
	"text/template"

	"github.com/readmelens/readmelens/internal/scanner"
)

const (
	markDone    = "✅"
	markMissing = "⬜"
)

// docTemplate is the fixed onboarding document. The only variation is the
// five checklist marks and the environment-variables sentence.
var docTemplate = template.Must(template.New("onboarding").Parse(`# Onboarding — {{.Owner}}/{{.Repo}}

This is a generated starter onboarding doc. Customize it for your project.

## Quick checklist

- {{.ReadmeMark}} README present
- {{.LicenseMark}} License
- {{.ContributingMark}} Contributing guide
- {{.EnvMark}} Environment variables documented
- {{.TestsMark}} Tests documented

## Local development

### Prerequisites

- Language/runtime installed
- Package manager (npm/pnpm/pip/poetry/etc)

### Setup

1. Clone the repo
2. Install dependencies
3. Configure environment variables
4. Run the app

### Environment variables

{{.EnvSentence}}

### Running tests

- Add the commands used to run unit/integration tests

## Repo structure

- ` + "`app/`" + ` — main application code
- ` + "`scripts/`" + ` — helper scripts
- ` + "`docs/`" + ` — documentation

## Contribution workflow

- Create a branch
- Make a focused change
- Add/adjust tests
- Open a PR with context + screenshots (if UI)
`))

type docView struct {
	Owner            string
	Repo             string
	ReadmeMark       string
	LicenseMark      string
	ContributingMark string
	EnvMark          string
	TestsMark        string
	EnvSentence      string
}

// Render produces the onboarding Markdown for a scan result. Output is
// deterministic given identical input.
func Render(owner, repo string, res *scanner.Result) (string, error) {
	hasEnv := res.Files[scanner.KeyEnvExample] != nil

	envSentence := "Document required env vars here. Consider adding `.env.example`."
	if hasEnv {
		envSentence = "See `.env.example` and copy it to `.env`."
	}

	view := docView{
		Owner:            owner,
		Repo:             repo,
		ReadmeMark:       mark(res.Readme.Path != nil),
		LicenseMark:      mark(res.Files[scanner.KeyLicense] != nil),
		ContributingMark: mark(res.Files[scanner.KeyContributing] != nil),
		EnvMark:          mark(hasEnv),
		TestsMark:        mark(res.Readme.Sections["tests"]),
		EnvSentence:      envSentence,
	}

	var sb strings.Builder
	if err := docTemplate.Execute(&sb, view); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func mark(ok bool) string {
	if ok {
		return markDone
	}
	return markMissing
}
