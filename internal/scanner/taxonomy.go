package scanner

// Logical keys for the fixed doc-file categories.
const (
	KeyLicense       = "LICENSE"
	KeyContributing  = "CONTRIBUTING"
	KeyCodeOfConduct = "CODE_OF_CONDUCT"
	KeySecurity      = "SECURITY"
	KeyChangelog     = "CHANGELOG"
	KeyEnvExample    = "ENV_EXAMPLE"
)

// fileCategory pairs a logical key with its ordered filename variants.
// Order matters: the probe returns the first variant that exists.
type fileCategory struct {
	Key   string
	Names []string
}

// readmeNames are the README filename variants, most-likely-first.
var readmeNames = []string{"README.md", "readme.md", "README.MD", "README"}

// docCategories are the fixed doc-file categories. Slice order determines
// both the probe order and the suggestion order for missing files.
var docCategories = []fileCategory{
	{KeyLicense, []string{"LICENSE", "LICENSE.md", "LICENSE.txt"}},
	{KeyContributing, []string{"CONTRIBUTING.md", "CONTRIBUTING"}},
	{KeyCodeOfConduct, []string{"CODE_OF_CONDUCT.md", "CODE_OF_CONDUCT"}},
	{KeySecurity, []string{"SECURITY.md", "SECURITY"}},
	{KeyChangelog, []string{"CHANGELOG.md", "CHANGELOG"}},
}

// envExampleNames are the environment-example filename variants.
var envExampleNames = []string{".env.example", ".env.sample", ".env.template", "env.example"}

// buildToolFiles are checked independently (not first-match): every one
// that exists is recorded under its own literal filename key.
var buildToolFiles = []string{
	"Makefile",
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yml",
	"compose.yaml",
	"package.json",
	"pnpm-lock.yaml",
	"yarn.lock",
	"requirements.txt",
	"pyproject.toml",
	"poetry.lock",
}

// sectionCategory pairs a README section key with the heading substrings
// that satisfy it.
type sectionCategory struct {
	Key      string
	Title    string
	Variants []string
}

// sectionTaxonomy defines the six section categories. A category is
// satisfied when ANY extracted heading CONTAINS any variant as a substring.
// The containment check is deliberately lenient ("usage examples for
// advanced users" satisfies usage) and can over-match.
var sectionTaxonomy = []sectionCategory{
	{"installation", "Installation", []string{"installation", "install", "setup"}},
	{"usage", "Usage", []string{"usage", "quickstart", "getting started"}},
	{"development", "Development", []string{"development", "dev", "contributing"}},
	{"configuration", "Configuration", []string{"configuration", "config", "environment variables", "env"}},
	{"tests", "Tests", []string{"tests", "testing"}},
	{"license", "License", []string{"license"}},
}
