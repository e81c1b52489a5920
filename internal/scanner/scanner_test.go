package scanner

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// Scan
// ---------------------------------------------------------------------------

func TestScan_EmptyDirectory(t *testing.T) {
	res := Scan(t.TempDir())

	if res.Score != 0 {
		t.Errorf("expected score 0, got %d", res.Score)
	}
	if res.Readme.Path != nil {
		t.Errorf("expected nil readme path, got %v", *res.Readme.Path)
	}
	if len(res.Readme.Sections) != 6 {
		t.Fatalf("expected exactly 6 section keys, got %d", len(res.Readme.Sections))
	}
	for key, ok := range res.Readme.Sections {
		if ok {
			t.Errorf("section %q should be false with no README", key)
		}
	}
	for _, key := range []string{KeyLicense, KeyContributing, KeyCodeOfConduct, KeySecurity, KeyChangelog, KeyEnvExample} {
		v, present := res.Files[key]
		if !present {
			t.Errorf("files key %q must always be present", key)
		}
		if v != nil {
			t.Errorf("files key %q should be nil in empty dir, got %v", key, *v)
		}
	}

	want := []string{
		"Add a README.md with purpose + quickstart + dev instructions.",
		"Add a LICENSE file (MIT/Apache-2.0/etc).",
		"Add CONTRIBUTING.md with local dev + PR guidelines.",
		"Add .env.example (or document required environment variables).",
	}
	if !reflect.DeepEqual(res.Suggestions, want) {
		t.Errorf("expected suggestions %v, got %v", want, res.Suggestions)
	}
}

func TestScan_ReadmeWithInstallationAndUsage(t *testing.T) {
	root := t.TempDir()
	md := "# Project\n\n## Installation\n\n## Usage\n"
	if err := writeFile(filepath.Join(root, "README.md"), md); err != nil {
		t.Fatal(err)
	}

	res := Scan(root)

	if !res.Readme.Sections["installation"] || !res.Readme.Sections["usage"] {
		t.Error("installation and usage should be detected")
	}
	if res.Readme.Sections["configuration"] {
		t.Error("configuration should not be detected")
	}
	// 25 (readme) + 6 (installation) + 6 (usage) = 37
	if res.Score != 37 {
		t.Errorf("expected score 37, got %d", res.Score)
	}

	want := []string{
		"Add a README section: Configuration.",
		"Add a README section: Tests.",
		"Add a LICENSE file (MIT/Apache-2.0/etc).",
		"Add CONTRIBUTING.md with local dev + PR guidelines.",
		"Add .env.example (or document required environment variables).",
	}
	if !reflect.DeepEqual(res.Suggestions, want) {
		t.Errorf("expected suggestions %v, got %v", want, res.Suggestions)
	}
}

func TestScan_WellDocumentedRepoHasNoSuggestions(t *testing.T) {
	root := t.TempDir()
	md := "# Project\n## Installation\n## Usage\n## Development\n## Configuration\n## Tests\n## License\n"
	files := map[string]string{
		"README.md":       md,
		"LICENSE":         "MIT",
		"CONTRIBUTING.md": "PRs welcome",
		".env.example":    "PORT=8080",
	}
	for name, content := range files {
		if err := writeFile(filepath.Join(root, name), content); err != nil {
			t.Fatal(err)
		}
	}

	res := Scan(root)

	// 25 + 8 (license) + 8 (contributing) + 10 (env) + 6 + 6 + 6 + 4 + 4 = 77
	if res.Score != 77 {
		t.Errorf("expected score 77, got %d", res.Score)
	}
	if len(res.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", res.Suggestions)
	}
}

func TestScan_MissingReadmeSuppressesSectionSuggestions(t *testing.T) {
	root := t.TempDir()
	if err := writeFile(filepath.Join(root, "LICENSE"), "MIT"); err != nil {
		t.Fatal(err)
	}

	res := Scan(root)

	readmeRelated := 0
	for _, s := range res.Suggestions {
		if s == "Add a README.md with purpose + quickstart + dev instructions." {
			readmeRelated++
		}
		if len(s) > 21 && s[:21] == "Add a README section:" {
			t.Errorf("no section suggestion expected without a README: %q", s)
		}
	}
	if readmeRelated != 1 {
		t.Errorf("expected exactly one README suggestion, got %d", readmeRelated)
	}
}

func TestScan_DocFileVariantOrder(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"LICENSE.txt", "LICENSE.md"} {
		if err := writeFile(filepath.Join(root, name), "MIT"); err != nil {
			t.Fatal(err)
		}
	}

	res := Scan(root)
	if res.Files[KeyLicense] == nil || *res.Files[KeyLicense] != "LICENSE.md" {
		t.Errorf("expected LICENSE.md (earlier variant), got %v", res.Files[KeyLicense])
	}
}

func TestScan_BuildToolFilesAreSparseAndIndependent(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"Makefile", "package.json"} {
		if err := writeFile(filepath.Join(root, name), "x"); err != nil {
			t.Fatal(err)
		}
	}

	res := Scan(root)

	for _, name := range []string{"Makefile", "package.json"} {
		if v := res.Files[name]; v == nil || *v != name {
			t.Errorf("expected build file %q recorded under its own key", name)
		}
	}
	// Absent build files must not appear at all.
	if _, present := res.Files["yarn.lock"]; present {
		t.Error("absent build files should not have keys")
	}
}

func TestScan_EnvExampleVariants(t *testing.T) {
	root := t.TempDir()
	if err := writeFile(filepath.Join(root, ".env.sample"), "X=1"); err != nil {
		t.Fatal(err)
	}

	res := Scan(root)
	if res.Files[KeyEnvExample] == nil || *res.Files[KeyEnvExample] != ".env.sample" {
		t.Errorf("expected .env.sample, got %v", res.Files[KeyEnvExample])
	}
}

func TestScan_LenientSectionMatching(t *testing.T) {
	root := t.TempDir()
	md := "# App\n## Usage examples for advanced users\n"
	if err := writeFile(filepath.Join(root, "README.md"), md); err != nil {
		t.Fatal(err)
	}

	res := Scan(root)
	if !res.Readme.Sections["usage"] {
		t.Error("substring containment should satisfy the usage section")
	}
}

func TestScan_BinaryReadmeDoesNotCrash(t *testing.T) {
	root := t.TempDir()
	if err := writeFile(filepath.Join(root, "README.md"), "\x00\x01\xff\xfe# Setup\n"); err != nil {
		t.Fatal(err)
	}

	res := Scan(root)
	if res.Readme.Path == nil {
		t.Error("README should still be recorded as present")
	}
	if res.Score < 25 {
		t.Errorf("README presence should still score, got %d", res.Score)
	}
}

func TestScan_ResultRoundTripsThroughJSON(t *testing.T) {
	root := t.TempDir()
	md := "# App\n## Install\n"
	for name, content := range map[string]string{"README.md": md, "Makefile": "all:"} {
		if err := writeFile(filepath.Join(root, name), content); err != nil {
			t.Fatal(err)
		}
	}

	res := Scan(root)
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	var back Result
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(*res, back) {
		t.Errorf("result did not round-trip:\n%+v\n%+v", *res, back)
	}
}
