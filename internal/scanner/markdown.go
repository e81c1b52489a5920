package scanner

import (
	"io"
	"os"
	"regexp"
	"strings"
)

// maxReadBytes caps how much of a file is read for heading extraction,
// bounding memory and latency on pathological files.
const maxReadBytes = 200_000

var (
	// headingPattern matches ATX-style headings: 1-6 leading # characters,
	// whitespace, then text. Setext-style (underlined) headings are a known
	// unrecognized limitation.
	headingPattern = regexp.MustCompile(`^#{1,6}\s+(.+?)\s*$`)

	backtickRun   = regexp.MustCompile("`+")
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// readTextSafe reads at most maxReadBytes from path, replacing invalid
// UTF-8 sequences. Any read failure yields an empty string: an unreadable
// README is treated as having no content, never as an error.
func readTextSafe(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxReadBytes))
	if err != nil {
		return ""
	}
	return strings.ToValidUTF8(string(data), "�")
}

// ExtractHeadings parses Markdown text into its ordered sequence of
// normalized heading strings. Each heading has backticks stripped (their
// enclosed text kept), internal whitespace runs collapsed to single spaces,
// and is trimmed and lowercased. Document order is preserved and duplicates
// are kept.
func ExtractHeadings(markdown string) []string {
	headings := []string{}
	for _, line := range strings.Split(markdown, "\n") {
		m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		h := backtickRun.ReplaceAllString(m[1], "")
		h = whitespaceRun.ReplaceAllString(h, " ")
		headings = append(headings, strings.ToLower(strings.TrimSpace(h)))
	}
	return headings
}
