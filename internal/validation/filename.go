package validation

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var filenameStripRe = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename reduces name to a flat ASCII filename safe to join onto a
// directory. Accents are folded, separators become underscores and leading
// or trailing dots and underscores are removed. The result may be empty.
func SecureFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var b strings.Builder
	for _, r := range decomposed {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}

	ascii := strings.NewReplacer("/", " ", "\\", " ").Replace(b.String())
	joined := strings.Join(strings.Fields(ascii), "_")
	return strings.Trim(filenameStripRe.ReplaceAllString(joined, ""), "._")
}
