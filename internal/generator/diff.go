package generator

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders the difference between the file on disk and the freshly
// generated content, for check mode. It returns "" when they match.
func Diff(existing, generated string) string {
	if existing == generated {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(existing, generated, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
