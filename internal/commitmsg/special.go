package commitmsg

import "strings"

// specialMarkers appear in commit messages generated by git itself (merges
// and reverts). The author cannot shape those messages, so they are exempt
// from the grammar.
var specialMarkers = []string{
	"Merged in ",
	"Merge branch ",
	"This reverts commit ",
}

// IsSpecialCommit reports whether message is a tool-generated merge or
// revert commit. The markers may appear anywhere in the text, not just the
// header.
func IsSpecialCommit(message string) bool {
	for _, m := range specialMarkers {
		if strings.Contains(message, m) {
			return true
		}
	}
	return false
}
