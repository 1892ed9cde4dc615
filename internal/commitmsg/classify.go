package commitmsg

import "regexp"

// IsConventional reports whether message follows conventional commits
// formatting (https://www.conventionalcommits.org) for the given type
// vocabulary and scope policy. Merge and revert commits never classify as
// conventional. Matching is case-sensitive over the entire message.
func IsConventional(message string, types []string, optionalScope bool) bool {
	if IsSpecialCommit(message) {
		return false
	}

	re, err := regexp.Compile(Pattern(types, optionalScope))
	if err != nil {
		// A vocabulary entry that breaks the pattern cannot match anything.
		return false
	}
	return re.MatchString(message)
}
