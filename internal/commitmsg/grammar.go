package commitmsg

import (
	"slices"
	"strings"
)

// mandatoryTypes are the two commit types required by the Conventional
// Commits specification itself; they are always part of the effective
// vocabulary.
var mandatoryTypes = []string{"feat", "fix"}

// DefaultTypes is the built-in vocabulary used when the caller supplies none.
var DefaultTypes = []string{
	// Changes to CI configuration files and scripts
	"ci",
	// Documentation only changes (readmes, inline docs, diagrams)
	"docs",
	// A new feature
	"feat",
	// A bug fix
	"fix",
	// A code change that neither fixes a bug nor adds a feature
	"ref",
	"refactor",
	// Changes that do not affect the meaning of the code (formatting)
	"style",
	// Adding missing tests or correcting existing tests
	"test",
	// Meta information in the repo changed (owner files, editor config)
	"meta",
	// Anything that does not fall under another type
	"chore",
}

// ConventionalTypes returns types with "feat" and "fix" merged in.
// Entries already present are not duplicated; missing mandatory types are
// prepended so an empty vocabulary yields exactly [feat fix].
func ConventionalTypes(types []string) []string {
	out := make([]string, 0, len(types)+len(mandatoryTypes))
	for _, t := range mandatoryTypes {
		if !slices.Contains(types, t) {
			out = append(out, t)
		}
	}
	return append(out, types...)
}

// TypesPattern joins types with "|" to form the regex alternation for the
// header's type field. Order is preserved.
func TypesPattern(types []string) string {
	return strings.Join(types, "|")
}

// ScopePattern returns the regex for a parenthesized (scope) after the type.
// When optional is true the group carries a trailing "?".
func ScopePattern(optional bool) string {
	p := `(\([\w /:-]+\))`
	if optional {
		p += "?"
	}
	return p
}

// delimPattern matches the colon delimiter with its optional breaking-change
// marker. The "!" is allowed regardless of scope policy.
const delimPattern = `!?:`

// subjectPattern matches the subject plus any body and footers. With the
// dot-matches-newline flag set it swallows the rest of the message.
const subjectPattern = ` .+`

// Pattern assembles the full anchored grammar for a conventional commit
// message. The (?s) flag makes "." span line breaks so multi-line bodies
// match, and ^/$ anchor the whole message.
func Pattern(types []string, optionalScope bool) string {
	return `(?s)^(` + TypesPattern(ConventionalTypes(types)) + `)` +
		ScopePattern(optionalScope) + delimPattern + subjectPattern + `$`
}
