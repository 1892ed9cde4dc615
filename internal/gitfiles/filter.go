package gitfiles

import (
	"path"
	"strings"
)

// UnderAny reports whether p equals one of the prefixes or lies inside one
// of them. Containment is lexical on slash-separated paths, the form git
// emits.
func UnderAny(p string, prefixes []string) bool {
	cp := path.Clean(p)
	for _, prefix := range prefixes {
		cpre := path.Clean(prefix)
		if cp == cpre || strings.HasPrefix(cp, cpre+"/") {
			return true
		}
		if cpre == "/" && strings.HasPrefix(cp, "/") {
			return true
		}
	}
	return false
}

// FilterByPrefixes returns the paths that fall under any of the given
// prefixes, preserving input order.
func FilterByPrefixes(paths, prefixes []string) []string {
	var out []string
	for _, p := range paths {
		if UnderAny(p, prefixes) {
			out = append(out, p)
		}
	}
	return out
}
