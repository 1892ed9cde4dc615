package commitmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConventional(t *testing.T) {
	tests := []struct {
		name          string
		message       string
		types         []string
		optionalScope bool
		want          bool
	}{
		{"simple fix", "fix: bug fix", []string{"feat", "fix"}, true, true},
		{"no type prefix", "invalid subject", []string{"feat"}, true, false},
		{"scope satisfies mandatory policy", "fix(scope): subject", []string{"fix"}, false, true},
		{"missing scope under mandatory policy", "fix: subject", []string{"fix"}, false, false},
		{"breaking marker", "feat!: important change", []string{"feat"}, true, true},
		{"scope and breaking marker", "feat(module)!: important `abcd` change", []string{"feat"}, true, true},
		{"implicit fix with feat-only vocabulary", "fix: bug fix", []string{"feat"}, true, true},
		{"implicit feat with fix-only vocabulary", "feat: new thing", []string{"fix"}, true, true},
		{"empty vocabulary keeps mandatory types", "feat: new thing", nil, true, true},
		{"custom type", "infra: bump cluster size", []string{"infra"}, true, true},
		{"type not in vocabulary", "perf: faster", []string{"feat"}, true, false},
		{"uppercase type", "Fix: bug fix", []string{"fix"}, true, false},
		{"empty subject", "fix:", []string{"fix"}, true, false},
		{"no space after colon", "fix:bug", []string{"fix"}, true, false},
		{"multi-line body", "feat: new feature\n\nlonger description\nover two lines\n", []string{"feat"}, true, true},
		{"breaking changes footer", "feat: new feature\n\nBREAKING CHANGES: drops the v1 API", []string{"feat"}, true, true},
		{"bad header with footer", "invalid: not valid\n\nBREAKING CHANGES: drops the v1 API", nil, true, false},
		{"scope with slash and dash", "fix(api/v2-beta): handle timeout", []string{"fix"}, true, true},
		{"empty message", "", nil, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsConventional(tt.message, tt.types, tt.optionalScope)
			assert.Equal(t, tt.want, got, "message %q", tt.message)
		})
	}
}

func TestIsConventional_SpecialCommitsAlwaysFail(t *testing.T) {
	messages := []string{
		"Merged in feature1",
		"Merge branch 'develop'",
		"This reverts commit abc123",
		// Even a conforming header is exempted once a marker appears.
		"fix: oops\n\nThis reverts commit abc123.",
	}

	for _, msg := range messages {
		assert.False(t, IsConventional(msg, []string{"fix"}, true), "message %q", msg)
		assert.False(t, IsConventional(msg, nil, false), "message %q", msg)
	}
}
