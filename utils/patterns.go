package utils

import (
	"path/filepath"
	"regexp"
)

// pattern holds one user-supplied filter. The raw form is tried as a glob
// against the base name; when it also compiles as a regex it is tried
// against the full path.
type pattern struct {
	glob string
	re   *regexp.Regexp
}

func (p pattern) matches(path string) bool {
	if matched, _ := filepath.Match(p.glob, filepath.Base(path)); matched {
		return true
	}
	return p.re != nil && p.re.MatchString(path)
}

type PatternMatcher struct {
	include []pattern
	exclude []pattern
}

func NewPatternMatcher(includePatterns, excludePatterns []string) *PatternMatcher {
	return &PatternMatcher{
		include: compilePatterns(includePatterns),
		exclude: compilePatterns(excludePatterns),
	}
}

// ShouldInclude reports whether path passes the include list (when present)
// and is not rejected by the exclude list. A nil matcher accepts everything.
func (m *PatternMatcher) ShouldInclude(path string) bool {
	if m == nil {
		return true
	}
	if len(m.include) > 0 && !anyMatch(m.include, path) {
		return false
	}
	if len(m.exclude) > 0 && anyMatch(m.exclude, path) {
		return false
	}
	return true
}

func anyMatch(patterns []pattern, path string) bool {
	for _, p := range patterns {
		if p.matches(path) {
			return true
		}
	}
	return false
}

func compilePatterns(raw []string) []pattern {
	compiled := make([]pattern, 0, len(raw))
	for _, r := range raw {
		p := pattern{glob: r}
		if re, err := regexp.Compile(r); err == nil {
			p.re = re
		}
		compiled = append(compiled, p)
	}
	return compiled
}
