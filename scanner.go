package censor

import (
	"regexp"
)

// maxExcludePatterns bounds the number of exclude patterns per processor.
const maxExcludePatterns = 50

// scanner redacts sensitive substrings inside otherwise visible text.
type scanner struct {
	patterns  []*regexp.Regexp
	maskValue string
}

// newScanner compiles the exclude patterns in order.
// The first pattern that fails to compile aborts construction.
func newScanner(patterns []string, maskValue string) (*scanner, error) {
	if len(patterns) > maxExcludePatterns {
		return nil, newConfigError(ErrTooManyPatterns, "exclude-patterns", "", nil)
	}

	s := &scanner{
		patterns:  make([]*regexp.Regexp, 0, len(patterns)),
		maskValue: maskValue,
	}

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, newConfigError(ErrInvalidPattern, "exclude-patterns", pattern, err)
		}
		s.patterns = append(s.patterns, re)
	}

	return s, nil
}

// scrub replaces every non-overlapping match of each pattern with the mask
// token. Patterns apply in declaration order, each to the output of the
// previous one. The mask token is inserted literally.
func (s *scanner) scrub(text string) string {
	if s == nil || text == "" {
		return text
	}

	for _, re := range s.patterns {
		text = re.ReplaceAllLiteralString(text, s.maskValue)
	}

	return text
}

// sources returns the original pattern strings.
func (s *scanner) sources() []string {
	out := make([]string, len(s.patterns))
	for i, re := range s.patterns {
		out[i] = re.String()
	}
	return out
}
