// ABOUTME: Fuzzy option filtering for building menus over long lists
// ABOUTME: Matches against option names and returns best matches first

package selection

import "github.com/sahilm/fuzzy"

// Filter narrows options to those whose names fuzzy-match pattern,
// ordered best match first. The empty pattern returns the options
// unchanged.
func Filter(pattern string, options []Option) []Option {
	if pattern == "" {
		return options
	}

	names := make([]string, len(options))
	for i, o := range options {
		names[i] = o.Name
	}

	matches := fuzzy.Find(pattern, names)
	out := make([]Option, len(matches))
	for i, match := range matches {
		out[i] = options[match.Index]
	}
	return out
}
