package recipes

import "strings"

// FilterOptions selects a subset of recipes. Empty fields match everything.
type FilterOptions struct {
	Difficulties []string
	Meals        []string
	// FreeWords must all appear, case-insensitively, in the title or
	// the bundle name.
	FreeWords string
}

func containsAny(hay string, needles []string) bool {
	hay = strings.ToLower(hay)
	for _, n := range needles {
		if strings.Contains(hay, strings.ToLower(strings.TrimSpace(n))) {
			return true
		}
	}
	return false
}

// Match reports whether p passes every filter in opt.
func (opt FilterOptions) Match(p Page) bool {
	if len(opt.Difficulties) > 0 && !containsAny(p.Difficulty, opt.Difficulties) {
		return false
	}
	if len(opt.Meals) > 0 && !containsAny(p.Meal, opt.Meals) {
		return false
	}
	for _, k := range strings.Fields(opt.FreeWords) {
		k = strings.ToLower(k)
		if !strings.Contains(strings.ToLower(p.Title), k) &&
			!strings.Contains(strings.ToLower(p.Bundle), k) {
			return false
		}
	}
	return true
}
