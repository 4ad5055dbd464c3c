package service

import "strings"

// IsValidAnswer applies local heuristics against degenerate free-text answers:
// runs of 3+ identical characters, answers under 10 characters, and
// repeated-word spam. It mirrors the gibberish instruction embedded in the
// scoring prompt; it does not gate the scoring call.
func IsValidAnswer(answer string) bool {
	if hasRepeatedRun(answer, 3) {
		return false
	}

	if len(strings.TrimSpace(answer)) < 10 {
		return false
	}

	words := strings.Fields(strings.ToLower(answer))
	if len(words) > 5 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		if float64(len(unique)) < float64(len(words))*0.3 {
			return false
		}
	}

	return true
}

// hasRepeatedRun reports whether s contains n or more identical consecutive
// runes.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
