package service

import "testing"

func TestIsValidAnswerRejectsRepeatedCharacters(t *testing.T) {
	cases := []string{
		"aaaaaaaaaa",
		"well xxxx that is my answer to this question",
		"I think productivity matters a looot to me honestly",
	}
	for _, answer := range cases {
		if IsValidAnswer(answer) {
			t.Errorf("expected %q to be rejected", answer)
		}
	}
}

func TestIsValidAnswerRejectsShortAnswers(t *testing.T) {
	cases := []string{"", "yes", "ok fine", "short    "}
	for _, answer := range cases {
		if IsValidAnswer(answer) {
			t.Errorf("expected %q to be rejected", answer)
		}
	}
}

func TestIsValidAnswerRejectsRepeatedWordSpam(t *testing.T) {
	// 8 tokens, 2 distinct: ratio 0.25 < 0.3
	answer := "work rest work rest work rest work rest"
	if IsValidAnswer(answer) {
		t.Errorf("expected %q to be rejected", answer)
	}
}

func TestIsValidAnswerAcceptsWellFormedSentence(t *testing.T) {
	cases := []string{
		"I adjust my schedule and take breaks when my energy dips.",
		"Sustainable growth comes from trust, autonomy, and honest dialogue with my team.",
	}
	for _, answer := range cases {
		if !IsValidAnswer(answer) {
			t.Errorf("expected %q to be accepted", answer)
		}
	}
}

func TestIsValidAnswerAllowsFewRepeatedTokens(t *testing.T) {
	// 5 tokens or fewer never trigger the distinct-ratio rule
	answer := "not sure, not sure"
	if got := IsValidAnswer(answer); !got {
		t.Errorf("expected short repeated phrase to pass the ratio rule, got rejection")
	}
}

func TestHasRepeatedRun(t *testing.T) {
	if hasRepeatedRun("abab", 3) {
		t.Error("no run expected in abab")
	}
	if !hasRepeatedRun("abbba", 3) {
		t.Error("expected run in abbba")
	}
	if hasRepeatedRun("abba", 3) {
		t.Error("run of 2 must not trigger")
	}
}
