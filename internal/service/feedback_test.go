package service

import "testing"

func TestGenerateFeedbackBands(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{0, "0-3"},
		{3, "0-3"},
		{4, "4-6"},
		{6, "4-6"},
		{7, "7-8"},
		{8, "7-8"},
		{9, "9-10"},
		{10, "9-10"},
	}

	for _, tc := range cases {
		got := GenerateFeedback(tc.total)
		if got.Range != tc.want {
			t.Errorf("GenerateFeedback(%d) range = %q, want %q", tc.total, got.Range, tc.want)
		}
		if got.Message == "" {
			t.Errorf("GenerateFeedback(%d) has empty message", tc.total)
		}
	}
}

func TestGenerateFeedbackCoversDomainWithoutGaps(t *testing.T) {
	for total := 0; total <= 10; total++ {
		if GenerateFeedback(total).Range == "" {
			t.Errorf("no band for total %d", total)
		}
	}
}
