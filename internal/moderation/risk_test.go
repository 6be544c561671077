package moderation

import "testing"

func TestScoreRiskCleanText(t *testing.T) {
	score := ScoreRisk("Please pray for my family during this difficult time.", nil)
	if score != 0 {
		t.Fatalf("clean text scored %d, want 0", score)
	}
}

func TestScoreRiskMashingAndLinks(t *testing.T) {
	// Keyboard mashing plus two links: 25 + 25, and more from the
	// character allow-list rule. Must be at least 50.
	score := ScoreRisk("aaaaaaaaaaaaaaabcdfgh http://a.com http://b.com", nil)
	if score < 50 {
		t.Fatalf("mashing + links scored %d, want >= 50", score)
	}
}

func TestScoreRiskSignals(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "single link is allowed",
			text: "We are collecting donations at https://example.org for the food bank this month",
			want: 10, // allow-list only (":" and "/" are outside it)
		},
		{
			name: "two links",
			text: "visit http://spam.example and also http://more.example for great deals today friends",
			want: 35, // link spam + allow-list
		},
		{
			name: "anchor fragment",
			text: "check this out <a href='http://x.example'>click</a> thanks everyone and goodbye",
			want: 35, // link spam + allow-list
		},
		{
			name: "short text",
			text: "pray for me",
			want: 10,
		},
		{
			name: "short text with emoji",
			text: "pray for me \U0001F64F",
			want: 20, // short + allow-list
		},
		{
			name: "keyboard mashing",
			text: "asdfghjklqwertyzxcvb this is my urgent prayer request thank you",
			want: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreRisk(tt.text, nil); got != tt.want {
				t.Fatalf("ScoreRisk(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestScoreRiskNearDuplicateHistory(t *testing.T) {
	text := "Please pray for my family during this difficult time."
	history := []string{"Please pray for my family during this difficult time."}

	score := ScoreRisk(text, history)
	if score != nearDuplicateWeight {
		t.Fatalf("near-duplicate scored %d, want %d", score, nearDuplicateWeight)
	}
}

func TestScoreRiskNearDuplicateFiresOnce(t *testing.T) {
	text := "Please pray for my family during this difficult time."
	history := []string{text, text, text}

	score := ScoreRisk(text, history)
	if score != nearDuplicateWeight {
		t.Fatalf("repeated history matches scored %d, want %d", score, nearDuplicateWeight)
	}
}

func TestScoreRiskUnrelatedHistory(t *testing.T) {
	text := "Please pray for my family during this difficult time."
	history := []string{"Praise report, my surgery went well and recovery is on track."}

	if score := ScoreRisk(text, history); score != 0 {
		t.Fatalf("unrelated history scored %d, want 0", score)
	}
}
