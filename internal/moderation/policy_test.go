package moderation

import (
	"testing"

	"github.com/gracechapel/church-backend/internal/models"
)

func TestDecideStatus(t *testing.T) {
	tests := []struct {
		name  string
		risk  int
		trust int
		want  string
	}{
		{"high risk no trust", 60, 0, models.StatusQuarantine},
		{"trust offsets risk", 60, 25, models.StatusPublic},
		{"boundary is inclusive", 60, 20, models.StatusQuarantine},
		{"low risk", 10, 0, models.StatusPublic},
		{"exactly at margin", 40, 0, models.StatusQuarantine},
		{"just under margin", 39, 0, models.StatusPublic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecideStatus(tt.risk, tt.trust); got != tt.want {
				t.Fatalf("DecideStatus(%d, %d) = %q, want %q", tt.risk, tt.trust, got, tt.want)
			}
		})
	}
}

func TestShouldHide(t *testing.T) {
	tests := []struct {
		name    string
		reports int
		status  string
		want    bool
	}{
		{"below threshold", 2, models.StatusPublic, false},
		{"at threshold", 3, models.StatusPublic, true},
		{"above threshold", 5, models.StatusQuarantine, true},
		{"already hidden", 4, models.StatusHidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldHide(tt.reports, tt.status); got != tt.want {
				t.Fatalf("ShouldHide(%d, %q) = %v, want %v", tt.reports, tt.status, got, tt.want)
			}
		})
	}
}
