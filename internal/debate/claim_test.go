package debate

import (
	"strings"
	"testing"
)

func TestExtractClaim(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		locale Locale
		want   string
	}{
		{
			name:   "single clause",
			text:   "AI will transform society",
			locale: LocaleEN,
			want:   "AI will transform society",
		},
		{
			name:   "longest clause wins",
			text:   "Sure. But renewable energy is the only viable path for the entire grid! Right?",
			locale: LocaleEN,
			want:   "But renewable energy is the only viable path for the entire grid",
		},
		{
			name:   "filler stripped",
			text:   "I think school is a waste of time",
			locale: LocaleEN,
			want:   "school is a waste of time",
		},
		{
			name:   "spanish filler stripped",
			text:   "creo que la escuela es fundamental",
			locale: LocaleES,
			want:   "la escuela es fundamental",
		},
		{
			name:   "empty falls back",
			text:   "...",
			locale: LocaleEN,
			want:   "your point",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractClaim(tt.text, tt.locale); got != tt.want {
				t.Errorf("ExtractClaim(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractClaimCapsLength(t *testing.T) {
	long := strings.Repeat("endless rambling ", 30) // 510 chars, one clause
	got := ExtractClaim(long, LocaleEN)
	if len(got) > claimMaxLen+4 {
		t.Errorf("ExtractClaim() length = %d, want <= %d", len(got), claimMaxLen+4)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("ExtractClaim() = %q, want ellipsis suffix", got)
	}
}

func TestWantsExample(t *testing.T) {
	tests := []struct {
		text   string
		locale Locale
		want   bool
	}{
		{"give me an example", LocaleEN, true},
		{"can you show examples?", LocaleEN, true},
		{"I disagree completely", LocaleEN, false},
		{"dame un ejemplo", LocaleES, true},
		{"no estoy de acuerdo", LocaleES, false},
	}
	for _, tt := range tests {
		if got := WantsExample(tt.text, tt.locale); got != tt.want {
			t.Errorf("WantsExample(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
