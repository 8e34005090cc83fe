package debate

import "testing"

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Locale
	}{
		{"spanish diacritics", "¿Qué opinas de la tecnología?", LocaleES},
		{"spanish marker words", "creo que la tecnologia es lo mejor para todos", LocaleES},
		{"english marker words", "I think that technology will change everything", LocaleEN},
		{"spanish pattern phrase", "inteligencia artificial cambiara el mundo", LocaleES},
		{"no signal defaults to english", "AI 2030", LocaleEN},
		{"empty defaults to english", "", LocaleEN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLocale(tt.text); got != tt.want {
				t.Errorf("DetectLocale(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectLocaleDiacriticsWinOverEnglishWords(t *testing.T) {
	// English marker words outnumber Spanish ones, but the diacritic
	// decides first.
	text := "I think you should know that él no vendrá"
	if got := DetectLocale(text); got != LocaleES {
		t.Errorf("DetectLocale(%q) = %q, want %q", text, got, LocaleES)
	}
}

func TestStableIndexDeterministic(t *testing.T) {
	first := stableIndex("coffee|tea", 10, "")
	for i := 0; i < 100; i++ {
		if got := stableIndex("coffee|tea", 10, ""); got != first {
			t.Fatalf("stableIndex() = %d on run %d, want %d", got, i, first)
		}
	}
	if first < 0 || first >= 10 {
		t.Errorf("stableIndex() = %d, want in [0,10)", first)
	}
}

func TestStableIndexSaltChangesResult(t *testing.T) {
	// Not guaranteed for every key, but this pair is known to differ.
	a := stableIndex("coffee|tea", 1000, "")
	b := stableIndex("coffee|tea", 1000, "axis")
	if a == b {
		t.Errorf("stableIndex with different salts both = %d", a)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Coffee vs. Tea!", "coffee vs tea"},
		{"  spaced   out  ", "spaced out"},
		{"MiXeD-CaSe_123", "mixed case 123"},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
