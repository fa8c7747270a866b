package render

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{"plain", ModePlain, true},
		{"ANSI", ModeANSI, true},
		{" screen ", ModeScreen, true},
		{"", ModePlain, false},
		{"sixel", ModePlain, false},
	}

	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMode(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}

	for _, m := range []Mode{ModePlain, ModeANSI, ModeScreen} {
		if got, ok := ParseMode(m.String()); !ok || got != m {
			t.Errorf("ParseMode(%v.String()) = (%v, %v)", m, got, ok)
		}
	}
}

func TestDetectCapabilities(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		override string
		want     Mode
	}{
		{"xterm", "xterm-256color", "", ModeANSI},
		{"Dumb terminal", "dumb", "", ModePlain},
		{"No TERM", "", "", ModePlain},
		{"Override to screen", "dumb", "screen", ModeScreen},
		{"Override to plain", "xterm", "plain", ModePlain},
		{"Unknown override ignored", "xterm", "bogus", ModeANSI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TERM", tt.term)
			t.Setenv("MATR_TERMINAL_MODE", tt.override)

			caps := DetectCapabilities()
			if caps.Mode != tt.want {
				t.Errorf("Mode = %v, want %v", caps.Mode, tt.want)
			}
			if caps.Name != tt.term {
				t.Errorf("Name = %q, want %q", caps.Name, tt.term)
			}
		})
	}
}

func TestDetectUTF8Locale(t *testing.T) {
	tests := []struct {
		name                 string
		lcAll, lcCtype, lang string
		want                 bool
	}{
		{"LANG UTF-8", "", "", "en_US.UTF-8", true},
		{"Lowercase utf8", "", "", "C.utf8", true},
		{"Modifier", "", "", "de_DE.UTF-8@euro", true},
		{"LC_ALL wins", "C", "", "en_US.UTF-8", false},
		{"LC_CTYPE", "", "en_GB.UTF-8", "C", true},
		{"Nothing set", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LC_CTYPE", tt.lcCtype)
			t.Setenv("LANG", tt.lang)

			if got := detectUTF8Locale(); got != tt.want {
				t.Errorf("detectUTF8Locale() = %v, want %v", got, tt.want)
			}
		})
	}
}
