package transpiler

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		letters string
		want    Flags
	}{
		{"empty", "", 0},
		{"single", "i", FlagIgnoreCase},
		{"all recognized", "imsxua", FlagIgnoreCase | FlagMultiline | FlagDotAll | FlagVerbose | FlagUnicode | FlagASCII},
		{"order irrelevant", "mi", FlagIgnoreCase | FlagMultiline},
		{"unrecognized ignored", "izq", FlagIgnoreCase},
		{"only unrecognized", "zqg", 0},
		{"repeated letters", "iimm", FlagIgnoreCase | FlagMultiline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFlags(tt.letters); got != tt.want {
				t.Errorf("ParseFlags(%q) = %b, want %b", tt.letters, got, tt.want)
			}
		})
	}
}

func TestFlagsLetters(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  string
	}{
		{"empty", 0, ""},
		{"ignore case", FlagIgnoreCase, "i"},
		{"fixed order", FlagUnicode | FlagIgnoreCase | FlagDotAll | FlagMultiline, "imsu"},
		{"verbose contributes no letter", FlagVerbose | FlagMultiline, "m"},
		{"ascii contributes no letter", FlagASCII | FlagDotAll, "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.Letters(); got != tt.want {
				t.Errorf("Letters() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The letter string is a pure function of the flag bits.
func TestFlagsLettersDeterministic(t *testing.T) {
	f := ParseFlags("uxsmi")
	first := f.Letters()
	for i := 0; i < 100; i++ {
		if got := f.Letters(); got != first {
			t.Fatalf("Letters() = %q on call %d, want %q", got, i, first)
		}
	}
	if first != "imsu" {
		t.Errorf("Letters() = %q, want %q", first, "imsu")
	}
}
