package slug

import "testing"

func TestDerive(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Minha Empresa", "minha-empresa"},
		{"Café São Paulo", "cafe-sao-paulo"},
		{"  Leading and Trailing  ", "leading-and-trailing"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"Silva & Filhos Ltda.", "silva-filhos-ltda"},
		{"already-hyphenated name", "alreadyhyphenated-name"},
		{"123 Numbers First", "123-numbers-first"},
		{"UPPER case", "upper-case"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Derive(tt.input)
			if got != tt.want {
				t.Errorf("Derive(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDerive_OutputShape(t *testing.T) {
	names := []string{
		"Café São Paulo",
		"  A  B  C  ",
		"Señor Müller's Blog!",
		"  --  weird -- input --  ",
	}
	for _, name := range names {
		got := Derive(name)
		if got == "" {
			continue
		}
		if !Pattern.MatchString(got) {
			t.Errorf("Derive(%q) = %q, contains characters outside [a-z0-9-]", name, got)
		}
		if got[0] == '-' || got[len(got)-1] == '-' {
			t.Errorf("Derive(%q) = %q, has leading or trailing hyphen", name, got)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"minha-empresa", true},
		{"abc", true},
		{"a1-b2-c3", true},
		{"", false},
		{"Has-Upper", false},
		{"with space", false},
		{"acentuação", false},
		{"under_score", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.slug); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.slug, got, tt.want)
		}
	}
}
