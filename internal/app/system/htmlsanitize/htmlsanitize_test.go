package htmlsanitize

import (
	"strings"
	"testing"
)

func TestContent_StripsScripts(t *testing.T) {
	in := `<p>hello</p><script>alert("x")</script>`
	got := Content(in)

	if strings.Contains(got, "script") {
		t.Errorf("Content(%q) = %q, script tag survived", in, got)
	}
	if !strings.Contains(got, "<p>hello</p>") {
		t.Errorf("Content(%q) = %q, paragraph was dropped", in, got)
	}
}

func TestContent_KeepsLinks(t *testing.T) {
	in := `<a href="https://example.com">link</a>`
	got := Content(in)

	if !strings.Contains(got, "href") {
		t.Errorf("Content(%q) = %q, link href was dropped", in, got)
	}
}

func TestContent_DropsEventHandlers(t *testing.T) {
	in := `<img src="x.png" onerror="alert(1)">`
	got := Content(in)

	if strings.Contains(got, "onerror") {
		t.Errorf("Content(%q) = %q, event handler survived", in, got)
	}
}

func TestPlain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain title", "plain title"},
		{"<b>bold</b> title", "bold title"},
		{"  spaced  ", "spaced"},
		{`<script>x</script>title`, "title"},
	}

	for _, tt := range tests {
		if got := Plain(tt.input); got != tt.want {
			t.Errorf("Plain(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
