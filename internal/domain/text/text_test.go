package text

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"simple tags", "<p>hello</p>", "hello"},
		{"nested tags", "<div><b>bold</b> and <i>italic</i></div>", "bold and italic"},
		{"tag becomes space", "line<br>break", "line break"},
		{"collapses whitespace", "a \n\t b", "a b"},
		{"trims", "  <p> padded </p>  ", "padded"},
		{"empty", "", ""},
		{"attributes", `<a href="/x">link</a>`, "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.in); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripHTML_Idempotent(t *testing.T) {
	in := "<p>hello <b>there</b></p>"
	once := StripHTML(in)
	if twice := StripHTML(once); twice != once {
		t.Errorf("expected idempotence, got %q then %q", once, twice)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"within limit", "short", 10, "short"},
		{"exactly at limit", "12345", 5, "12345"},
		{"over limit", "123456", 5, "1234…"},
		{"trims trailing space before ellipsis", "abc  xyz", 6, "abc…"},
		{"zero limit is no-op", "anything", 0, "anything"},
		{"multibyte runes", "øøøøøø", 5, "øøøø…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncate_Idempotent(t *testing.T) {
	in := "a fairly long string that needs cutting"
	for limit := 2; limit < 15; limit++ {
		once := Truncate(in, limit)
		if twice := Truncate(once, limit); twice != once {
			t.Errorf("limit %d: expected idempotence, got %q then %q", limit, once, twice)
		}
	}
}

func TestTruncate_NeverExceedsLimit(t *testing.T) {
	in := "a long string that will be cut somewhere in the middle"
	for limit := 1; limit < 20; limit++ {
		got := Truncate(in, limit)
		if n := len([]rune(got)); n > limit {
			t.Errorf("limit %d: output has %d runes", limit, n)
		}
	}
}
