package textstat

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// ---------------------------------------------------------------------------
// TestCountWords - CJK-aware word counting
// ---------------------------------------------------------------------------

func TestCountWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"two latin runs", "Hello world", 2},
		{"single run with case change", "HelloWorld", 1},
		{"CJK then latin", "你好world", 3},
		{"latin then CJK closes run", "world你好", 4},
		{"digits do not count", "123 456", 0},
		{"digits split runs", "abc1def", 2},
		{"punctuation splits runs", "don't", 2},
		{"ideograph range end", "龻", 1},
		{"outside ideograph range", "龼", 0},
		{"accented latin", "café naïve", 2},
		{"whitespace only", " \t\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CountWords(tt.text); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReadingTime - Ceiling division over reading speed
// ---------------------------------------------------------------------------

func TestReadingTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{1, 1},
		{199, 1},
		{200, 1},
		{201, 2},
		{400, 2},
		{-5, 0},
	}

	for _, tt := range tests {
		if got := ReadingTime(tt.words); got != tt.want {
			t.Errorf("ReadingTime(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestReadingTimeAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words int
		wpm   int
		want  int
	}{
		{"custom speed", 250, 100, 3},
		{"exact multiple", 300, 100, 3},
		{"zero speed uses default", 201, 0, 2},
		{"negative speed uses default", 200, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ReadingTimeAt(tt.words, tt.wpm); got != tt.want {
				t.Errorf("ReadingTimeAt(%d, %d) = %d, want %d", tt.words, tt.wpm, got, tt.want)
			}
		})
	}
}

func TestFormatReadingTime(t *testing.T) {
	t.Parallel()

	if got := FormatReadingTime(3); got != "3 min" {
		t.Errorf("FormatReadingTime(3) = %q, want %q", got, "3 min")
	}
	if got := FormatReadingTime(0); got != "0 min" {
		t.Errorf("FormatReadingTime(0) = %q, want %q", got, "0 min")
	}
}

// ---------------------------------------------------------------------------
// TestStripTags - Tag removal without entity decoding
// ---------------------------------------------------------------------------

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "no tags", "no tags"},
		{"nested", "<p>Hello <strong>world</strong></p>", "Hello world"},
		{"attributes", `<a href="/x" title="y">link</a>`, "link"},
		{"entities kept", "<p>a &amp; b</p>", "a &amp; b"},
		{"self closing", "line<br />next", "linenext"},
		{"unterminated", "a < b", "a < b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripTags(tt.html); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.html, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAbstract - Threshold and punctuation boundary
// ---------------------------------------------------------------------------

func TestAbstract(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 150)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty",
			text: "",
			want: "",
		},
		{
			name: "short text returned whole",
			text: "Short, sweet.",
			want: "Short, sweet.",
		},
		{
			name: "punctuation before threshold kept",
			text: strings.Repeat("a", 10) + "." + strings.Repeat("b", 10),
			want: strings.Repeat("a", 10) + "." + strings.Repeat("b", 10),
		},
		{
			name: "cut at first punctuation after threshold",
			text: long + ". tail",
			want: long,
		},
		{
			name: "cut exactly at threshold",
			text: strings.Repeat("a", 140) + ",rest",
			want: strings.Repeat("a", 140),
		},
		{
			name: "no punctuation after threshold",
			text: long + " tail",
			want: long + " tail",
		},
		{
			name: "whitespace replaced per code point",
			text: "a\n\tb",
			want: "a  b",
		},
		{
			name: "CJK punctuation",
			text: strings.Repeat("字", 140) + "，后续",
			want: strings.Repeat("字", 140),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Abstract(tt.text); got != tt.want {
				t.Errorf("Abstract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAbstract_Properties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		strings.Repeat("word ", 60) + "end. more words here.",
		strings.Repeat("万古长空，一朝风月。", 30),
		strings.Repeat("x", 300),
	}

	for _, in := range inputs {
		got := Abstract(in)
		if utf8.RuneCountInString(got) > utf8.RuneCountInString(in) {
			t.Errorf("abstract longer than input: %d > %d", utf8.RuneCountInString(got), utf8.RuneCountInString(in))
		}
		if utf8.RuneCountInString(got) < utf8.RuneCountInString(in) && utf8.RuneCountInString(got) < DefaultAbstractLength {
			t.Errorf("abstract cut before threshold: %d code points", utf8.RuneCountInString(got))
		}
	}
}

func TestAbstractAt(t *testing.T) {
	t.Parallel()

	if got := AbstractAt("abc, def. ghi", 3); got != "abc" {
		t.Errorf("AbstractAt(_, 3) = %q, want %q", got, "abc")
	}
	if got := AbstractAt("abc, def", 0); got != "abc" {
		t.Errorf("AbstractAt(_, 0) = %q, want %q", got, "abc")
	}
}
