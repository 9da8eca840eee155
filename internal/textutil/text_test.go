package textutil

import (
	"strings"
	"testing"
)

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text passes through",
			in:   "Fuel queues reported in Colombo",
			want: "Fuel queues reported in Colombo",
		},
		{
			name: "tags removed",
			in:   "<p>Heavy <b>rainfall</b> expected</p>",
			want: "Heavy rainfall expected",
		},
		{
			name: "script content dropped",
			in:   `<div>power cut</div><script>alert("flood")</script>`,
			want: "power cut",
		},
		{
			name: "style content dropped",
			in:   `<style>.flood { color: red }</style><span>landslide warning</span>`,
			want: "landslide warning",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleText(tt.in); got != tt.want {
				t.Errorf("VisibleText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("short text", 500); got != "short text" {
		t.Errorf("Excerpt() = %q, want input unchanged", got)
	}

	long := strings.Repeat("colombo ", 100)
	got := Excerpt(long, 50)
	if n := len([]rune(got)); n > 51 {
		t.Errorf("excerpt is %d runes, want at most 51", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated excerpt %q missing ellipsis", got)
	}
	if strings.HasSuffix(strings.TrimSuffix(got, "…"), "colomb") {
		t.Errorf("excerpt %q cut mid-word", got)
	}
}

func TestExcerptTrimsWhitespace(t *testing.T) {
	if got := Excerpt("  padded  ", 500); got != "padded" {
		t.Errorf("Excerpt() = %q, want trimmed", got)
	}
}
