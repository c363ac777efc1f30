package domain

import "testing"

func TestHumanize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "tags", want: "Tags"},
		{in: "blog_post", want: "Blog post"},
		{in: "main-nav", want: "Main nav"},
		{in: "__seo__meta", want: "Seo meta"},
		{in: "  ", want: ""},
		{in: "author_id", want: "Author ID"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := Humanize(tt.in); got != tt.want {
				t.Errorf("Humanize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
