package content

import (
	"strings"
	"testing"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"heading ids", "## 選び方のポイント\n", []string{"<h2", "選び方のポイント</h2>"}},
		{"ascii heading id", "# Cooling Wear\n", []string{`<h1 id="cooling-wear">Cooling Wear</h1>`}},
		{"image", "Hello ![a](x.png)", []string{`<img src="x.png" alt="a"`}},
		{"raw html passthrough", "<div class=\"note\">注意</div>\n", []string{`<div class="note">注意</div>`}},
		{"gfm table", "| a | b |\n|---|---|\n| 1 | 2 |\n", []string{"<table>", "<td>1</td>"}},
		{"gfm strikethrough", "~~old~~", []string{"<del>old</del>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render([]byte(tt.in))
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output %q does not contain %q", got, w)
				}
			}
		})
	}
}

func TestRenderer_Empty(t *testing.T) {
	got, err := NewRenderer().Render(nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
