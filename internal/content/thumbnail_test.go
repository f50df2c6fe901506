package content

import "testing"

func TestInferThumbnail(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		body     string
		want     string
	}{
		{"explicit wins", "/images/cover.jpg", "![a](x.png)", "/images/cover.jpg"},
		{"markdown image", "", "Hello ![a](x.png) and ![b](y.png)", "x.png"},
		{"html image", "", `text <img class="hero" src="/img/hero.webp" alt="">`, "/img/hero.webp"},
		{"html before markdown", "", `<img src="first.png"> then ![b](second.png)`, "first.png"},
		{"markdown before html", "", `![a](first.png) then <img src="second.png">`, "first.png"},
		{"markdown title stripped", "", `![a](x.png "caption")`, "x.png"},
		{"single quoted src", "", `<IMG SRC='upper.gif'>`, "upper.gif"},
		{"no images", "", "plain text with [a link](page.html)", ""},
		{"blank explicit ignored", "   ", "![a](x.png)", "x.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferThumbnail(tt.explicit, []byte(tt.body)); got != tt.want {
				t.Fatalf("InferThumbnail() = %q, want %q", got, tt.want)
			}
		})
	}
}
