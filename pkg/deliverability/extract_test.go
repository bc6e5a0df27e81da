package deliverability

import "testing"

func TestExtractContent(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		textLen int
		images  int
		flex    bool
		media   bool
	}{
		{"PlainParagraph", "<p>Hello</p>", 5, 0, false, false},
		{"WhitespaceTrimmed", "  <p>  Hi  </p>  ", 2, 0, false, false},
		{"CaseInsensitiveImages", `<IMG src="a"><img src="b">`, 0, 2, false, false},
		{"FlexMarker", `<div style="display: flex">x</div>`, 1, 0, true, false},
		{"AbsoluteMarker", `<div style="position: absolute">x</div>`, 1, 0, true, false},
		{"FixedMarker", `<div style="position: fixed">x</div>`, 1, 0, true, false},
		{"FlexboxWord", `<p>uses flexbox layout</p>`, 19, 0, true, false},
		{"VideoTag", `<VIDEO src="v.mp4"></VIDEO>`, 0, 0, false, true},
		{"AudioTag", `<audio controls></audio>`, 0, 0, false, true},
		{"NonHTML", "just some text", 14, 0, false, false},
		{"Empty", "", 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractContent(tt.markup)
			if got.PlainTextLength != tt.textLen {
				t.Errorf("PlainTextLength = %d, want %d", got.PlainTextLength, tt.textLen)
			}
			if got.ImageCount != tt.images {
				t.Errorf("ImageCount = %d, want %d", got.ImageCount, tt.images)
			}
			if got.HasFlexOrAbsoluteCSS != tt.flex {
				t.Errorf("HasFlexOrAbsoluteCSS = %v, want %v", got.HasFlexOrAbsoluteCSS, tt.flex)
			}
			if got.HasMediaTags != tt.media {
				t.Errorf("HasMediaTags = %v, want %v", got.HasMediaTags, tt.media)
			}
		})
	}
}

func TestCountImagesWithoutAlt(t *testing.T) {
	tests := []struct {
		markup string
		want   int
	}{
		{`<img src="a.png">`, 1},
		{`<img src="a.png" alt="described">`, 0},
		{`<img src="a.png" alt="">`, 0},
		{`<img src="a"><img src="b" alt="x"><IMG src="c">`, 2},
		{``, 0},
	}
	for _, tt := range tests {
		if got := countImagesWithoutAlt(tt.markup); got != tt.want {
			t.Errorf("countImagesWithoutAlt(%q) = %d, want %d", tt.markup, got, tt.want)
		}
	}
}
