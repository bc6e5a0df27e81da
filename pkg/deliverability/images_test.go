package deliverability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectImages(t *testing.T) {
	t.Run("CompleteImageIsClean", func(t *testing.T) {
		issues := inspectImages(`<img src="a.png" width="600" height="400" alt="banner" style="width:100%; height:auto;">`)
		assert.Empty(t, issues)
	})

	t.Run("BareImageReportsEverything", func(t *testing.T) {
		issues := inspectImages(`<img src="a.png">`)
		require.Len(t, issues, 1)

		issue := issues[0]
		assert.Equal(t, 1, issue.Index)
		assert.Equal(t, "a.png", issue.Src)
		assert.Equal(t, []string{
			ProblemMissingWidth,
			ProblemMissingHeight,
			ProblemMissingAlt,
			ProblemMissingCSS,
		}, issue.Problems)
	})

	t.Run("AutoAndUnitValuesAreInvalid", func(t *testing.T) {
		issues := inspectImages(`<img src="a.png" width="auto" height="50px" alt="x" style="width:100%;">`)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].Problems, ProblemInvalidWidth)
		assert.Contains(t, issues[0].Problems, ProblemInvalidHeight)
		assert.NotContains(t, issues[0].Problems, ProblemMissingAlt)
	})

	t.Run("EmptyAltStillCountsAsPresent", func(t *testing.T) {
		issues := inspectImages(`<img src="a.png" alt="" width="10" height="10" style="width:100%;">`)
		assert.Empty(t, issues)
	})

	t.Run("StyleWithoutDimensionsIsFlagged", func(t *testing.T) {
		issues := inspectImages(`<img src="a.png" width="10" height="10" alt="x" style="border:0;">`)
		require.Len(t, issues, 1)
		assert.Equal(t, []string{ProblemMissingCSS}, issues[0].Problems)
	})

	t.Run("IndexCountsCleanImagesToo", func(t *testing.T) {
		markup := `<img src="one.png" width="1" height="1" alt="a" style="width:100%;">` +
			`<img src="two.png">` +
			`<img src="three.png">`
		issues := inspectImages(markup)
		require.Len(t, issues, 2)
		assert.Equal(t, 2, issues[0].Index)
		assert.Equal(t, "two.png", issues[0].Src)
		assert.Equal(t, 3, issues[1].Index)
	})

	t.Run("MalformedMarkupDoesNotPanic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			inspectImages(`<div><img src="a.png" <p>broken</div>`)
			inspectImages(`<<<<>>>>`)
			inspectImages(``)
		})
	})
}

func TestIsNumericDimension(t *testing.T) {
	valid := []string{"600", "400", "12.5", " 300 "}
	for _, v := range valid {
		assert.True(t, isNumericDimension(v), "expected %q to be numeric", v)
	}

	invalid := []string{"auto", "AUTO", "100%", "50px", "", "wide"}
	for _, v := range invalid {
		assert.False(t, isNumericDimension(v), "expected %q to be rejected", v)
	}
}
