// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fields

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/style-funnel/catalog"
	"github.com/danielhkuo/style-funnel/survey"
)

func defaultQuestion(t *testing.T, id string) catalog.Question {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	q, ok := cat.Lookup(id)
	require.True(t, ok, "question %s missing from default catalog", id)
	return q
}

func TestFor_CoversEveryType(t *testing.T) {
	types := []catalog.Type{
		catalog.SingleChoice, catalog.MultipleChoice, catalog.ImageMultipleChoice,
		catalog.ColorMultipleChoice, catalog.TextMultipleChoice, catalog.Email,
		catalog.Number, catalog.Height, catalog.SizeGroup,
	}
	for _, typ := range types {
		r, ok := For(typ)
		require.True(t, ok, "no renderer for %s", typ)
		assert.Equal(t, typ == catalog.SingleChoice, r.AutoAdvance(), "AutoAdvance for %s", typ)
	}

	_, ok := For("slider")
	assert.False(t, ok)
}

func TestRender_UnsupportedType(t *testing.T) {
	html := Render(catalog.Question{ID: "x", Type: "slider"}, nil)
	assert.Contains(t, string(html), UnsupportedMessage)
}

func TestLetter(t *testing.T) {
	assert.Equal(t, "A", Letter(0))
	assert.Equal(t, "C", Letter(2))
	assert.Equal(t, "Z", Letter(25))
	assert.Equal(t, "AA", Letter(26))
	assert.Equal(t, "AB", Letter(27))
	assert.Equal(t, "BA", Letter(52))
}

func TestSingleChoice(t *testing.T) {
	q := catalog.Question{ID: "q1", Type: catalog.SingleChoice, Options: []string{"Slim", "Baggy"}}
	r, _ := For(q.Type)

	html := string(r.Render(q, survey.Text("Baggy")))
	assert.Contains(t, html, `name="choice" value="Slim"`)
	assert.Contains(t, html, ">A<")
	assert.Contains(t, html, ">B<")
	assert.Equal(t, 1, strings.Count(html, "selected"))

	answer, ok := r.Parse(q, url.Values{FieldChoice: {"Slim"}})
	require.True(t, ok)
	assert.Equal(t, survey.Text("Slim"), answer)

	_, ok = r.Parse(q, url.Values{FieldChoice: {"Skinny"}})
	assert.False(t, ok, "values outside the options are rejected")

	_, ok = r.Parse(q, url.Values{})
	assert.False(t, ok)
}

func TestMultipleChoice_Parse(t *testing.T) {
	q := catalog.Question{ID: "q4", Type: catalog.MultipleChoice, Options: []string{"A", "B", "C"}}
	r, _ := For(q.Type)

	answer, ok := r.Parse(q, url.Values{FieldValue: {"C", "X", "A", "A"}})
	require.True(t, ok)
	assert.Equal(t, survey.Choices{"A", "C"}, answer, "catalog order, unknowns dropped")

	answer, ok = r.Parse(q, url.Values{})
	require.True(t, ok)
	assert.True(t, answer.Empty())
}

func TestMultipleChoice_RenderVariants(t *testing.T) {
	icons := defaultQuestion(t, "q4")
	r, _ := For(icons.Type)
	html := string(r.Render(icons, survey.Choices{"Kanye West"}))
	assert.Contains(t, html, "image-multiple-choice")
	assert.Contains(t, html, `src="/static/icons/kanye-west.webp"`)
	assert.Equal(t, 1, strings.Count(html, " checked"))

	colors := defaultQuestion(t, "q10")
	r, _ = For(colors.Type)
	html = string(r.Render(colors, nil))
	assert.Contains(t, html, "color-multiple-choice")
	assert.Contains(t, html, "#0a0a0a")
	assert.NotContains(t, html, " checked")
}

func TestEmail(t *testing.T) {
	q := defaultQuestion(t, "q2")
	r, _ := For(q.Type)

	html := string(r.Render(q, survey.Text("a@b.co")))
	assert.Contains(t, html, `type="email"`)
	assert.Contains(t, html, `value="a@b.co"`)
	assert.Contains(t, html, `placeholder="Enter your email"`)

	answer, ok := r.Parse(q, url.Values{FieldValue: {"  a@b.co "}})
	require.True(t, ok)
	assert.Equal(t, survey.Text("a@b.co"), answer)

	_, ok = r.Parse(q, url.Values{})
	assert.False(t, ok)
}

func TestNumber(t *testing.T) {
	q := catalog.Question{
		ID:          "q6",
		Type:        catalog.Number,
		Placeholder: "Age",
		Unit:        "years",
		Validation:  &catalog.Bounds{Min: 0, Max: 120},
	}
	r, _ := For(q.Type)

	html := string(r.Render(q, survey.Text("42")))
	assert.Contains(t, html, `min="0"`)
	assert.Contains(t, html, `max="120"`)
	assert.Contains(t, html, `value="42"`)
	assert.Contains(t, html, "years")

	html = string(r.Render(catalog.Question{ID: "n", Type: catalog.Number}, nil))
	assert.NotContains(t, html, "min=")

	answer, ok := r.Parse(q, url.Values{FieldValue: {"42"}})
	require.True(t, ok)
	assert.Equal(t, survey.Text("42"), answer)
}

func TestHeight(t *testing.T) {
	q := catalog.Question{ID: "q7", Type: catalog.Height}
	r, _ := For(q.Type)

	answer, ok := r.Parse(q, url.Values{FieldFeet: {"5"}, FieldInches: {"7"}})
	require.True(t, ok)
	assert.Equal(t, survey.Text(`5'7"`), answer)
	assert.True(t, survey.Validate(q, answer))

	html := string(r.Render(q, answer))
	assert.Contains(t, html, `name="feet" min="0" max="9" value="5"`)
	assert.Contains(t, html, `name="inches" min="0" max="11" value="7"`)

	answer, _ = r.Parse(q, url.Values{FieldFeet: {"5"}})
	assert.False(t, survey.Validate(q, answer), "missing inches")

	answer, _ = r.Parse(q, url.Values{FieldFeet: {"12"}, FieldInches: {"20"}})
	assert.Equal(t, survey.Text(`9'11"`), answer)
}

func TestSizeGroup(t *testing.T) {
	q := defaultQuestion(t, "q8")
	r, _ := For(q.Type)

	answer, ok := r.Parse(q, url.Values{
		"size_q8a": {"M"},
		"size_q8b": {""},
		"size_q8c": {"99"},
		"size_q8d": {"10.5"},
		"size_zzz": {"L"},
	})
	require.True(t, ok)
	assert.Equal(t, survey.Sizes{"q8a": "M", "q8d": "10.5"}, answer)

	html := string(r.Render(q, answer))
	assert.Contains(t, html, `name="size_q8a"`)
	assert.Contains(t, html, `<option value="M" selected>`)
	assert.Contains(t, html, `<option value="10.5" selected>`)
	assert.Equal(t, 2, strings.Count(html, " selected"))
	assert.Contains(t, html, "Shirt size")
}
