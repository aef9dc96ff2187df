// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/style-funnel/catalog"
)

func TestValidate(t *testing.T) {
	q := func(typ catalog.Type) catalog.Question {
		return catalog.Question{ID: "q", Type: typ}
	}

	tests := []struct {
		name   string
		q      catalog.Question
		answer Answer
		want   bool
	}{
		{"single choice always valid", q(catalog.SingleChoice), nil, true},
		{"single choice empty", q(catalog.SingleChoice), Text(""), true},

		{"multiple choice empty", q(catalog.MultipleChoice), Choices{}, false},
		{"multiple choice nil", q(catalog.MultipleChoice), nil, false},
		{"multiple choice selected", q(catalog.MultipleChoice), NewChoices("a"), true},
		{"image choice selected", q(catalog.ImageMultipleChoice), NewChoices("a"), true},
		{"color choice selected", q(catalog.ColorMultipleChoice), NewChoices("Red"), true},
		{"text choice selected", q(catalog.TextMultipleChoice), NewChoices("Hats"), true},
		{"multiple choice wrong shape", q(catalog.MultipleChoice), Text("a"), false},

		{"email valid", q(catalog.Email), Text("a@b.com"), true},
		{"email without at", q(catalog.Email), Text("not-an-email"), false},
		{"email empty", q(catalog.Email), Text(""), false},

		{"number integer", q(catalog.Number), Text("42"), true},
		{"number decimal", q(catalog.Number), Text("-3.5"), true},
		{"number padded", q(catalog.Number), Text(" 7 "), true},
		{"number letters", q(catalog.Number), Text("abc"), false},
		{"number blank", q(catalog.Number), Text("   "), false},
		{"number NaN", q(catalog.Number), Text("NaN"), false},
		{"number Inf", q(catalog.Number), Text("Inf"), false},
		{"number Infinity", q(catalog.Number), Text("-Infinity"), false},
		{"number hex", q(catalog.Number), Text("0x1F"), false},
		{"number exponent", q(catalog.Number), Text("6.02e23"), true},
		{"number overflowing exponent", q(catalog.Number), Text("1e400"), true},
		{"number leading dot", q(catalog.Number), Text(".5"), true},
		{"number trailing dot", q(catalog.Number), Text("5."), true},
		{"number explicit sign", q(catalog.Number), Text("+12"), true},
		{"number bare sign", q(catalog.Number), Text("-"), false},
		{"number bare dot", q(catalog.Number), Text("."), false},
		{"number two values", q(catalog.Number), Text("1 2"), false},

		{"height composed", q(catalog.Height), Text(`5'7"`), true},
		{"height free text", q(catalog.Height), Text("tall"), false},
		{"height plain number", q(catalog.Height), Text("70"), false},
		{"height upper bounds", q(catalog.Height), Text(`9'11"`), true},
		{"height feet out of range", q(catalog.Height), Text(`10'0"`), false},
		{"height inches out of range", q(catalog.Height), Text(`5'12"`), false},
		{"height both out of range", q(catalog.Height), Text(`99'99"`), false},
		{"height overflowing digits", q(catalog.Height), Text(`99999999999999999999'1"`), false},

		{"size group one answer", q(catalog.SizeGroup), Sizes{"q8a": "M"}, true},
		{"size group empty", q(catalog.SizeGroup), Sizes{}, false},
		{"size group wrong shape", q(catalog.SizeGroup), NewChoices("M"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.q, tt.answer))
		})
	}
}

func TestHeightComposition(t *testing.T) {
	v := ParseHeightParts("5", "7")
	assert.Equal(t, Text(`5'7"`), v)

	feet, inches, ok := SplitHeight(v)
	assert.True(t, ok)
	assert.Equal(t, "5", feet)
	assert.Equal(t, "7", inches)
}

func TestHeightBounds(t *testing.T) {
	assert.Equal(t, Text(`9'11"`), ComposeHeight(12, 40))
	assert.Equal(t, Text(`0'0"`), ComposeHeight(-1, -5))
	assert.Equal(t, Text(`6'0"`), ParseHeightParts("6", "x"))
	assert.Equal(t, Text(""), ParseHeightParts("", "7"))
	assert.Equal(t, Text(""), ParseHeightParts("5", ""))

	_, _, ok := SplitHeight(Text("5 ft"))
	assert.False(t, ok)
}

func TestChoices(t *testing.T) {
	c := NewChoices("a", "b", "a")
	assert.Equal(t, Choices{"a", "b"}, c)

	c = c.Toggle("c")
	assert.Equal(t, Choices{"a", "b", "c"}, c)
	c = c.Toggle("a")
	assert.Equal(t, Choices{"b", "c"}, c)
	assert.False(t, c.Contains("a"))
}

func TestPosition(t *testing.T) {
	tests := []struct {
		raw    string
		n      int
		want   int
		wantOK bool
	}{
		{"0", 5, 0, true},
		{"3", 5, 3, true},
		{"17", 5, 4, true},
		{"-2", 5, 0, true},
		{"abc", 5, 0, false},
		{"", 5, 0, false},
		{"2.5", 5, 0, false},
	}

	for _, tt := range tests {
		got, ok := ParsePosition(tt.raw, tt.n)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		assert.Equal(t, tt.wantOK, ok, "raw=%q", tt.raw)
	}
}
