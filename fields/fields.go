// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fields

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/danielhkuo/style-funnel/catalog"
	"github.com/danielhkuo/style-funnel/survey"
)

// Form field names shared by the renderers and the answer handler
const (
	FieldChoice     = "choice"
	FieldValue      = "value"
	FieldFeet       = "feet"
	FieldInches     = "inches"
	SizeFieldPrefix = "size_"
)

// UnsupportedMessage is shown for question types without a renderer
const UnsupportedMessage = "Question type not supported"

// Renderer draws one question type as form controls and turns submitted
// form values back into an answer.
type Renderer interface {
	Render(q catalog.Question, value survey.Answer) template.HTML
	// Parse reports false when the form carries nothing usable for q
	Parse(q catalog.Question, form url.Values) (survey.Answer, bool)
	// AutoAdvance is true when making a selection submits the question
	AutoAdvance() bool
}

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var registry = map[catalog.Type]Renderer{
	catalog.SingleChoice:        singleChoice{},
	catalog.MultipleChoice:      multipleChoice{class: "multiple-choice"},
	catalog.TextMultipleChoice:  multipleChoice{class: "text-multiple-choice"},
	catalog.ImageMultipleChoice: multipleChoice{class: "image-multiple-choice"},
	catalog.ColorMultipleChoice: multipleChoice{class: "color-multiple-choice"},
	catalog.Email:               email{},
	catalog.Number:              number{},
	catalog.Height:              height{},
	catalog.SizeGroup:           sizeGroup{},
}

// For returns the renderer for a question type
func For(t catalog.Type) (Renderer, bool) {
	r, ok := registry[t]
	return r, ok
}

// Render draws q with its current value, or the unsupported notice
func Render(q catalog.Question, value survey.Answer) template.HTML {
	r, ok := For(q.Type)
	if !ok {
		return execute("unsupported", UnsupportedMessage)
	}
	return r.Render(q, value)
}

// Letter labels option i: A, B, ... Z, then AA, AB, ...
func Letter(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return Letter(i/26-1) + Letter(i%26)
}

func execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render field", "template", name, "error", err)
		return ""
	}
	return template.HTML(buf.String())
}

func textOf(value survey.Answer) string {
	if t, ok := value.(survey.Text); ok {
		return string(t)
	}
	return ""
}

type optionView struct {
	Letter   string
	Value    string
	Selected bool
	Image    string
	Color    template.CSS
}

type singleChoice struct{}

func (singleChoice) Render(q catalog.Question, value survey.Answer) template.HTML {
	current := textOf(value)
	opts := make([]optionView, len(q.Options))
	for i, o := range q.Options {
		opts[i] = optionView{Letter: Letter(i), Value: o, Selected: o == current}
	}
	return execute("single_choice", opts)
}

func (singleChoice) Parse(q catalog.Question, form url.Values) (survey.Answer, bool) {
	choice := form.Get(FieldChoice)
	if !q.HasOption(choice) {
		return nil, false
	}
	return survey.Text(choice), true
}

func (singleChoice) AutoAdvance() bool { return true }

type multipleChoice struct {
	class string
}

func (m multipleChoice) Render(q catalog.Question, value survey.Answer) template.HTML {
	selected, _ := value.(survey.Choices)
	opts := make([]optionView, len(q.Options))
	for i, o := range q.Options {
		opts[i] = optionView{
			Letter:   Letter(i),
			Value:    o,
			Selected: selected.Contains(o),
			Image:    q.Images[o],
			Color:    template.CSS(q.ColorCodes[o]),
		}
	}
	return execute("multiple_choice", struct {
		Class   string
		Options []optionView
	}{m.class, opts})
}

// Parse keeps catalog order and drops anything that is not an option.
// An empty selection is a valid edit.
func (multipleChoice) Parse(q catalog.Question, form url.Values) (survey.Answer, bool) {
	submitted := form[FieldValue]
	picked := survey.Choices{}
	for _, o := range q.Options {
		for _, v := range submitted {
			if v == o {
				picked = append(picked, o)
				break
			}
		}
	}
	return picked, true
}

func (multipleChoice) AutoAdvance() bool { return false }

type email struct{}

func (email) Render(q catalog.Question, value survey.Answer) template.HTML {
	return execute("email", struct {
		Value       string
		Placeholder string
	}{textOf(value), q.Placeholder})
}

func (email) Parse(_ catalog.Question, form url.Values) (survey.Answer, bool) {
	if _, ok := form[FieldValue]; !ok {
		return nil, false
	}
	return survey.Text(strings.TrimSpace(form.Get(FieldValue))), true
}

func (email) AutoAdvance() bool { return false }

type number struct{}

func (number) Render(q catalog.Question, value survey.Answer) template.HTML {
	data := struct {
		Value       string
		Placeholder string
		Unit        string
		HasBounds   bool
		Min, Max    string
	}{Value: textOf(value), Placeholder: q.Placeholder, Unit: q.Unit}
	if q.Validation != nil {
		data.HasBounds = true
		data.Min = strconv.FormatFloat(q.Validation.Min, 'g', -1, 64)
		data.Max = strconv.FormatFloat(q.Validation.Max, 'g', -1, 64)
	}
	return execute("number", data)
}

func (number) Parse(_ catalog.Question, form url.Values) (survey.Answer, bool) {
	if _, ok := form[FieldValue]; !ok {
		return nil, false
	}
	return survey.Text(strings.TrimSpace(form.Get(FieldValue))), true
}

func (number) AutoAdvance() bool { return false }

type height struct{}

func (height) Render(_ catalog.Question, value survey.Answer) template.HTML {
	feet, inches, _ := survey.SplitHeight(survey.Text(textOf(value)))
	return execute("height", struct {
		Feet, Inches       string
		MaxFeet, MaxInches int
	}{feet, inches, survey.MaxFeet, survey.MaxInches})
}

// Parse yields "" until feet is numeric and inches is filled in, which the
// validator then rejects.
func (height) Parse(_ catalog.Question, form url.Values) (survey.Answer, bool) {
	return survey.ParseHeightParts(
		strings.TrimSpace(form.Get(FieldFeet)),
		strings.TrimSpace(form.Get(FieldInches)),
	), true
}

func (height) AutoAdvance() bool { return false }

type sizeGroup struct{}

type sizeSelect struct {
	Name    string
	Text    string
	Options []optionView
}

func (sizeGroup) Render(q catalog.Question, value survey.Answer) template.HTML {
	current, _ := value.(survey.Sizes)
	groups := make([]sizeSelect, len(q.SubQuestions))
	for i, sq := range q.SubQuestions {
		opts := make([]optionView, len(sq.Options))
		for j, o := range sq.Options {
			opts[j] = optionView{Value: o, Selected: current[sq.ID] == o}
		}
		groups[i] = sizeSelect{Name: SizeFieldPrefix + sq.ID, Text: sq.Text, Options: opts}
	}
	return execute("size_group", groups)
}

// Parse omits empty selects and values outside each sub-question's options
func (sizeGroup) Parse(q catalog.Question, form url.Values) (survey.Answer, bool) {
	sizes := survey.Sizes{}
	for _, sq := range q.SubQuestions {
		v := form.Get(SizeFieldPrefix + sq.ID)
		if v != "" && sq.HasOption(v) {
			sizes[sq.ID] = v
		}
	}
	return sizes, true
}

func (sizeGroup) AutoAdvance() bool { return false }
