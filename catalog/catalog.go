// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a catalog fails structural validation
var ErrInvalidCatalog = errors.New("invalid catalog")

// Type tags a question with the kind of answer it collects
type Type string

const (
	SingleChoice        Type = "single_choice"
	MultipleChoice      Type = "multiple_choice"
	ImageMultipleChoice Type = "image_multiple_choice"
	ColorMultipleChoice Type = "color_multiple_choice"
	TextMultipleChoice  Type = "text_multiple_choice"
	Email               Type = "email"
	Number              Type = "number"
	Height              Type = "height"
	SizeGroup           Type = "size_group"
)

// IsMultipleChoice reports whether t belongs to the multi-select family
func (t Type) IsMultipleChoice() bool {
	switch t {
	case MultipleChoice, ImageMultipleChoice, ColorMultipleChoice, TextMultipleChoice:
		return true
	}
	return false
}

// IsChoice reports whether t draws its answers from Options
func (t Type) IsChoice() bool {
	return t == SingleChoice || t.IsMultipleChoice()
}

// Valid reports whether t is a known question type
func (t Type) Valid() bool {
	switch t {
	case SingleChoice, Email, Number, Height, SizeGroup:
		return true
	}
	return t.IsMultipleChoice()
}

type Bounds struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

type Question struct {
	ID           string            `yaml:"id" json:"id"`
	Text         string            `yaml:"text" json:"text"`
	Type         Type              `yaml:"type" json:"type"`
	Options      []string          `yaml:"options,omitempty" json:"options,omitempty"`
	Note         string            `yaml:"note,omitempty" json:"note,omitempty"`
	Placeholder  string            `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Unit         string            `yaml:"unit,omitempty" json:"unit,omitempty"`
	Validation   *Bounds           `yaml:"validation,omitempty" json:"validation,omitempty"`
	Images       map[string]string `yaml:"images,omitempty" json:"images,omitempty"`
	ColorCodes   map[string]string `yaml:"color_codes,omitempty" json:"color_codes,omitempty"`
	SubQuestions []Question        `yaml:"sub_questions,omitempty" json:"sub_questions,omitempty"`
}

// Clone returns a deep copy of q, sharing no slices, maps or bounds
func (q Question) Clone() Question {
	q.Options = slices.Clone(q.Options)
	q.Images = maps.Clone(q.Images)
	q.ColorCodes = maps.Clone(q.ColorCodes)
	if q.Validation != nil {
		b := *q.Validation
		q.Validation = &b
	}
	if q.SubQuestions != nil {
		subs := make([]Question, len(q.SubQuestions))
		for i, sq := range q.SubQuestions {
			subs[i] = sq.Clone()
		}
		q.SubQuestions = subs
	}
	return q
}

// HasOption reports whether option is one of the question's options
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// SubQuestion returns a copy of the sub-question with the given id
func (q Question) SubQuestion(id string) (Question, bool) {
	for _, sq := range q.SubQuestions {
		if sq.ID == id {
			return sq.Clone(), true
		}
	}
	return Question{}, false
}

// Catalog is the ordered, immutable list of questions driving a survey.
// Questions are copied in and every accessor hands out copies.
type Catalog struct {
	questions []Question
	index     map[string]int
}

type file struct {
	Questions []Question `yaml:"questions"`
}

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the built-in catalog
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads and validates a YAML catalog from disk
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Questions)
}

// New validates questions and builds a catalog from them
func New(questions []Question) (*Catalog, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}

	c := &Catalog{
		questions: make([]Question, len(questions)),
		index:     make(map[string]int, len(questions)),
	}
	for i, q := range questions {
		c.questions[i] = q.Clone()
		c.index[q.ID] = i
	}
	return c, nil
}

// Validate checks the structure of a question list
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidCatalog)
	}

	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("%w: question %d has no id", ErrInvalidCatalog, i)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: duplicate question id %s", ErrInvalidCatalog, q.ID)
		}
		seen[q.ID] = true

		if !q.Type.Valid() {
			return fmt.Errorf("%w: question %s has unknown type %q", ErrInvalidCatalog, q.ID, q.Type)
		}
		if q.Type.IsChoice() && len(q.Options) == 0 {
			return fmt.Errorf("%w: question %s has no options", ErrInvalidCatalog, q.ID)
		}
		if q.Type == SizeGroup {
			if err := validateSubQuestions(q); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateSubQuestions(q Question) error {
	if len(q.SubQuestions) == 0 {
		return fmt.Errorf("%w: invalid subquestions in question %s", ErrInvalidCatalog, q.ID)
	}
	seen := make(map[string]bool, len(q.SubQuestions))
	for _, sq := range q.SubQuestions {
		if sq.ID == "" || sq.Text == "" || sq.Type != SingleChoice || len(sq.Options) == 0 || seen[sq.ID] {
			return fmt.Errorf("%w: invalid subquestions in question %s", ErrInvalidCatalog, q.ID)
		}
		seen[sq.ID] = true
	}
	return nil
}

func (c *Catalog) Len() int {
	return len(c.questions)
}

// At returns the question at position i. i must be in [0, Len()).
func (c *Catalog) At(i int) Question {
	return c.questions[i].Clone()
}

// Lookup finds a question by id
func (c *Catalog) Lookup(id string) (Question, bool) {
	i, ok := c.index[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i].Clone(), true
}

// Questions returns a deep copy of the ordered question list
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.Clone()
	}
	return out
}

// EmailQuestionID returns the id of the first email question, or "" if the
// catalog has none. Its answer fills the email column of stored records.
func (c *Catalog) EmailQuestionID() string {
	for _, q := range c.questions {
		if q.Type == Email {
			return q.ID
		}
	}
	return ""
}
