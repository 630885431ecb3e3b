package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"reellog/internal/movie"
)

// field is one prompt of a form. A failing validator keeps the focus on the
// field and shows the message under it.
type field struct {
	label    string
	input    textinput.Model
	validate movie.Validator
	err      string
}

func newField(label, placeholder string, validate movie.Validator) field {
	in := textinput.New()
	in.Prompt = label + ": "
	in.Placeholder = placeholder
	return field{label: label, input: in, validate: validate}
}

func (f *field) check() bool {
	if err := f.validate(f.input.Value()); err != nil {
		f.err = err.Error()
		return false
	}
	f.err = ""
	return true
}

func titleField() field {
	return newField("Title", "Dune", func(v string) error {
		return movie.ValidateTitle(movie.NormalizeText(v))
	})
}

func descriptionField() field {
	return newField("Description", "Sci-fi epic", func(v string) error {
		return movie.ValidateDescription(movie.NormalizeText(v))
	})
}

func durationField() field {
	return newField("Duration (minutes)", "155", movie.DurationValidator)
}
