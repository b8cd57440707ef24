package prompt

import (
	"fmt"
	"sort"
	"strings"
)

type FieldKind string

const (
	KindString     FieldKind = "string"
	KindStringList FieldKind = "string_list"
)

// FieldSpec declares one named input or output field of a template.
type FieldSpec struct {
	Name        string
	Kind        FieldKind
	Description string
	// MinLen applies to string inputs. Every input field is required to be
	// non-empty regardless.
	MinLen int
}

// Template binds named input fields into a natural-language prompt and
// declares the shape the model's JSON output must match. Placeholders use
// the {{name}} form and are substituted verbatim.
type Template struct {
	ID      string
	Text    string
	Inputs  []FieldSpec
	Outputs []FieldSpec
}

// ValidateInput checks field presence and minimum lengths. It returns a
// *ValidationError listing every offending field, or nil.
func (t Template) ValidateInput(input map[string]string) error {
	var bad []string
	for _, f := range t.Inputs {
		v, ok := input[f.Name]
		if !ok || strings.TrimSpace(v) == "" {
			bad = append(bad, f.Name)
			continue
		}
		if f.MinLen > 0 && len(v) < f.MinLen {
			bad = append(bad, f.Name)
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return &ValidationError{TemplateID: t.ID, Fields: bad}
	}
	return nil
}

// Render substitutes every input field into the template text.
func (t Template) Render(input map[string]string) string {
	out := t.Text
	for _, f := range t.Inputs {
		out = strings.ReplaceAll(out, "{{"+f.Name+"}}", input[f.Name])
	}
	return out
}

// OutputInstructions describes the expected JSON object so the model knows
// what to return. Appended to the rendered prompt by the executor.
func (t Template) OutputInstructions() string {
	var sb strings.Builder
	sb.WriteString("Respond with a single JSON object with exactly these fields:\n")
	for _, f := range t.Outputs {
		switch f.Kind {
		case KindStringList:
			fmt.Fprintf(&sb, "- %q: an array of strings", f.Name)
		default:
			fmt.Fprintf(&sb, "- %q: a string", f.Name)
		}
		if f.Description != "" {
			sb.WriteString(" — ")
			sb.WriteString(f.Description)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Do not include any other fields or any text outside the JSON object.")
	return sb.String()
}
