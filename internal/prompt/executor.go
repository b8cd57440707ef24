package prompt

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hirelogic/hirelogic/internal/providers/llm"
)

// Output is the validated, structured result of one template execution.
// Accessors report presence explicitly; an empty value with ok=false must be
// treated as absent, never as a usable result.
type Output struct {
	fields map[string]any
}

func (o Output) String(name string) (string, bool) {
	v, ok := o.fields[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func (o Output) StringList(name string) ([]string, bool) {
	v, ok := o.fields[name]
	if !ok {
		return nil, false
	}
	list, ok := v.([]string)
	if !ok {
		return nil, false
	}
	return list, true
}

// Executor runs a Template against the generation model: validate input,
// render, call the model exactly once, and validate the returned shape.
type Executor struct {
	provider llm.Provider
	log      *logrus.Logger
}

func NewExecutor(provider llm.Provider, log *logrus.Logger) *Executor {
	if log == nil {
		log = logrus.New()
	}
	return &Executor{provider: provider, log: log}
}

func (e *Executor) Execute(ctx context.Context, tpl Template, input map[string]string) (Output, error) {
	if err := tpl.ValidateInput(input); err != nil {
		return Output{}, err
	}

	rendered := tpl.Render(input) + "\n\n" + tpl.OutputInstructions()

	raw, err := e.provider.GenerateContent(ctx, rendered)
	if err != nil {
		return Output{}, &GenerationError{TemplateID: tpl.ID, Err: err}
	}

	out, err := parseOutput(tpl, raw)
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"template": tpl.ID,
			"raw_len":  len(raw),
		}).Warn("model output failed shape validation")
		return Output{}, err
	}
	return out, nil
}

func parseOutput(tpl Template, raw string) (Output, error) {
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &decoded); err != nil {
		return Output{}, &OutputValidationError{TemplateID: tpl.ID, Reason: "not a JSON object", Err: err}
	}

	fields := make(map[string]any, len(tpl.Outputs))
	for _, f := range tpl.Outputs {
		rawField, ok := decoded[f.Name]
		if !ok {
			return Output{}, &OutputValidationError{TemplateID: tpl.ID, Reason: "missing field " + f.Name}
		}
		switch f.Kind {
		case KindStringList:
			var list []string
			if err := json.Unmarshal(rawField, &list); err != nil {
				return Output{}, &OutputValidationError{TemplateID: tpl.ID, Reason: "field " + f.Name + " is not a string array", Err: err}
			}
			fields[f.Name] = list
		default:
			var s string
			if err := json.Unmarshal(rawField, &s); err != nil {
				return Output{}, &OutputValidationError{TemplateID: tpl.ID, Reason: "field " + f.Name + " is not a string", Err: err}
			}
			if s == "" {
				return Output{}, &OutputValidationError{TemplateID: tpl.ID, Reason: "field " + f.Name + " is empty"}
			}
			fields[f.Name] = s
		}
	}
	return Output{fields: fields}, nil
}

// stripCodeFence unwraps ```json ... ``` blocks some models emit even when
// asked for bare JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
