/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: codec.go
Description: JSON and YAML interchange for grammars. This is the form in which grammars
arrive from the external syntax parser and leave for the oracle and sampler stages.
Components and factors are encoded as single-key objects naming their variant.
*/

package grammar

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects an encoding for grammars.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// FormatFromPath guesses the encoding of a grammar file from its extension.
// Anything that is not YAML is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type ruleJSON struct {
	Name         Symbol          `json:"name"`
	Alternatives []componentJSON `json:"alternatives"`
}

type componentJSON struct {
	Call *Symbol   `json:"call,omitempty"`
	Cons *consJSON `json:"cons,omitempty"`
}

type consJSON struct {
	Weight  uint         `json:"weight"`
	Factors []factorJSON `json:"factors"`
}

type factorJSON struct {
	Elem *Symbol `json:"elem,omitempty"`
	Seq  *Symbol `json:"seq,omitempty"`
}

// MarshalJSON encodes the rule as {"name": ..., "alternatives": [...]}.
func (r Rule) MarshalJSON() ([]byte, error) {
	out := ruleJSON{Name: r.Name, Alternatives: make([]componentJSON, 0, len(r.Alternatives))}

	for _, alt := range r.Alternatives {
		switch c := alt.(type) {
		case Call:
			name := c.Name
			out.Alternatives = append(out.Alternatives, componentJSON{Call: &name})
		case Cons:
			cj := &consJSON{Weight: c.Weight, Factors: make([]factorJSON, 0, len(c.Factors))}
			for _, f := range c.Factors {
				switch f := f.(type) {
				case Elem:
					name := f.Name
					cj.Factors = append(cj.Factors, factorJSON{Elem: &name})
				case Seq:
					name := f.Name
					cj.Factors = append(cj.Factors, factorJSON{Seq: &name})
				default:
					return nil, fmt.Errorf("rule %s: unknown factor type %T", r.Name, f)
				}
			}
			out.Alternatives = append(out.Alternatives, componentJSON{Cons: cj})
		default:
			return nil, fmt.Errorf("rule %s: unknown component type %T", r.Name, alt)
		}
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes a rule, rejecting component and factor objects that do not
// name exactly one variant.
func (r *Rule) UnmarshalJSON(data []byte) error {
	var in ruleJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	rule := Rule{Name: in.Name}
	for i, cj := range in.Alternatives {
		switch {
		case cj.Call != nil && cj.Cons == nil:
			rule.Alternatives = append(rule.Alternatives, Call{Name: *cj.Call})
		case cj.Cons != nil && cj.Call == nil:
			cons := Cons{Weight: cj.Cons.Weight}
			for j, fj := range cj.Cons.Factors {
				switch {
				case fj.Elem != nil && fj.Seq == nil:
					cons.Factors = append(cons.Factors, Elem{Name: *fj.Elem})
				case fj.Seq != nil && fj.Elem == nil:
					cons.Factors = append(cons.Factors, Seq{Name: *fj.Seq})
				default:
					return fmt.Errorf("rule %s: alternative %d factor %d must set exactly one of elem or seq", in.Name, i, j)
				}
			}
			rule.Alternatives = append(rule.Alternatives, cons)
		default:
			return fmt.Errorf("rule %s: alternative %d must set exactly one of call or cons", in.Name, i)
		}
	}

	*r = rule
	return nil
}

// Decode reads a grammar in the given format. Text is output-only.
func Decode(r io.Reader, format Format) (Grammar, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar: %w", err)
	}

	switch format {
	case FormatJSON:
	case FormatYAML:
		// YAML is normalised through the JSON shape so both share one decoder.
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml grammar: %w", err)
		}
		if data, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("failed to normalise yaml grammar: %w", err)
		}
	default:
		return nil, fmt.Errorf("cannot decode grammar from format %s", format)
	}

	var g Grammar
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to decode grammar: %w", err)
	}
	return g, nil
}

// Encode writes g in the given format. JSON output is indented.
func Encode(w io.Writer, g Grammar, format Format) error {
	if g == nil {
		g = Grammar{}
	}

	var data []byte
	var err error

	switch format {
	case FormatText:
		if err := Fprint(w, g); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	case FormatJSON:
		data, err = json.MarshalIndent(g, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		var doc interface{}
		raw, jerr := json.Marshal(g)
		if jerr != nil {
			return fmt.Errorf("failed to encode grammar: %w", jerr)
		}
		if jerr := json.Unmarshal(raw, &doc); jerr != nil {
			return fmt.Errorf("failed to encode grammar: %w", jerr)
		}
		data, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("cannot encode grammar to format %s", format)
	}

	if err != nil {
		return fmt.Errorf("failed to encode grammar: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write grammar: %w", err)
	}
	return nil
}
