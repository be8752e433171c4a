package lang

import (
	"encoding/json"
)

// MarshalJSON implements json.Marshaler for Component.
func (c *Component) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToMap())
}

// ToMap converts the component to a native Go map structure suitable
// for JSON or YAML encoding. Translation programs are rendered in
// compact surface syntax rather than as nested node objects, so the
// output stays readable and reparseable.
func (c *Component) ToMap() map[string]any {
	banks := make([]any, len(c.Banks))

	for i, bank := range c.Banks {
		layout := make([]any, len(bank.Layout))
		for j, r := range bank.Layout {
			layout[j] = rangeToMap(r)
		}

		banks[i] = map[string]any{
			"layout":      layout,
			"translation": FormatTranslation(bank.Translation),
		}
	}

	return map[string]any{
		"params": []any{c.ParamA, c.ParamB},
		"width":  c.width,
		"banks":  banks,
	}
}

func rangeToMap(r Range) map[string]any {
	m := map[string]any{
		"start": r.Start,
		"end":   r.End,
	}

	if r.Stride != 0 {
		m["stride"] = r.Stride
	}

	return m
}
