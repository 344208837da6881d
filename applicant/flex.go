package applicant

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Flex holds one logical applicant field that has shipped in more than one
// storage shape across editions: a plain scalar, or a "selected keys" map of
// option name -> chosen, optionally carrying free-text qualifiers as string
// values inside the same map. Exactly which shape wins is decided by the
// resolution methods, never by callers poking at the raw document.
type Flex struct {
	Scalar   string          `json:"scalar,omitempty"`
	Selected map[string]bool `json:"selected,omitempty"`
	Other    string          `json:"other,omitempty"`
}

// Resolve collapses the field to a single string. A scalar value takes
// precedence; otherwise the selected keys are joined in sorted order, with
// any free-text qualifier appended as a final element.
func (f Flex) Resolve() string {
	if f.Scalar != "" {
		return f.Scalar
	}
	return f.joinSelected()
}

// ResolveLegacy resolves an edition-sensitive field. Legacy editions stored
// these fields as plain scalars; modern editions store them as selected-keys
// maps. The two shapes are not cross-read.
func (f Flex) ResolveLegacy(legacy bool) string {
	if legacy {
		return f.Scalar
	}
	return f.joinSelected()
}

func (f Flex) joinSelected() string {
	keys := make([]string, 0, len(f.Selected))
	for k, chosen := range f.Selected {
		if chosen {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if f.Other != "" {
		keys = append(keys, f.Other)
	}
	return strings.Join(keys, ", ")
}

// IsZero reports whether no source shape carried a value.
func (f Flex) IsZero() bool {
	return f.Scalar == "" && len(f.Selected) == 0 && f.Other == ""
}

const flexOtherKey = "other"

// UnmarshalDynamo accepts every historical storage shape: S and N scalars,
// and M maps of BOOL selections with optional S qualifier values. Unknown
// shapes degrade to the zero value instead of failing the whole read.
func (f *Flex) UnmarshalDynamo(av types.AttributeValue) error {
	*f = Flex{}
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		f.Scalar = v.Value
	case *types.AttributeValueMemberN:
		f.Scalar = v.Value
	case *types.AttributeValueMemberM:
		for key, item := range v.Value {
			switch entry := item.(type) {
			case *types.AttributeValueMemberBOOL:
				if f.Selected == nil {
					f.Selected = map[string]bool{}
				}
				f.Selected[key] = entry.Value
			case *types.AttributeValueMemberS:
				f.Other = entry.Value
			}
		}
	}
	return nil
}

// MarshalDynamo writes the field back in the shape it resolved from.
func (f Flex) MarshalDynamo() (types.AttributeValue, error) {
	if f.Scalar != "" {
		return &types.AttributeValueMemberS{Value: f.Scalar}, nil
	}
	if len(f.Selected) > 0 || f.Other != "" {
		m := make(map[string]types.AttributeValue, len(f.Selected)+1)
		for key, chosen := range f.Selected {
			m[key] = &types.AttributeValueMemberBOOL{Value: chosen}
		}
		if f.Other != "" {
			m[flexOtherKey] = &types.AttributeValueMemberS{Value: f.Other}
		}
		return &types.AttributeValueMemberM{Value: m}, nil
	}
	return &types.AttributeValueMemberNULL{Value: true}, nil
}

// UnmarshalJSON mirrors the document-store leniency for JSON fixtures: a
// bare string is a scalar, an object is a selected-keys map.
func (f *Flex) UnmarshalJSON(data []byte) error {
	*f = Flex{}
	var scalar string
	if err := json.Unmarshal(data, &scalar); err == nil {
		f.Scalar = scalar
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil // tolerate unknown shapes
	}
	// canonical {scalar, selected, other} object
	_, hasScalar := raw["scalar"].(string)
	_, hasSelected := raw["selected"].(map[string]any)
	if hasScalar || hasSelected {
		type flexAlias Flex
		var alias flexAlias
		if err := json.Unmarshal(data, &alias); err == nil {
			*f = Flex(alias)
			return nil
		}
	}
	for key, item := range raw {
		switch value := item.(type) {
		case bool:
			if f.Selected == nil {
				f.Selected = map[string]bool{}
			}
			f.Selected[key] = value
		case string:
			f.Other = value
		}
	}
	return nil
}
