package validate

import (
	"strconv"
	"strings"

	"brightextract/pkg/core/model"
	"brightextract/pkg/core/schema"
	"brightextract/pkg/core/vocab"
)

// ValidateVocabulary normalizes and checks every value against its field's
// controlled vocabulary (spec §4.7). Values for unknown fields are left
// untouched: the pipeline never constructs a value for a field it cannot
// resolve via schema.GetField.
func ValidateVocabulary(values map[string]model.ExtractionValue) {
	for name, v := range values {
		field, err := schema.GetField(name)
		if err != nil {
			continue
		}
		if v.Value == "" {
			continue
		}

		normalized, isNull := vocab.Normalize(v.Value)
		if isNull {
			v.Value = ""
			v.VocabValid = true
			values[name] = v
			continue
		}

		if field.Type == schema.TypeInteger {
			if n, ok := vocab.ParseInt(normalized); ok {
				normalized = strconv.Itoa(n)
			}
		}

		if field.Type == schema.TypeFreeText {
			v.Value = normalized
			v.VocabValid = true
			values[name] = v
			continue
		}

		if valid := checkAllowed(field, normalized); valid {
			v.Value = normalized
			v.VocabValid = true
			v.Flagged = false
		} else {
			v.VocabValid = false
			v.Flagged = true
		}
		values[name] = v
	}
}

func checkAllowed(field schema.Field, value string) bool {
	switch field.Validator {
	case schema.ValidatorEvolution:
		return schema.ValidEvolution(value)
	case schema.ValidatorMolecular:
		return schema.ValidMolecularStatus(value)
	}
	if len(field.Allowed) == 0 {
		return true
	}
	lower := strings.ToLower(value)
	for _, a := range field.Allowed {
		if strings.ToLower(a) == lower {
			return true
		}
	}
	return false
}
