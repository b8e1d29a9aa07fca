package header

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ParamType is a declared !!parameter's value kind.
type ParamType string

const (
	TypeString ParamType = "string"
	TypeBool   ParamType = "bool"
	TypeInt    ParamType = "int"
	TypeFloat  ParamType = "float"
)

// ParseParamType validates a type name off a "!!parameter ID :type DEFAULT"
// declaration. An absent type is not handled here: the caller defaults
// it to TypeString before calling, and an empty name is an error.
func ParseParamType(s string) (ParamType, error) {
	switch ParamType(s) {
	case TypeString, TypeBool, TypeInt, TypeFloat:
		return ParamType(s), nil
	default:
		return "", fmt.Errorf("invalid parameter type %s", s)
	}
}

// schemaFor maps a ParamType to the JSON Schema it is validated against.
// Values arrive as header text, so every type is validated as a string
// whose content must additionally satisfy the type's own format, rather
// than as a native JSON bool/number.
func schemaFor(t ParamType) map[string]any {
	switch t {
	case TypeBool:
		return map[string]any{"type": "string", "enum": []any{"true", "false"}}
	case TypeInt:
		return map[string]any{"type": "string", "pattern": `^[+-]?[0-9]+$`}
	case TypeFloat:
		return map[string]any{"type": "string", "pattern": `^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`}
	default:
		return map[string]any{"type": "string"}
	}
}

// typeValidatorCache compiles each ParamType's schema once; the schema set
// is fixed and small (four variants) so the cache is keyed by ParamType
// directly instead of a content hash.
type typeValidatorCache struct {
	mu         sync.Mutex
	validators map[ParamType]*jsonschema.Schema
}

var defaultTypeValidators = &typeValidatorCache{validators: make(map[ParamType]*jsonschema.Schema)}

func (c *typeValidatorCache) get(t ParamType) (*jsonschema.Schema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.validators[t]; ok {
		return v, nil
	}
	schema, err := compileParamSchema(t)
	if err != nil {
		return nil, err
	}
	c.validators[t] = schema
	return schema, nil
}

func compileParamSchema(t ParamType) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schemaFor(t))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	url := "schema://" + string(t) + ".json"
	if err := compiler.AddResource(url, strings.NewReader(string(raw))); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}

// ValidateParamValue checks value against t's JSON Schema, matching the
// acceptance rules of the original bool/int/float/string parser.parse
// calls but backed by a compiled, cached schema instead of a bespoke
// strconv call per type.
func ValidateParamValue(t ParamType, value string) error {
	schema, err := defaultTypeValidators.get(t)
	if err != nil {
		return err
	}
	var doc any = value
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid value %s for %s parameter", value, t)
	}
	return nil
}

// CoerceParamValue parses value per t, for callers that need the
// underlying Go value rather than a pass/fail validation.
func CoerceParamValue(t ParamType, value string) (any, error) {
	if err := ValidateParamValue(t, value); err != nil {
		return nil, err
	}
	switch t {
	case TypeBool:
		return strconv.ParseBool(value)
	case TypeInt:
		return strconv.ParseInt(value, 10, 64)
	case TypeFloat:
		return strconv.ParseFloat(value, 64)
	default:
		return value, nil
	}
}
