package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"ai-readiness-workers/pkg/registry"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// SchemaValidator holds the compiled input schema of every registered activity.
type SchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewSchemaValidator compiles each activity's input schema with the registry's
// shared definitions attached.
func NewSchemaValidator(reg *registry.ActivityRegistry) (*SchemaValidator, error) {
	v := &SchemaValidator{schemas: make(map[string]*gojsonschema.Schema, len(reg.Activities))}

	for _, activity := range reg.Activities {
		doc := make(map[string]interface{}, len(activity.InputSchema)+1)
		for k, val := range activity.InputSchema {
			doc[k] = val
		}
		if len(reg.Definitions) > 0 {
			doc["definitions"] = reg.Definitions
		}

		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
		if err != nil {
			return nil, fmt.Errorf("compile input schema for %s: %w", activity.TaskType, err)
		}
		v.schemas[activity.TaskType] = schema
	}
	return v, nil
}

// NewDefaultValidator compiles the embedded registry.
func NewDefaultValidator() (*SchemaValidator, error) {
	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	return NewSchemaValidator(reg)
}

// ValidateJSON validates raw job variables. Unknown task types pass.
func (v *SchemaValidator) ValidateJSON(taskType string, document []byte) *ValidationResult {
	schema, ok := v.schemas[taskType]
	if !ok {
		return &ValidationResult{Valid: true}
	}
	if len(strings.TrimSpace(string(document))) == 0 {
		document = []byte("{}")
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "(root)", Message: err.Error(), Code: "invalid_json"}},
		}
	}
	return toValidationResult(result)
}

// ValidateInput validates an already-decoded document.
func (v *SchemaValidator) ValidateInput(taskType string, input map[string]interface{}) *ValidationResult {
	schema, ok := v.schemas[taskType]
	if !ok {
		return &ValidationResult{Valid: true}
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(input))
	if err != nil {
		return &ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "(root)", Message: err.Error(), Code: "invalid_document"}},
		}
	}
	return toValidationResult(result)
}

// Validate returns nil when document satisfies the schema, otherwise an error
// listing every violation.
func (v *SchemaValidator) Validate(taskType string, document []byte) error {
	res := v.ValidateJSON(taskType, document)
	if res.Valid {
		return nil
	}
	return fmt.Errorf("%s", strings.Join(res.GetErrorMessages(), "; "))
}

func toValidationResult(result *gojsonschema.Result) *ValidationResult {
	if result.Valid() {
		return &ValidationResult{Valid: true}
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   fieldOf(desc),
			Message: desc.Description(),
			Code:    desc.Type(),
		})
	}
	return &ValidationResult{Valid: false, Errors: errs}
}

// fieldOf names the offending property; required errors are reported against
// the missing property rather than its parent.
func fieldOf(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if desc.Type() != "required" {
		return field
	}
	property, ok := desc.Details()["property"].(string)
	if !ok {
		return field
	}
	if field == "(root)" || field == "" {
		return property
	}
	return field + "." + property
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// GetErrorsForField returns errors for a specific field
func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") || strings.HasPrefix(err.Field, field+"[") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

var phonePattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// ValidatePhone reports whether phone is an E.164 number, the format SNS
// requires for direct publishes.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
