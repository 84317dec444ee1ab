package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/scoring"
)

// DecodeJobVariables checks raw job variables against the task's input schema
// and decodes them into out. A nil validator only decodes. Failures are
// INVALID_INPUT errors.
func (v *SchemaValidator) DecodeJobVariables(taskType, raw string, out interface{}) error {
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}
	if v != nil {
		if res := v.ValidateJSON(taskType, []byte(raw)); !res.Valid {
			return apperrors.NewInvalidInputError(strings.Join(res.GetErrorMessages(), "; "))
		}
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return apperrors.NewInvalidInputError(fmt.Sprintf("parse input: %v", err))
	}
	return nil
}

// ResolveParameters applies per-job overrides to the configured defaults and
// rejects out-of-range results with INVALID_PARAMETERS.
func ResolveParameters(base scoring.Parameters, overrides *scoring.ParameterOverrides) (scoring.Parameters, error) {
	params := overrides.Apply(base)
	if err := params.Validate(); err != nil {
		return params, apperrors.NewInvalidParametersError(err)
	}
	return params, nil
}
