package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-readiness-workers/pkg/registry"
)

func newValidator(t *testing.T) *SchemaValidator {
	t.Helper()
	v, err := NewDefaultValidator()
	require.NoError(t, err)
	return v
}

// ==========================
// Registry schemas
// ==========================

func TestValidateJSON_RegisteredTaskTypes(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name       string
		taskType   string
		doc        string
		valid      bool
		errorField string
	}{
		{
			name:     "readiness with minimal profile",
			taskType: "compute-idiosyncratic-readiness",
			doc:      `{"profile":{"educationLevel":"Bachelor","yearsExperience":5}}`,
			valid:    true,
		},
		{
			name:       "readiness without profile",
			taskType:   "compute-idiosyncratic-readiness",
			doc:        `{}`,
			errorField: "profile",
		},
		{
			name:       "nested required field",
			taskType:   "compute-idiosyncratic-readiness",
			doc:        `{"profile":{"yearsExperience":5}}`,
			errorField: "profile.educationLevel",
		},
		{
			name:       "negative experience",
			taskType:   "compute-idiosyncratic-readiness",
			doc:        `{"profile":{"educationLevel":"Master","yearsExperience":-1}}`,
			errorField: "profile.yearsExperience",
		},
		{
			name:     "opportunity by inline record",
			taskType: "compute-systematic-opportunity",
			doc:      `{"occupation":{"name":"Data Analyst","jobGrowthRate":0.25}}`,
			valid:    true,
		},
		{
			name:     "opportunity needs a name or a record",
			taskType: "compute-systematic-opportunity",
			doc:      `{"parameters":{"alpha":0.5}}`,
		},
		{
			name:       "alpha above one",
			taskType:   "compute-ai-readiness",
			doc:        `{"profile":{"educationLevel":"PhD","yearsExperience":1},"occupationName":"Data Analyst","parameters":{"alpha":1.2}}`,
			errorField: "parameters.alpha",
		},
		{
			name:       "completion outside unit interval",
			taskType:   "simulate-pathway-impact",
			doc:        `{"profile":{"educationLevel":"PhD","yearsExperience":1},"occupationName":"Data Analyst","pathwayId":1,"completion":1.5,"mastery":0.5}`,
			errorField: "completion",
		},
		{
			name:       "bad email",
			taskType:   "send-score-report",
			doc:        `{"recipientEmail":"not-an-email","occupationName":"Data Analyst","aiR":90,"vr":80,"hr":70}`,
			errorField: "recipientEmail",
		},
		{
			name:     "unregistered task type passes",
			taskType: "lead-scoring",
			doc:      `{"anything":true}`,
			valid:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.ValidateJSON(tt.taskType, []byte(tt.doc))
			assert.Equal(t, tt.valid, res.Valid, res.GetErrorMessages())
			if tt.errorField != "" {
				assert.True(t, res.HasErrors(tt.errorField), res.GetErrorMessages())
			}
		})
	}
}

func TestValidateJSON_EmptyAndMalformedDocuments(t *testing.T) {
	v := newValidator(t)

	empty := v.ValidateJSON("rank-occupations", nil)
	assert.False(t, empty.Valid)
	assert.True(t, empty.HasErrors("profile"))

	malformed := v.ValidateJSON("rank-occupations", []byte(`{"profile":`))
	assert.False(t, malformed.Valid)
	require.Len(t, malformed.Errors, 1)
	assert.Equal(t, "invalid_json", malformed.Errors[0].Code)
}

func TestValidate_ReturnsJoinedError(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Validate("search-occupations", []byte(`{"query":"analyst","size":5}`)))

	err := v.Validate("search-occupations", []byte(`{"size":500}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query")
	assert.Contains(t, err.Error(), "size")
}

func TestValidateInput_DecodedDocument(t *testing.T) {
	v := newValidator(t)

	res := v.ValidateInput("compare-pathways", map[string]interface{}{
		"profile":        map[string]interface{}{"educationLevel": "Bachelor", "yearsExperience": 3},
		"occupationName": "Data Analyst",
		"completion":     0.5,
		"mastery":        0.5,
		"pathwayIds":     []interface{}{1, 2},
	})
	assert.True(t, res.Valid, res.GetErrorMessages())
}

func TestNewSchemaValidator_RejectsBrokenSchema(t *testing.T) {
	reg := &registry.ActivityRegistry{Activities: []registry.Activity{{
		ID:          "a.b.c",
		TaskType:    "broken",
		InputSchema: map[string]interface{}{"type": 42},
	}}}
	_, err := NewSchemaValidator(reg)
	assert.Error(t, err)
}

// ==========================
// Result helpers
// ==========================

func TestValidationResult_Helpers(t *testing.T) {
	res := &ValidationResult{Errors: []ValidationError{
		{Field: "profile.yearsExperience", Message: "must be >= 0"},
		{Field: "profile", Message: "bad"},
		{Field: "skills.0.score", Message: "number expected"},
	}}

	assert.Equal(t, []string{
		"profile.yearsExperience: must be >= 0",
		"profile: bad",
		"skills.0.score: number expected",
	}, res.GetErrorMessages())
	assert.True(t, res.HasErrors("profile"))
	assert.False(t, res.HasErrors("skills"))
	assert.Len(t, res.GetErrorsForField("profile"), 2)
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+14155550123"))
	assert.False(t, ValidatePhone("4155550123"))
	assert.False(t, ValidatePhone("+1 415 555"))
}
