package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/scoring"
)

type searchInput struct {
	Query string `json:"query"`
	Size  int    `json:"size"`
}

func TestDecodeJobVariables(t *testing.T) {
	v := newValidator(t)

	var in searchInput
	require.NoError(t, v.DecodeJobVariables("search-occupations", `{"query":"nurse","size":3}`, &in))
	assert.Equal(t, searchInput{Query: "nurse", Size: 3}, in)

	err := v.DecodeJobVariables("search-occupations", `{"size":3}`, &in)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidInput))
	assert.Contains(t, err.Error(), "query")
}

func TestDecodeJobVariables_NilValidatorOnlyDecodes(t *testing.T) {
	var v *SchemaValidator
	var in searchInput

	require.NoError(t, v.DecodeJobVariables("search-occupations", "", &in))
	assert.Empty(t, in.Query)

	err := v.DecodeJobVariables("search-occupations", `{"size":"three"}`, &in)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidInput))
}

func TestResolveParameters(t *testing.T) {
	zero := 0.0
	params, err := ResolveParameters(scoring.DefaultParameters(), &scoring.ParameterOverrides{Alpha: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0.0, params.Alpha)
	assert.Equal(t, 0.15, params.Beta)

	negative := -0.5
	_, err = ResolveParameters(scoring.DefaultParameters(), &scoring.ParameterOverrides{Gamma: &negative})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidParameters))

	params, err = ResolveParameters(scoring.DefaultParameters(), nil)
	require.NoError(t, err)
	assert.Equal(t, scoring.DefaultParameters(), params)
}
