package services

import (
	"testing"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIDs(t *testing.T) {
	a := "6f1c2a64-8d7e-4b7a-9d43-2b7f0f3f8a11"
	b := "0b9e5c1d-3e44-4a2f-8c55-7a1d2e3f4b66"

	got, err := normalizeIDs("investor_id", []string{" " + a, b, a})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, got)

	for _, bad := range [][]string{nil, {}, {""}, {a, "x"}} {
		_, err := normalizeIDs("investor_id", bad)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "input %v", bad)
	}
}

func TestRequireID(t *testing.T) {
	id, err := requireID("project_id", "  6f1c2a64-8d7e-4b7a-9d43-2b7f0f3f8a11\t")
	require.NoError(t, err)
	assert.Equal(t, "6f1c2a64-8d7e-4b7a-9d43-2b7f0f3f8a11", id)

	id, err = requireID("project_id", "6F1C2A64-8D7E-4B7A-9D43-2B7F0F3F8A11")
	require.NoError(t, err)
	assert.Equal(t, "6f1c2a64-8d7e-4b7a-9d43-2b7f0f3f8a11", id)

	_, err = requireID("project_id", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "project_id is required")
}
