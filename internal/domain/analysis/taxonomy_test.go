package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomy_IDsUniqueAndWeightsPositive(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories() {
		assert.False(t, seen[c.ID], "duplicate category id %q", c.ID)
		seen[c.ID] = true
		assert.Greater(t, c.Weight, 0, "category %q", c.ID)
		assert.NotEmpty(t, c.Keywords, "category %q", c.ID)
	}
}

func TestLookupCategory(t *testing.T) {
	c, ok := LookupCategory("arbitration")
	require.True(t, ok)
	assert.Equal(t, 25, c.Weight)
	assert.Equal(t, "Mandatory Arbitration", c.Name)

	_, ok = LookupCategory("does_not_exist")
	assert.False(t, ok)
}

func TestNormalizeCategoryID(t *testing.T) {
	assert.Equal(t, "data_sharing", NormalizeCategoryID("Data Sharing"))
	assert.Equal(t, "account_termination", NormalizeCategoryID("ACCOUNT TERMINATION"))
	assert.Equal(t, "tracking", NormalizeCategoryID("tracking"))
}
