package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_IsKnown(t *testing.T) {
	for _, category := range KnownCategories {
		assert.True(t, category.IsKnown(), category.String())
	}
	assert.False(t, Category("iot").IsKnown())
	assert.False(t, Category("").IsKnown())
}
