package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpecialties(t *testing.T) {
	got := NormalizeSpecialties([]string{" Corte", "Barba", "", "Corte", "  ", "Bigode "})
	assert.Equal(t, []string{"Corte", "Barba", "Bigode"}, got)

	assert.Equal(t, []string{}, NormalizeSpecialties(nil))
}
