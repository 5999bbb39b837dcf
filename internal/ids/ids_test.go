package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsMonotonic(t *testing.T) {
	a, b := New(), New()
	assert.Len(t, a, 26)
	assert.Less(t, a, b)
}

func TestFileName(t *testing.T) {
	name := FileName("quiz_results", "csv")
	assert.True(t, strings.HasPrefix(name, "quiz_results_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}
