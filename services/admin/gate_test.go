package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_Authorize(t *testing.T) {
	g := NewGate("letmein")

	assert.NoError(t, g.Authorize("letmein"))
	for _, key := range []string{"", "letmein ", "LETMEIN", "letmei", "letmein2"} {
		assert.ErrorIs(t, g.Authorize(key), ErrForbidden, "key %q", key)
	}
}

func TestGate_EmptySecretRejectsEverything(t *testing.T) {
	g := NewGate("")
	assert.ErrorIs(t, g.Authorize(""), ErrForbidden)
	assert.ErrorIs(t, g.Authorize("anything"), ErrForbidden)
}
