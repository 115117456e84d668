package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("username", "maria"))
	assert.NotNil(t, Required("username", ""))
	assert.NotNil(t, Required("username", "   "))
}

func TestCollect(t *testing.T) {
	assert.NoError(t, Collect(Required("a", "x"), Required("b", "y")))

	err := Collect(Required("username", ""), Required("password", ""))
	assert.EqualError(t, err, "username: required; password: required")
}
