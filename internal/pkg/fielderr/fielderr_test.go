package fielderr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddKeepsFirstMessagePerField(t *testing.T) {
	e := New()
	e.Add("check_in", "missing")
	e.Add("check_in", "in the past")

	assert.Equal(t, map[string]string{"check_in": "missing"}, e.Fields())
}

func TestHas(t *testing.T) {
	e := New()
	assert.False(t, e.Has())

	e.Add("name", "required")
	assert.True(t, e.Has())
}

func TestFrom(t *testing.T) {
	e := New()
	e.Add("name", "required")

	wrapped := fmt.Errorf("validate booking: %w", e)
	assert.Equal(t, e, From(wrapped))

	assert.Nil(t, From(errors.New("plain")))
	assert.Nil(t, From(nil))
}
