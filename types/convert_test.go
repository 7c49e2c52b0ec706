package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStringSlicePreserveString(t *testing.T) {
	assert.Equal(t, []string{"/drafts/**"}, ToStringSlicePreserveString("/drafts/**"))
	assert.Equal(t, []string{"a", "b"}, ToStringSlicePreserveString([]any{"a", "b"}))
	assert.Equal(t, []string{"1", "2"}, ToStringSlicePreserveString([]int{1, 2}))
	assert.Nil(t, ToStringSlicePreserveString(nil))

	_, err := ToStringSlicePreserveStringE(struct{}{})
	assert.Error(t, err)
}

func TestToBoolE(t *testing.T) {
	b, err := ToBoolE(false)
	require.NoError(t, err)
	assert.False(t, b)

	_, err = ToBoolE("false")
	assert.Error(t, err)
	_, err = ToBoolE(0)
	assert.Error(t, err)
}

func TestToStringE(t *testing.T) {
	s, err := ToStringE("github-dark")
	require.NoError(t, err)
	assert.Equal(t, "github-dark", s)

	_, err = ToStringE(42)
	assert.Error(t, err)
}
