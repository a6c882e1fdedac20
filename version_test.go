package jsonattr_test

import (
	"testing"

	"github.com/0xalexb/jsonattr"

	"github.com/stretchr/testify/require"
)

func TestVersion_DefaultValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", jsonattr.Version)
	require.Equal(t, "unknown", jsonattr.CompiledAt)
}
