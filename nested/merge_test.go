package nested

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_FillsAbsentKeys(t *testing.T) {
	t.Parallel()

	base := map[string]any{"present": "kept"}
	defaults := map[string]any{"present": "ignored", "added": 1}

	result, err := Merge(base, defaults)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"present": "kept", "added": 1}, result)
}

func TestMerge_FillsNullValues(t *testing.T) {
	t.Parallel()

	base := map[string]any{"empty": nil}
	defaults := map[string]any{"empty": "filled"}

	result, err := Merge(base, defaults)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"empty": "filled"}, result)
}

func TestMerge_KeepsFalsyValues(t *testing.T) {
	t.Parallel()

	base := map[string]any{"flag": false, "count": 0, "text": ""}
	defaults := map[string]any{"flag": true, "count": 10, "text": "default"}

	result, err := Merge(base, defaults)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"flag": false, "count": 0, "text": ""}, result)
}

func TestMerge_RecursesIntoMappings(t *testing.T) {
	t.Parallel()

	base := map[string]any{
		"api": map[string]any{"host": "example.com"},
	}
	defaults := map[string]any{
		"api": map[string]any{"host": "localhost", "port": 8080},
	}

	result, err := Merge(base, defaults)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"api": map[string]any{"host": "example.com", "port": 8080},
	}, result)
}

func TestMerge_MappingDefaultOverScalarBase(t *testing.T) {
	t.Parallel()

	base := map[string]any{"section": "scalar"}
	defaults := map[string]any{
		"section": map[string]any{"key": 1},
	}

	result, err := Merge(base, defaults)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"section": map[string]any{"key": 1},
	}, result)
}

func TestMerge_DefaultsNotMutated(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{
		"api": map[string]any{"port": 8080},
	}

	_, err := Merge(map[string]any{}, defaults)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"api": map[string]any{"port": 8080},
	}, defaults)
}

func TestMerge_NestedDefaultsDetachedFromResult(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{
		"api": map[string]any{"port": 8080},
	}

	result, err := Merge(map[string]any{}, defaults)

	require.NoError(t, err)

	Set(result, Path{"api", "port"}, 9090)

	assert.Equal(t, 8080, defaults["api"].(map[string]any)["port"])
}

func TestMerge_NonMappingBase(t *testing.T) {
	t.Parallel()

	_, err := Merge("scalar", map[string]any{})

	require.ErrorIs(t, err, ErrNotMapping)
}

func TestMerge_NonMappingDefaults(t *testing.T) {
	t.Parallel()

	_, err := Merge(map[string]any{}, []any{1, 2})

	require.ErrorIs(t, err, ErrNotMapping)
}

func TestNormalizeDefaults_SiblingLeavesCoexist(t *testing.T) {
	t.Parallel()

	result, err := NormalizeDefaults(map[string]any{
		"a.b": 1,
		"a.c": 2,
	}, "")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": map[string]any{"b": 1, "c": 2},
	}, result)
}

func TestNormalizeDefaults_MixedDepths(t *testing.T) {
	t.Parallel()

	result, err := NormalizeDefaults(map[string]any{
		"top":         true,
		"deep.er.key": "v",
	}, "")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"top": true,
		"deep": map[string]any{
			"er": map[string]any{"key": "v"},
		},
	}, result)
}

func TestNormalizeDefaults_CustomDelimiter(t *testing.T) {
	t.Parallel()

	result, err := NormalizeDefaults(map[string]any{
		"api:timeout": 30,
	}, ":")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"api": map[string]any{"timeout": 30},
	}, result)
}

func TestNormalizeDefaults_Empty(t *testing.T) {
	t.Parallel()

	result, err := NormalizeDefaults(map[string]any{}, "")

	require.NoError(t, err)
	assert.Empty(t, result)
}
