package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fieldpath/value"
)

func TestFromAnyScalars(t *testing.T) {
	tests := []struct {
		in   any
		want value.Value
	}{
		{int(7), value.Integer(7)},
		{int8(-8), value.Integer(-8)},
		{int16(16), value.Integer(16)},
		{int32(-32), value.Integer(-32)},
		{int64(64), value.Integer(64)},
		{uint(7), value.Integer(7)},
		{uint8(8), value.Integer(8)},
		{uint16(16), value.Integer(16)},
		{uint32(32), value.Integer(32)},
		{uint64(64), value.Integer(64)},
		{float32(0.5), value.Double(0.5)},
		{float64(3.14), value.Double(3.14)},
		{true, value.Bool(true)},
		{"fast", value.Text("fast")},
		{value.Integer(1), value.Integer(1)},
	}

	for _, tt := range tests {
		got, err := value.FromAny(tt.in)
		require.NoError(t, err, "FromAny(%#v)", tt.in)
		assert.True(t, got.Equal(tt.want), "FromAny(%#v) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestFromAnyRejects(t *testing.T) {
	_, err := value.FromAny(nil)
	assert.Error(t, err)

	_, err = value.FromAny(map[string]any{"x": 1})
	assert.Error(t, err)

	_, err = value.FromAny([]int{1, 2})
	assert.Error(t, err)

	_, err = value.FromAny(uint64(math.MaxUint64))
	assert.Error(t, err, "uint64 above int64 range must not wrap")
}

// Dynamic wire data reaches this core as decoder output; YAML is the
// representative decoder here.
func TestFromAnyOverYAML(t *testing.T) {
	var doc map[string]any

	input := `
max_vertical_velocity: 40.0
retries: 3
verbose: true
version: "v2"
`
	require.NoError(t, yaml.Unmarshal([]byte(input), &doc))

	v, err := value.FromAny(doc["max_vertical_velocity"])
	require.NoError(t, err)
	assert.True(t, v.Equal(value.Double(40.0)))

	v, err = value.FromAny(doc["retries"])
	require.NoError(t, err)
	assert.True(t, v.Equal(value.Integer(3)))

	v, err = value.FromAny(doc["verbose"])
	require.NoError(t, err)
	assert.True(t, v.Equal(value.Bool(true)))

	v, err = value.FromAny(doc["version"])
	require.NoError(t, err)
	assert.True(t, v.Equal(value.Text("v2")))

	// a whole mapping is not a scalar and must be rejected
	_, err = value.FromAny(doc)
	assert.Error(t, err)
}
