package addition

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"
)

func TestNumber_String(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		n        Number
		expected string
	}{
		{Int(5), "5"},
		{Int(-15), "-15"},
		{Float(7), "7.0"},
		{Float(3.14), "3.14"},
		{Float(-0.5), "-0.5"},
		{Float(3000000), "3000000.0"},
		{Float(1e16), "1e+16"},
		{Float(0.00001), "1e-05"},
		{Float(math.Inf(1)), "+Inf"},
		{Number{}, "<invalid>"},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.n.String(), tc.expected)
	}
}

func TestNumber_Equal(t *testing.T) {
	t.Parallel()

	assert.Assert(t, Int(4).Equal(Int(4)))
	assert.Assert(t, !Int(4).Equal(Float(4)))
	assert.Assert(t, Float(math.NaN()).Equal(Float(math.NaN())))
	assert.Assert(t, Number{}.Equal(Number{}))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		in       Number
		expected Number
	}{
		{"whole float", Float(4), Int(4)},
		{"negative whole float", Float(-12), Int(-12)},
		{"fraction", Float(4.5), Float(4.5)},
		{"int untouched", Int(9), Int(9)},
		{"too large", Float(1e19), Float(1e19)},
		{"infinity", Float(math.Inf(-1)), Float(math.Inf(-1))},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Normalize(tc.in)
			assert.Assert(t, got.Equal(tc.expected), "got %v, want %v", got, tc.expected)
		})
	}
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	n, err := FromAny(int16(-3))
	assert.NilError(t, err)
	assert.Assert(t, n.Equal(Int(-3)))

	type celsius float64
	n, err = FromAny(celsius(21.5))
	assert.NilError(t, err)
	assert.Assert(t, n.Equal(Float(21.5)))

	_, err = FromAny("12")
	assert.ErrorIs(t, err, ErrInvalidOperandType)

	_, err = FromAny(Number{})
	assert.ErrorIs(t, err, ErrInvalidOperandType)
}
