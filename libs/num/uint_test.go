package num_test

import (
	"testing"

	"github.com/tickbook/tickbook/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUintBasics(t *testing.T) {
	t.Run("Clone is detached from the original", testUintClone)
	t.Run("Sub clamps at zero on underflow", testUintSubUnderflow)
	t.Run("Delta returns magnitude and sign", testUintDelta)
	t.Run("Comparisons", testUintCompare)
}

func TestMulDiv(t *testing.T) {
	t.Run("Small values", testMulDivSmall)
	t.Run("Intermediate product beyond 256 bits of inputs", testMulDivWide)
	t.Run("Truncates towards zero", testMulDivTruncates)
}

func testUintClone(t *testing.T) {
	a := num.NewUint(100)
	b := a.Clone()
	b.AddSum(num.NewUint(50))
	assert.True(t, a.EQ(num.NewUint(100)))
	assert.True(t, b.EQ(num.NewUint(150)))
}

func testUintSubUnderflow(t *testing.T) {
	// uint256 subtraction wraps, SubOverflow reports it
	_, underflow := num.UintZero().SubOverflow(num.NewUint(1), num.NewUint(2))
	assert.True(t, underflow)

	res, underflow := num.UintZero().SubOverflow(num.NewUint(5), num.NewUint(2))
	assert.False(t, underflow)
	assert.True(t, res.EQ(num.NewUint(3)))
}

func testUintDelta(t *testing.T) {
	d, neg := num.UintZero().Delta(num.NewUint(10), num.NewUint(4))
	assert.False(t, neg)
	assert.True(t, d.EQ(num.NewUint(6)))

	d, neg = num.UintZero().Delta(num.NewUint(4), num.NewUint(10))
	assert.True(t, neg)
	assert.True(t, d.EQ(num.NewUint(6)))
}

func testUintCompare(t *testing.T) {
	small, big := num.NewUint(1), num.NewUint(2)
	assert.True(t, small.LT(big))
	assert.True(t, small.LTE(small))
	assert.True(t, big.GT(small))
	assert.True(t, big.GTE(big))
	assert.True(t, small.NEQ(big))
	assert.True(t, num.UintZero().IsZero())
	assert.True(t, num.Min(big, small).EQ(small))
	assert.True(t, num.Max(big, small).EQ(big))
}

func testMulDivSmall(t *testing.T) {
	// 2000 * 300 / 1000
	res := num.MulDiv(num.NewUint(2000), num.NewUint(300), num.NewUint(1000))
	assert.True(t, res.EQ(num.NewUint(600)))
}

func testMulDivWide(t *testing.T) {
	// x * y does not fit 256 bits, x * y / y must still round-trip
	x, overflow := num.UintFromString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff0", 16)
	require.False(t, overflow)
	y := num.NewUint(1 << 40)

	res := num.MulDiv(x, y, y)
	assert.True(t, res.EQ(x))
}

func testMulDivTruncates(t *testing.T) {
	// 7 * 3 / 2 = 10.5 -> 10
	res := num.MulDiv(num.NewUint(7), num.NewUint(3), num.NewUint(2))
	assert.True(t, res.EQ(num.NewUint(10)))
}
