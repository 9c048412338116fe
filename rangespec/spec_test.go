package rangespec_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/rangeset/rangespec"
)

var (
	inf    = math.Inf(1)
	negInf = math.Inf(-1)
)

func TestNumeric_Predicates(t *testing.T) {
	spec := rangespec.NewNumeric[float64]()

	require.True(t, spec.IsEqual(1, 1))
	require.False(t, spec.IsEqual(1, 2))
	require.True(t, spec.IsEqual(inf, inf))
	require.False(t, spec.IsEqual(negInf, inf))

	require.True(t, spec.IsGreaterThan(20, 10))
	require.False(t, spec.IsGreaterThan(10, 20))
	require.False(t, spec.IsGreaterThan(10, 10))
	require.True(t, spec.IsGreaterThan(10, negInf))
	require.True(t, spec.IsGreaterThan(inf, 10))
	require.False(t, spec.IsGreaterThan(10, inf))
	require.False(t, spec.IsGreaterThan(negInf, 10))

	require.True(t, spec.IsLessThan(10, 20))
	require.False(t, spec.IsLessThan(20, 10))
	require.False(t, spec.IsLessThan(10, 10))
	require.False(t, spec.IsLessThan(10, negInf))
	require.False(t, spec.IsLessThan(inf, 10))
	require.True(t, spec.IsLessThan(10, inf))
	require.True(t, spec.IsLessThan(negInf, 10))

	require.True(t, spec.IsGreaterOrEqualTo(20, 10))
	require.False(t, spec.IsGreaterOrEqualTo(10, 20))
	require.True(t, spec.IsGreaterOrEqualTo(10, 10))
	require.True(t, spec.IsGreaterOrEqualTo(10, negInf))
	require.True(t, spec.IsGreaterOrEqualTo(inf, 10))
	require.False(t, spec.IsGreaterOrEqualTo(10, inf))
	require.False(t, spec.IsGreaterOrEqualTo(negInf, 10))

	require.True(t, spec.IsLessOrEqualTo(10, 20))
	require.False(t, spec.IsLessOrEqualTo(20, 10))
	require.True(t, spec.IsLessOrEqualTo(10, 10))
	require.False(t, spec.IsLessOrEqualTo(10, negInf))
	require.False(t, spec.IsLessOrEqualTo(inf, 10))
	require.True(t, spec.IsLessOrEqualTo(10, inf))
	require.True(t, spec.IsLessOrEqualTo(negInf, 10))

	require.True(t, spec.IsInfinity(inf))
	require.True(t, spec.IsInfinity(negInf))
	require.False(t, spec.IsInfinity(10))

	require.Equal(t, 0, spec.Compare(inf, inf))
	require.Equal(t, -1, spec.Compare(negInf, inf))
	require.Equal(t, 1, spec.Compare(20, 10))
}

func TestNumeric_Operations(t *testing.T) {
	spec := rangespec.NewNumeric[float64]()

	require.Equal(t, 1.0, spec.Unit())

	require.Equal(t, 30.0, spec.Plus(10, 20))
	require.Equal(t, inf, spec.Plus(10, inf))
	require.Equal(t, negInf, spec.Plus(10, negInf))
	require.Equal(t, -10.0, spec.Minus(10, 20))
	require.Equal(t, inf, spec.Minus(10, negInf))
	require.Equal(t, negInf, spec.Minus(10, inf))
	require.Equal(t, negInf, spec.Minus(negInf, 10))
	require.Equal(t, inf, spec.Minus(inf, 10))

	require.Equal(t, 10.0, spec.Min(10, 20))
	require.Equal(t, 10.0, spec.Min(20, 10))
	require.Equal(t, negInf, spec.Min(negInf, 10))
	require.Equal(t, negInf, spec.Min(10, negInf))
	require.Equal(t, 10.0, spec.Min(inf, 10))
	require.Equal(t, 10.0, spec.Min(10, inf))
	require.Equal(t, 20.0, spec.Max(10, 20))
	require.Equal(t, 20.0, spec.Max(20, 10))
	require.Equal(t, 10.0, spec.Max(negInf, 10))
	require.Equal(t, 10.0, spec.Max(10, negInf))
	require.Equal(t, inf, spec.Max(inf, 10))
	require.Equal(t, inf, spec.Max(10, inf))
}

func TestNumeric_Integers(t *testing.T) {
	spec := rangespec.NewNumeric[uint16]()

	require.Equal(t, uint16(1), spec.Unit())
	require.False(t, spec.IsInfinity(65535))
	require.True(t, spec.IsLessThan(0, 65535))
	require.Equal(t, uint16(7), spec.Max(7, 3))
}

func TestOrdered_Strings(t *testing.T) {
	spec := rangespec.Ordered[string]()

	require.True(t, spec.IsLessThan("apple", "banana"))
	require.True(t, spec.IsGreaterOrEqualTo("banana", "banana"))
	require.Equal(t, "apple", spec.Min("banana", "apple"))
	require.Equal(t, "banana", spec.Max("banana", "apple"))
	require.False(t, spec.IsInfinity(""))

	requirePanicsWith(t, rangespec.ErrArithmeticUnsupported, func() { spec.Unit() })
	requirePanicsWith(t, rangespec.ErrArithmeticUnsupported, func() { spec.Plus("a", "b") })
	requirePanicsWith(t, rangespec.ErrArithmeticUnsupported, func() { spec.Minus("b", "a") })
}

func TestCustom_Options(t *testing.T) {
	spec := rangespec.New(func(a, b time.Duration) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	},
		rangespec.WithArithmetic(time.Second,
			func(a, b time.Duration) time.Duration { return a + b },
			func(a, b time.Duration) time.Duration { return a - b },
		),
		rangespec.WithInfinity(func(value time.Duration) bool {
			return value == math.MaxInt64 || value == math.MinInt64
		}),
	)

	require.Equal(t, time.Second, spec.Unit())
	require.Equal(t, 3*time.Second, spec.Plus(time.Second, 2*time.Second))
	require.Equal(t, time.Second, spec.Minus(3*time.Second, 2*time.Second))
	require.True(t, spec.IsInfinity(math.MaxInt64))
	require.True(t, spec.IsInfinity(math.MinInt64))
	require.False(t, spec.IsInfinity(time.Hour))
	require.True(t, spec.IsGreaterThan(time.Hour, time.Minute))
}

func TestCustom_Consistency(t *testing.T) {
	spec := rangespec.New(strings.Compare)
	values := []string{"", "a", "ab", "b", "ba"}

	for _, a := range values {
		for _, b := range values {
			require.Equal(t, spec.IsEqual(a, b) || spec.IsGreaterThan(a, b), spec.IsGreaterOrEqualTo(a, b))
			require.Equal(t, spec.IsEqual(a, b) || spec.IsLessThan(a, b), spec.IsLessOrEqualTo(a, b))
			require.Equal(t, spec.IsLessThan(a, b), spec.IsGreaterThan(b, a))
		}
	}
}

func requirePanicsWith(t *testing.T, expectedErr error, f func()) {
	t.Helper()

	defer func() {
		err, isError := recover().(error)
		require.True(t, isError)
		require.True(t, ierrors.Is(err, expectedErr))
	}()

	f()
}
