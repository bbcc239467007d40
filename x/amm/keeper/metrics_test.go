package keeper

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestMetricValue(t *testing.T) {
	require.Equal(t, float64(1_000), metricValue(math.NewInt(1_000)))
	require.Equal(t, float64(0), metricValue(math.ZeroInt()))

	huge := math.NewIntWithDecimal(1, 24)
	require.False(t, huge.IsInt64())
	var got float64
	require.NotPanics(t, func() { got = metricValue(huge) })
	require.InEpsilon(t, 1e24, got, 1e-12)
}
