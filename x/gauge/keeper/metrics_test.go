package keeper

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestMetricValue(t *testing.T) {
	require.Equal(t, float64(100), metricValue(math.NewInt(100)))

	huge := math.NewIntWithDecimal(1, 30)
	require.False(t, huge.IsInt64())
	var got float64
	require.NotPanics(t, func() { got = metricValue(huge) })
	require.InEpsilon(t, 1e30, got, 1e-12)
}
