package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeseer/solstake/internal/report"
	"github.com/stakeseer/solstake/internal/staking"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestProjectionChartRendersPNG(t *testing.T) {
	png, err := report.ProjectionChart(10, 9.5, 365, 150)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestProjectionChartZeroHorizon(t *testing.T) {
	png, err := report.ProjectionChart(10, 9.5, 0, 150)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestProjectionChartZeroPrincipal(t *testing.T) {
	_, err := report.ProjectionChart(0, 9.5, 365, 150)
	require.ErrorIs(t, err, staking.ErrZeroPrincipal)
}
