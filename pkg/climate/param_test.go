package climate

import (
	"errors"
	"testing"

	"multinoise/pkg/climateerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParam_Inverted(t *testing.T) {
	_, err := NewParam(10, 5)
	assert.True(t, errors.Is(err, climateerr.ErrParamInverted))
}

func TestNewParam_Valid(t *testing.T) {
	p, err := NewParam(5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Min)
	assert.Equal(t, int64(10), p.Max)
}

func TestParam_Distance(t *testing.T) {
	p, err := NewParam(-100, 100)
	require.NoError(t, err)

	assert.Equal(t, int64(0), p.distance(0))
	assert.Equal(t, int64(0), p.distance(100))
	assert.Equal(t, int64(0), p.distance(-100))
	assert.Equal(t, int64(50), p.distance(150))
	assert.Equal(t, int64(50), p.distance(-150))
}

func TestParam_Union(t *testing.T) {
	a, err := NewParam(0, 10)
	require.NoError(t, err)
	b, err := NewParam(-5, 5)
	require.NoError(t, err)

	u := a.union(b)
	assert.Equal(t, int64(-5), u.Min)
	assert.Equal(t, int64(10), u.Max)
}

func TestQuantizeRoundTrip(t *testing.T) {
	tp := NewTargetPoint(1.0, 0.2, -0.6, 0.0, 0.0, 0.0)
	v := tp.Vec()
	assert.InDelta(t, 1.0, v[0], 1e-9)
	assert.InDelta(t, 0.2, v[1], 1e-9)
	assert.InDelta(t, -0.6, v[2], 1e-9)
	assert.Equal(t, 0.0, v[6])
}

func TestParamPointSpace_OffsetAxis(t *testing.T) {
	zero := ParamPointValue(0)
	pp := NewParamPoint(zero, zero, zero, zero, zero, zero, 0.25)
	space := pp.space()
	assert.Equal(t, int64(2500), space[6].Min)
	assert.Equal(t, int64(2500), space[6].Max)
}
