package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalibrationMeasure_RedRectangle(t *testing.T) {
	// Контур сплошного прямоугольника 100x50 проходит по центрам крайних
	// пикселей, поэтому его площадь 99*49.
	region := Region{Area: 99 * 49, Box: NewBoundingBox(40, 30, 100, 50)}

	m := DefaultCalibration().Measure(region)
	require.Equal(t, 1.54, m.WoundArea)
	require.Equal(t, 1.49, m.CustomAidArea)
	require.Equal(t, 1.05, m.Length)
	require.Equal(t, 0.53, m.Width)
}

func TestCalibrationMeasure_Table(t *testing.T) {
	cases := []struct {
		w, h      int
		length    float64
		width     float64
		aid       float64
		woundArea float64
	}{
		{w: 120, h: 80, length: 1.26, width: 0.84, aid: 2.87, woundArea: 2.99},
		{w: 200, h: 150, length: 2.1, width: 1.58, aid: 8.97, woundArea: 9.42},
		{w: 60, h: 40, length: 0.63, width: 0.42, aid: 0.72, woundArea: 0.73},
	}

	cal := DefaultCalibration()
	for _, tc := range cases {
		region := Region{
			Area: float64((tc.w - 1) * (tc.h - 1)),
			Box:  NewBoundingBox(0, 0, tc.w, tc.h),
		}
		m := cal.Measure(region)
		require.Equal(t, tc.length, m.Length, "length %dx%d", tc.w, tc.h)
		require.Equal(t, tc.width, m.Width, "width %dx%d", tc.w, tc.h)
		require.Equal(t, tc.aid, m.CustomAidArea, "aid %dx%d", tc.w, tc.h)
		require.Equal(t, tc.woundArea, m.WoundArea, "wound %dx%d", tc.w, tc.h)
	}
}

func TestCalibrationMeasure_Override(t *testing.T) {
	cal := Calibration{
		ReferenceArea:   10000,
		WoundAreaFactor: 1,
		BoxAreaFactor:   0.01,
		PixelsPerCm:     10,
	}
	m := cal.Measure(Region{Area: 2500, Box: NewBoundingBox(0, 0, 50, 20)})
	require.Equal(t, 25.0, m.WoundArea)
	require.Equal(t, 10.0, m.CustomAidArea)
	require.Equal(t, 5.0, m.Length)
	require.Equal(t, 2.0, m.Width)
}

func TestRound2(t *testing.T) {
	require.Equal(t, 1.49, Round2(1.4944999999999999))
	require.Equal(t, 2.67, Round2(2.675))
	require.Equal(t, 0.0, Round2(0))
	require.Equal(t, 3.14, Round2(3.14159))
}
