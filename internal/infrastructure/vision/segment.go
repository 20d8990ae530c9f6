//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"
)

// Segment переводит BGR-кадр в HSV и возвращает маску пикселей,
// попавших хотя бы в один из диапазонов. Сглаживание не применяется.
func (d *WoundDetector) Segment(frame gocv.Mat) gocv.Mat {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(frame, &hsv, gocv.ColorBGRToHSV)

	mask := gocv.NewMatWithSize(frame.Rows(), frame.Cols(), gocv.MatTypeCV8U)
	mask.SetTo(gocv.NewScalar(0, 0, 0, 0))

	band := gocv.NewMat()
	defer band.Close()
	for _, b := range d.opts.Bands {
		lower := gocv.NewScalar(b.Lower[0], b.Lower[1], b.Lower[2], 0)
		upper := gocv.NewScalar(b.Upper[0], b.Upper[1], b.Upper[2], 0)
		gocv.InRangeWithScalar(hsv, lower, upper, &band)
		gocv.BitwiseOr(mask, band, &mask)
	}

	return mask
}
