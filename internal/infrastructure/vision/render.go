//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"image"

	"gocv.io/x/gocv"

	"wound-analyzer/internal/domain/entity"
)

var captionOrigin = image.Pt(10, 50)

// Annotate рисует подпись и рамку на копии кадра.
func (d *WoundDetector) Annotate(frame gocv.Mat, box entity.BoundingBox) gocv.Mat {
	annotated := frame.Clone()

	gocv.PutTextWithParams(&annotated, d.opts.Caption, captionOrigin,
		gocv.FontHersheySimplex, 1, d.opts.CaptionColor, 3, gocv.LineAA, false)

	rect := image.Rect(box.Left, box.Top, box.Right, box.Bottom)
	gocv.Rectangle(&annotated, rect, d.opts.BoxColor, d.opts.BoxThickness)

	return annotated
}

// MaskedOnly оставляет исходные пиксели под маской, остальное чёрное.
func MaskedOnly(frame, mask gocv.Mat) gocv.Mat {
	result := gocv.NewMatWithSize(frame.Rows(), frame.Cols(), frame.Type())
	result.SetTo(gocv.NewScalar(0, 0, 0, 0))
	gocv.BitwiseAndWithMask(frame, frame, &result, mask)
	return result
}

// EncodeJPEG сжимает матрицу в JPEG.
func EncodeJPEG(mat gocv.Mat, quality int) ([]byte, error) {
	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, mat, []int{gocv.IMWriteJpegQuality, quality})
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	return bytes.Clone(buf.GetBytes()), nil
}
