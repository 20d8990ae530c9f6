//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"wound-analyzer/internal/domain/entity"
)

// LargestRegion ищет внешние контуры маски и возвращает контур с
// наибольшей площадью. При равенстве площадей побеждает первый.
func LargestRegion(mask gocv.Mat) (entity.Region, error) {
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	if contours.Size() == 0 {
		return entity.Region{}, entity.ErrNoRegionDetected
	}

	maxArea := gocv.ContourArea(contours.At(0))
	maxIndex := 0
	for i := 1; i < contours.Size(); i++ {
		area := gocv.ContourArea(contours.At(i))
		if area > maxArea {
			maxArea = area
			maxIndex = i
		}
	}

	rect := gocv.BoundingRect(contours.At(maxIndex))
	return entity.Region{
		Area: maxArea,
		Box:  entity.NewBoundingBox(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy()),
	}, nil
}
