package entity

import (
	"strconv"
)

// Калибровочные значения по умолчанию. Рассчитаны под фиксированное расстояние
// и разрешение камеры, на каждом запросе не пересчитываются.
const (
	DefaultReferenceArea   = 208154.0
	DefaultWoundAreaFactor = 0.6615
	DefaultBoxAreaFactor   = 2.989e-4
	DefaultPixelsPerCm     = 95.23
)

// Calibration коэффициенты перевода пикселей в сантиметры.
type Calibration struct {
	ReferenceArea   float64 // эталонная площадь в пикселях (100%)
	WoundAreaFactor float64 // см² на один процент эталонной площади
	BoxAreaFactor   float64 // см² на пиксель площади прямоугольника
	PixelsPerCm     float64 // пикселей в одном сантиметре
}

// DefaultCalibration возвращает калибровку по умолчанию.
func DefaultCalibration() Calibration {
	return Calibration{
		ReferenceArea:   DefaultReferenceArea,
		WoundAreaFactor: DefaultWoundAreaFactor,
		BoxAreaFactor:   DefaultBoxAreaFactor,
		PixelsPerCm:     DefaultPixelsPerCm,
	}
}

// Measure переводит площадь контура и размеры прямоугольника в сантиметры.
func (c Calibration) Measure(region Region) Measurement {
	w := float64(region.Box.Width())
	h := float64(region.Box.Height())
	areaRatio := (region.Area / c.ReferenceArea) * 100

	return Measurement{
		WoundArea:     Round2(areaRatio * c.WoundAreaFactor),
		CustomAidArea: Round2(w * h * c.BoxAreaFactor),
		Length:        Round2(w / c.PixelsPerCm),
		Width:         Round2(h / c.PixelsPerCm),
	}
}

// Round2 округляет до двух знаков по точному двоичному значению числа,
// точные половины уходят к чётному.
func Round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
