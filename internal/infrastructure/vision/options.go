// Package vision выделяет красную область раны на фотографии с помощью OpenCV.
//
// Все матрицы внутри пакета хранят пиксели в порядке BGR: IMDecode отдаёт
// BGR, сегментация ждёт BGR, отрисовка пишет цвета в BGR.
package vision

import "image/color"

// HSVBand диапазон порогов в пространстве HSV (OpenCV: H 0..180, S и V 0..255).
type HSVBand struct {
	Lower [3]float64
	Upper [3]float64
}

// Options настройки детектора раны.
type Options struct {
	Bands        []HSVBand  // диапазоны, объединяемые по ИЛИ
	Caption      string     // подпись на аннотированном изображении
	CaptionColor color.RGBA // цвет подписи (поле R попадает в красный канал BGR)
	BoxColor     color.RGBA // цвет рамки
	BoxThickness int        // толщина рамки в пикселях
	JPEGQuality  int        // качество JPEG для артефактов
}

// DefaultOptions два красных диапазона по обе стороны от перехода оттенка через 0.
func DefaultOptions() Options {
	return Options{
		Bands: []HSVBand{
			{Lower: [3]float64{0, 120, 70}, Upper: [3]float64{10, 255, 255}},
			{Lower: [3]float64{170, 120, 70}, Upper: [3]float64{180, 255, 255}},
		},
		Caption:      "Analyzing wound area...",
		CaptionColor: color.RGBA{R: 154, G: 74, B: 99, A: 255},
		BoxColor:     color.RGBA{B: 255, A: 255},
		BoxThickness: 2,
		JPEGQuality:  95,
	}
}
