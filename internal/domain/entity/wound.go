package entity

// BoundingBox ограничивающий прямоугольник области раны в пикселях
type BoundingBox struct {
	Left   int `json:"left"`   // координата X левого верхнего угла
	Top    int `json:"top"`    // координата Y левого верхнего угла
	Right  int `json:"right"`  // Left + Width
	Bottom int `json:"bottom"` // Top + Height
}

// NewBoundingBox создаёт прямоугольник по углу и размерам.
func NewBoundingBox(x, y, w, h int) BoundingBox {
	return BoundingBox{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width ширина прямоугольника в пикселях
func (b BoundingBox) Width() int {
	return b.Right - b.Left
}

// Height высота прямоугольника в пикселях
func (b BoundingBox) Height() int {
	return b.Bottom - b.Top
}

// Region самая большая найденная область раны.
type Region struct {
	Area float64     // площадь контура в пикселях
	Box  BoundingBox // ограничивающий прямоугольник контура
}

// Measurement размеры раны в сантиметрах.
type Measurement struct {
	WoundArea     float64 `json:"wound_area"`
	CustomAidArea float64 `json:"custom_aid_area"`
	Length        float64 `json:"length"`
	Width         float64 `json:"width"`
}

// WoundImages закодированные в JPEG изображения одного анализа.
type WoundImages struct {
	Original  []byte
	Annotated []byte
	Mask      []byte
	Result    []byte
}

// WoundAnalysis итог работы детектора: область и отрисованные изображения.
type WoundAnalysis struct {
	ImageWidth  int
	ImageHeight int
	Region      Region
	Images      WoundImages
}

// CaptureImages изображения для ответа клиенту в виде data-URL.
type CaptureImages struct {
	Annotated string `json:"annotated"`
	Mask      string `json:"mask"`
	Result    string `json:"result"`
}

// CaptureResult результат одного запроса на анализ раны.
type CaptureResult struct {
	Timestamp    string        `json:"timestamp"`
	Measurements Measurement   `json:"measurements"`
	Images       CaptureImages `json:"images"`
	Region       Region        `json:"-"`
	Annotated    []byte        `json:"-"` // аннотированный JPEG для транспортов без data-URL
}
