package port

// ImageCodec переводит изображения между транспортным текстом и байтами
type ImageCodec interface {
	// Decode принимает base64 или data-URL и возвращает байты контейнера
	Decode(payload string) ([]byte, error)

	// DataURL оборачивает JPEG-байты в data-URL
	DataURL(jpegData []byte) string
}
