// Package imagecodec переводит изображения между base64/data-URL и сырыми байтами.
package imagecodec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"wound-analyzer/internal/domain/entity"
	"wound-analyzer/internal/domain/port"
)

// DataURLPrefix префикс data-URL для JPEG в ответах API
const DataURLPrefix = "data:image/jpeg;base64,"

// DecodePayload отбрасывает всё до первой запятой включительно и декодирует base64.
func DecodePayload(payload string) ([]byte, error) {
	if i := strings.IndexByte(payload, ','); i >= 0 {
		payload = payload[i+1:]
	}
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", entity.ErrDecode)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return data, nil
	}

	// Без паддинга принимается только строка совсем без '=', неверный паддинг остаётся ошибкой.
	if !strings.Contains(payload, "=") {
		if raw, rawErr := base64.RawStdEncoding.DecodeString(payload); rawErr == nil {
			return raw, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", entity.ErrDecode, err)
}

// Codec реализует port.ImageCodec поверх DecodePayload и EncodeDataURL
type Codec struct{}

// Decode декодирует base64 или data-URL
func (Codec) Decode(payload string) ([]byte, error) {
	return DecodePayload(payload)
}

// DataURL кодирует JPEG-байты в data-URL
func (Codec) DataURL(jpegData []byte) string {
	return EncodeDataURL(jpegData)
}

// EncodeDataURL оборачивает JPEG-байты в data-URL.
func EncodeDataURL(jpegData []byte) string {
	return DataURLPrefix + base64.StdEncoding.EncodeToString(jpegData)
}

// Проверка реализации интерфейса
var _ port.ImageCodec = Codec{}
