package insideideo

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeDataURL converts binary image bytes into a data URL embeddable as
// an image source.
func EncodeDataURL(mediaType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURL converts a data URL back into its media type and binary
// payload. Only base64-encoded data URLs are accepted.
func DecodeDataURL(dataURL string) (mediaType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, Errorf(EINVALID, "not a data URL")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, Errorf(EINVALID, "malformed data URL")
	}

	mediaType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, Errorf(EINVALID, "data URL is not base64 encoded")
	}
	if mediaType == "" {
		mediaType = "text/plain"
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, Errorf(EINVALID, "data URL payload is not valid base64")
	}
	return mediaType, data, nil
}

// MediaTypeExt returns the conventional file extension for an image media
// type, defaulting to "png".
func MediaTypeExt(mediaType string) string {
	switch mediaType {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	default:
		return "png"
	}
}
