package render

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/pkg/errors"
)

// decodeDataURL decodes a base64 data URL ("data:image/png;base64,...") into
// an image. The browser client embeds uploaded logos this way, so no other
// image source exists.
func decodeDataURL(dataURL string) (image.Image, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, errors.New("not a data URL")
	}

	_, payload, found := strings.Cut(dataURL, ";base64,")
	if !found {
		return nil, errors.New("data URL is not base64 encoded")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrap(err, "decode base64 payload")
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "decode embedded image")
	}

	return img, nil
}
