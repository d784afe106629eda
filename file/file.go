// Package file converts content to and from data URLs and writes it out.
package file

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wailsapp/mimetype"
)

// ErrDataURL is returned for strings that are not base64 data URLs.
var ErrDataURL = errors.New("arbor: invalid data url")

// Blob is decoded data URL content.
type Blob struct {
	// Type is the media type without parameters, e.g. "image/png".
	Type string
	Data []byte
}

// Size returns the content length in bytes.
func (b Blob) Size() int { return len(b.Data) }

// DataURL reads r to the end and returns its content as a base64 data URL.
// The media type is detected from the content.
func DataURL(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	mime := mimetype.Detect(data)
	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ParseDataURLs decodes each data URL into a Blob, in order.
func ParseDataURLs(urls ...string) ([]Blob, error) {
	blobs := make([]Blob, 0, len(urls))
	for i, u := range urls {
		blob, err := parseDataURL(u)
		if err != nil {
			return nil, fmt.Errorf("url %d: %w", i, err)
		}
		blobs = append(blobs, blob)
	}
	return blobs, nil
}

func parseDataURL(u string) (Blob, error) {
	header, payload, ok := strings.Cut(u, ",")
	if !ok || !strings.HasPrefix(header, "data:") {
		return Blob{}, ErrDataURL
	}
	header = strings.TrimPrefix(header, "data:")

	mediaType, params, _ := strings.Cut(header, ";")
	if !strings.HasSuffix(params, "base64") {
		return Blob{}, fmt.Errorf("%w: not base64 encoded", ErrDataURL)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Blob{}, fmt.Errorf("%w: %v", ErrDataURL, err)
	}
	return Blob{Type: strings.TrimSpace(mediaType), Data: data}, nil
}

// Write copies content to w. content may be a string, a byte slice, a
// Blob or an io.Reader.
func Write(w io.Writer, content any) (int64, error) {
	var r io.Reader
	switch c := content.(type) {
	case string:
		r = strings.NewReader(c)
	case []byte:
		n, err := w.Write(c)
		return int64(n), err
	case Blob:
		n, err := w.Write(c.Data)
		return int64(n), err
	case io.Reader:
		r = c
	default:
		return 0, fmt.Errorf("arbor: cannot write %T", content)
	}
	return io.Copy(w, r)
}
