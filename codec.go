package contactsheet

import (
	"image"
	"io"

	intImage "github.com/gogpu/contactsheet/internal/image"
)

// Codec is the image codec used by a run: Decode reads source images and
// Encode serializes composites. The default decodes JPEG, PNG and TIFF and
// encodes 3-channel TIFF.
type Codec interface {
	Decode(r io.Reader) (image.Image, error)
	Encode(w io.Writer, m image.Image) error
}

// DefaultCodec returns the codec used when WithCodec is not given.
func DefaultCodec() Codec {
	return intImage.TIFFCodec{}
}
