package image

import (
	"encoding/binary"
	"io"
	"math"
)

// TIFF field types.
const (
	tiffShort    = 3
	tiffLong     = 4
	tiffRational = 5
)

// Baseline TIFF tags, in the ascending order they must appear in an IFD.
const (
	tagImageWidth          = 256
	tagImageLength         = 257
	tagBitsPerSample       = 258
	tagCompression         = 259
	tagPhotometric         = 262
	tagStripOffsets        = 273
	tagSamplesPerPixel     = 277
	tagRowsPerStrip        = 278
	tagStripByteCounts     = 279
	tagXResolution         = 282
	tagYResolution         = 283
	tagPlanarConfiguration = 284
	tagResolutionUnit      = 296
)

const (
	tiffHeaderSize = 8
	ifdEntrySize   = 12
	ifdEntryCount  = 13
	ifdSize        = 2 + ifdEntryCount*ifdEntrySize + 4

	// Out-of-line values follow the IFD: BitsPerSample (3 shorts) and the
	// two resolution rationals.
	bpsOffset    = tiffHeaderSize + ifdSize
	xResOffset   = bpsOffset + 6
	yResOffset   = xResOffset + 8
	pixelsOffset = yResOffset + 8
)

type ifdEntry struct {
	tag, typ uint16
	count    uint32
	value    uint32
}

// EncodeTIFF writes b as a little-endian, uncompressed, single-strip RGB
// TIFF with 8 bits per sample and no alpha channel.
//
// golang.org/x/image/tiff always emits an alpha sample, so the writer is
// kept here to produce genuinely 3-channel output. It returns ErrTooLarge
// if the file would not fit 32-bit offsets.
func EncodeTIFF(w io.Writer, b *ImageBuf) error {
	rowSize := uint64(b.width) * BytesPerPixel
	pixelBytes := rowSize * uint64(b.height)
	if pixelBytes+pixelsOffset > math.MaxUint32 {
		return ErrTooLarge
	}

	entries := [ifdEntryCount]ifdEntry{
		{tagImageWidth, tiffLong, 1, uint32(b.width)},
		{tagImageLength, tiffLong, 1, uint32(b.height)},
		{tagBitsPerSample, tiffShort, 3, bpsOffset},
		{tagCompression, tiffShort, 1, 1},
		{tagPhotometric, tiffShort, 1, 2},
		{tagStripOffsets, tiffLong, 1, pixelsOffset},
		{tagSamplesPerPixel, tiffShort, 1, 3},
		{tagRowsPerStrip, tiffLong, 1, uint32(b.height)},
		{tagStripByteCounts, tiffLong, 1, uint32(pixelBytes)},
		{tagXResolution, tiffRational, 1, xResOffset},
		{tagYResolution, tiffRational, 1, yResOffset},
		{tagPlanarConfiguration, tiffShort, 1, 1},
		{tagResolutionUnit, tiffShort, 1, 2},
	}

	le := binary.LittleEndian
	head := make([]byte, 0, pixelsOffset)
	head = append(head, 'I', 'I')
	head = le.AppendUint16(head, 42)
	head = le.AppendUint32(head, tiffHeaderSize)

	head = le.AppendUint16(head, ifdEntryCount)
	for _, e := range entries {
		head = le.AppendUint16(head, e.tag)
		head = le.AppendUint16(head, e.typ)
		head = le.AppendUint32(head, e.count)
		if e.typ == tiffShort && e.count == 1 {
			// Inline SHORT values are left-justified in the 4-byte field.
			head = le.AppendUint16(head, uint16(e.value))
			head = le.AppendUint16(head, 0)
		} else {
			head = le.AppendUint32(head, e.value)
		}
	}
	head = le.AppendUint32(head, 0) // no next IFD

	head = le.AppendUint16(head, 8)
	head = le.AppendUint16(head, 8)
	head = le.AppendUint16(head, 8)
	for range 2 {
		head = le.AppendUint32(head, 72)
		head = le.AppendUint32(head, 1)
	}

	if _, err := w.Write(head); err != nil {
		return err
	}

	if b.stride == int(rowSize) {
		_, err := w.Write(b.data[:pixelBytes])
		return err
	}
	for y := range b.height {
		if _, err := w.Write(b.RowBytes(y)); err != nil {
			return err
		}
	}
	return nil
}
