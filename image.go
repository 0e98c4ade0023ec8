//go:build xlgrid_image

package xlgrid

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"
)

// BinaryWriter is an optional sink capability for raw byte cells.
type BinaryWriter interface {
	WriteBinary(row, col int, data []byte) error
}

// Image is a field holding raw image bytes. It bypasses the encoder's byte
// blob rejection and is written through a sink implementing
// [BinaryWriter]; any other sink rejects it with [ErrUnsupportedShape].
type Image []byte

// MarshalCells implements [Marshaler].
func (img Image) MarshalCells(e *Encoder) error { return e.Binary(img) }

// UnmarshalText copies the raw bytes.
func (img *Image) UnmarshalText(b []byte) error {
	*img = append((*img)[:0], b...)
	return nil
}

// Binary writes data as a binary cell when the sink supports it.
func (e *Encoder) Binary(data []byte) error {
	bw, ok := e.sink.(BinaryWriter)
	if !ok {
		return fmt.Errorf("%w: sink %T has no binary cells at %s", ErrUnsupportedShape, e.sink, e.cursor)
	}
	if err := bw.WriteBinary(e.cursor.Row, e.cursor.Col, data); err != nil {
		return e.writeErr(err)
	}
	e.cursor.Col++
	return nil
}

var pictureExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/bmp":  ".bmp",
	"image/webp": ".webp",
}

// WriteBinary anchors a picture at the cell. The image type is sniffed from
// the content.
func (s *XLSXSink) WriteBinary(row, col int, data []byte) error {
	ext, ok := pictureExtensions[http.DetectContentType(data)]
	if !ok {
		return fmt.Errorf("unrecognized image content (%d bytes)", len(data))
	}
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return s.file.AddPictureFromBytes(s.sheet, ref, &excelize.Picture{
		Extension: ext,
		File:      data,
	})
}
