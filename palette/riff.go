package palette

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

const palVersion = 0x0300

// ReadRIFF reads every color of a RIFF palette as a material named after
// its hex value.
func ReadRIFF(r io.Reader) ([]Material, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open RIFF stream: %w", ErrLoad, err)
	} else if formType != palType {
		return nil, fmt.Errorf("%w: unsupported RIFF content type: %s", ErrLoad, string(formType[:]))
	}

	var res []Material
	for chunk := 0; ; chunk++ {
		id, size, data, err := rd.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return res, fmt.Errorf("%w: could not read chunk #%d: %w", ErrLoad, chunk, err)
		}
		if id != dataType {
			continue
		}

		buf := make([]byte, size)
		if _, err := io.ReadFull(data, buf); err != nil {
			return res, fmt.Errorf("%w: could not read chunk #%d: %w", ErrLoad, chunk, err)
		}

		colors, err := decodeLogPalette(buf)
		if err != nil {
			return res, fmt.Errorf("%w: chunk #%d: %w", ErrLoad, chunk, err)
		}
		for _, c := range colors {
			res = append(res, Material{Color: c, Name: c.String()})
		}
	}

	return res, nil
}

func decodeLogPalette(buf []byte) ([]Color, error) {
	if len(buf) < 4 {
		return nil, fmt.Errorf("not enough bytes for palette header: %d", len(buf))
	}
	if ver := binary.LittleEndian.Uint16(buf); ver != palVersion {
		return nil, fmt.Errorf("unsupported palette version: %#04x", ver)
	}

	count := int(binary.LittleEndian.Uint16(buf[2:]))
	entries := buf[4:]
	if len(entries) < count*4 {
		return nil, fmt.Errorf("not enough bytes for %d colors: %d", count, len(entries))
	}

	res := make([]Color, count)
	for i := range res {
		e := entries[i*4:]
		res[i] = Color{R: e[0], G: e[1], B: e[2]}
	}
	return res, nil
}

// WriteRIFF writes the candidate colors of p as a single RIFF palette chunk.
func WriteRIFF(w io.Writer, p *Palette) (int64, error) {
	n := len(p.Candidates)
	if n > 0xFFFF {
		return 0, fmt.Errorf("too many colors for a RIFF palette: %d", n)
	}

	chunkSize := 4 + n*4 // palVersion + palNumEntries + 4 bytes/color
	buf := make([]byte, 0, 12+8+chunkSize)
	buf = append(buf, riffType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(4+8+chunkSize))
	buf = append(buf, palType[:]...)
	buf = append(buf, dataType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(chunkSize))
	buf = binary.LittleEndian.AppendUint16(buf, palVersion)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(n))
	for _, c := range p.Candidates {
		buf = append(buf, c.R, c.G, c.B, 0x00)
	}

	written, err := w.Write(buf)
	if err != nil {
		return int64(written), fmt.Errorf("could not save palette: %w", err)
	} else if written != len(buf) {
		return int64(written), fmt.Errorf("could not save palette: wrote only %d/%d bytes", written, len(buf))
	}
	return int64(written), nil
}
