package palette

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var ErrLoad = errors.New("could not load palette")

// column order of the palette table
const (
	colRed = iota
	colGreen
	colBlue
	colName
)

var channelNames = [...]string{colRed: "red", colGreen: "green", colBlue: "blue"}

// ReadCSV parses a palette table. The first record is a header and is
// skipped; every following record holds red, green, blue and name.
func ReadCSV(r io.Reader) ([]Material, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: could not read header: %w", ErrLoad, err)
	}

	var res []Material
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return res, fmt.Errorf("%w: trouble reading line %d: %w", ErrLoad, line, err)
		}

		m, err := parseRecord(record, line)
		if err != nil {
			return res, err
		}
		res = append(res, m)
	}

	return res, nil
}

func parseRecord(record []string, line int) (Material, error) {
	if len(record) <= colName {
		return Material{}, fmt.Errorf("%w: missing block name at line %d", ErrLoad, line)
	}

	var rgb [colName]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(strings.TrimSpace(record[i]), 10, 8)
		if err != nil {
			return Material{}, fmt.Errorf("%w: %s value at line %d is invalid: %q", ErrLoad, channelNames[i], line, record[i])
		}
		rgb[i] = uint8(v)
	}

	return Material{
		Color: Color{R: rgb[colRed], G: rgb[colGreen], B: rgb[colBlue]},
		Name:  record[colName],
	}, nil
}

// ReadMask reads one material name per line. Blank lines are ignored.
func ReadMask(r io.Reader) (Mask, error) {
	m := Mask{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			m[name] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: could not read mask: %w", ErrLoad, err)
	}

	return m, nil
}

// LoadMaterials reads a palette table from disk. Files with a .pal
// extension are read as RIFF palettes, anything else as CSV.
func LoadMaterials(path string) ([]Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open %q: %w", ErrLoad, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close palette file", "name", path, "error", closeErr)
		}
	}()

	if strings.EqualFold(filepath.Ext(path), ".pal") {
		return ReadRIFF(f)
	}
	return ReadCSV(f)
}

func LoadMask(path string) (Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read mask %q: %w", ErrLoad, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close mask file", "name", path, "error", closeErr)
		}
	}()

	return ReadMask(f)
}
