package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies one of the four on-disk file variants.
type Format string

const (
	CP1 Format = "CP1"
	CP3 Format = "CP3"
	FP1 Format = "FP1"
	FP3 Format = "FP3"
)

// Family identifies the device family a format belongs to.
type Family int

const (
	FamilyCPOD Family = iota
	FamilyFPOD
)

// Parse normalizes a format tag (typically a file extension) to a Format.
// Anything other than the four known tags is a configuration error.
func Parse(tag string) (Format, error) {
	f := Format(strings.ToUpper(strings.TrimPrefix(tag, ".")))
	switch f {
	case CP1, CP3, FP1, FP3:
		return f, nil
	}
	return "", fmt.Errorf("unknown file type: %s", tag)
}

// FromFilename derives the Format from a file's extension.
func FromFilename(name string) (Format, error) {
	return Parse(filepath.Ext(name))
}

// Family returns the device family for the format.
func (f Format) Family() Family {
	if f == CP1 || f == CP3 {
		return FamilyCPOD
	}
	return FamilyFPOD
}

// HasTrainData reports whether the variant carries click-train annotations.
func (f Format) HasTrainData() bool {
	return f == CP3 || f == FP3
}

// Sizes returns the fixed header block size and data record size for the
// format. CPOD variants use their own sizes; the FPOD family shares one
// layout.
func (f Format) Sizes() (headerSize, recordSize int) {
	switch f {
	case CP1:
		return 360, 10
	case CP3:
		return 720, 40
	default:
		return 1024, 16
	}
}
