package fontquery

import (
	"fmt"
	"iter"

	"github.com/npillmayer/hbshape"
	"github.com/npillmayer/hbshape/internal/fontload"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

// NameInfo holds the commonly used entries of table 'name'.
type NameInfo struct {
	Family     string
	Subfamily  string
	Full       string
	Version    string
	PostScript string
}

// Names reads the common name entries of a font. Entries missing in the
// font are left empty.
func Names(f *hbshape.Font) (NameInfo, error) {
	var info NameInfo
	data := f.Data()
	if data == nil {
		return info, fmt.Errorf("fontquery: font is closed")
	}
	blob := &fontload.Blob{Path: f.Path(), Data: data}
	sf, err := blob.SFNT(f.FaceIndex())
	if err != nil {
		return info, err
	}
	var buf sfnt.Buffer
	name := func(id sfnt.NameID) string {
		s, err := sf.Name(&buf, id)
		if err != nil {
			return ""
		}
		return s
	}
	info.Family = name(sfnt.NameIDFamily)
	info.Subfamily = name(sfnt.NameIDSubfamily)
	info.Full = name(sfnt.NameIDFull)
	info.Version = name(sfnt.NameIDVersion)
	info.PostScript = name(sfnt.NameIDPostScript)
	return info, nil
}

const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// NamesRange yields decoded (name ID, value) pairs of table 'name', in the
// order of the name records. Only Unicode BMP and Windows BMP records are
// decoded; malformed records are skipped.
func NamesRange(f *hbshape.Font) iter.Seq2[sfnt.NameID, string] {
	b, err := rawTable(f, "name")
	if err == nil {
		b = checkNameTable(b)
	} else {
		tracer().Debugf("%v", err)
	}
	return func(yield func(sfnt.NameID, string) bool) {
		if b == nil {
			return
		}
		count := int(u16(b[2:4]))
		storage := int(u16(b[4:6]))
		for i := range count {
			rec := b[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
			platform, encoding := u16(rec[0:2]), u16(rec[2:4])
			if !(platform == 0 && encoding == 3) && !(platform == 3 && encoding == 1) {
				continue
			}
			start := storage + int(u16(rec[10:12]))
			end := start + int(u16(rec[8:10]))
			if end > len(b) {
				continue
			}
			s, err := decodeUTF16(b[start:end])
			if err != nil || s == "" {
				continue
			}
			if !yield(sfnt.NameID(u16(rec[6:8])), s) {
				return
			}
		}
	}
}

// checkNameTable returns b if the header and the record section are within
// bounds, and nil otherwise.
func checkNameTable(b []byte) []byte {
	if len(b) < nameHeaderSize {
		tracer().Debugf("name table too short: %d", len(b))
		return nil
	}
	count := int(u16(b[2:4]))
	if storage := int(u16(b[4:6])); storage > len(b) {
		tracer().Debugf("name table invalid string offset: %d", storage)
		return nil
	}
	if nameHeaderSize+count*nameRecordSize > len(b) {
		tracer().Debugf("name table record section out of bounds: count=%d", count)
		return nil
	}
	return b
}

func decodeUTF16(str []byte) (string, error) {
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := dec.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16: %w", err)
	}
	return string(s), nil
}
