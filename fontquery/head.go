package fontquery

import (
	"encoding/binary"

	"github.com/npillmayer/hbshape"
)

// Head is a view of OpenType table 'head', decoded from the raw table bytes.
type Head struct {
	MajorVersion      uint16
	MinorVersion      uint16
	FontRevision      uint32 // 16.16 fixed point
	MagicNumber       uint32
	Flags             uint16
	UnitsPerEm        uint16
	XMin, YMin        int16
	XMax, YMax        int16
	MacStyle          uint16
	LowestRecPPEM     uint16
	FontDirectionHint int16
	IndexToLocFormat  int16
}

// headMagic is the constant value of field magicNumber.
const headMagic = 0x5F0F3CF5

const headTableSize = 54

// Revision returns the font revision as a floating point number.
func (h Head) Revision() float64 {
	return float64(h.FontRevision) / 65536
}

// HeadInfo decodes table 'head'.
func HeadInfo(f *hbshape.Font) (Head, error) {
	var h Head
	b, err := rawTable(f, "head")
	if err != nil {
		return h, err
	}
	if len(b) < headTableSize {
		return h, QueryError{Table: "head", Issue: "table too short"}
	}
	be := binary.BigEndian
	h.MajorVersion = be.Uint16(b[0:2])
	h.MinorVersion = be.Uint16(b[2:4])
	h.FontRevision = be.Uint32(b[4:8])
	h.MagicNumber = be.Uint32(b[12:16])
	h.Flags = be.Uint16(b[16:18])
	h.UnitsPerEm = be.Uint16(b[18:20])
	h.XMin = int16(be.Uint16(b[36:38]))
	h.YMin = int16(be.Uint16(b[38:40]))
	h.XMax = int16(be.Uint16(b[40:42]))
	h.YMax = int16(be.Uint16(b[42:44]))
	h.MacStyle = be.Uint16(b[44:46])
	h.LowestRecPPEM = be.Uint16(b[46:48])
	h.FontDirectionHint = int16(be.Uint16(b[48:50]))
	h.IndexToLocFormat = int16(be.Uint16(b[50:52]))
	if h.MagicNumber != headMagic {
		tracer().Infof("font %s has unexpected head magic number %#x", f.Path(), h.MagicNumber)
	}
	return h, nil
}
