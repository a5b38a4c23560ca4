// Package testfont writes font files for tests into temporary directories.
package testfont

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Write stores data as a file called name in a fresh temporary directory of
// t and returns its path.
func Write(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("cannot write test font %s: %v", name, err)
	}
	return path
}

// GoRegular writes the Go Regular font and returns its path.
func GoRegular(t testing.TB) string {
	return Write(t, "Go-Regular.ttf", goregular.TTF)
}

// GoMono writes the Go Mono font and returns its path.
func GoMono(t testing.TB) string {
	return Write(t, "Go-Mono.ttf", gomono.TTF)
}

// Empty writes a zero-length font file and returns its path.
func Empty(t testing.TB) string {
	return Write(t, "empty.ttf", nil)
}

// Truncated writes the first n bytes of Go Regular and returns the path.
func Truncated(t testing.TB, n int) string {
	return Write(t, "truncated.ttf", goregular.TTF[:n])
}

// Garbage writes a file which does not start with any font signature.
func Garbage(t testing.TB) string {
	return Write(t, "garbage.ttf", []byte("this is not a font, just some text"))
}

// ZeroUpem writes Go Regular with field unitsPerEm of table 'head' set to 0
// and returns the path. Table checksums are left as they are.
func ZeroUpem(t testing.TB) string {
	t.Helper()
	data := append([]byte(nil), goregular.TTF...)
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	for i := range numTables {
		rec := data[12+16*i : 12+16*(i+1)]
		if string(rec[0:4]) != "head" {
			continue
		}
		offset := int(binary.BigEndian.Uint32(rec[8:12]))
		data[offset+18], data[offset+19] = 0, 0
		return Write(t, "zero-upem.ttf", data)
	}
	t.Fatalf("test font has no head table")
	return ""
}
