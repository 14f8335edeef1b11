package inference

import (
	"bytes"
	"context"
	"debug/pe"
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// fixedFileInfoSignature is VS_FIXEDFILEINFO.dwSignature.
const fixedFileInfoSignature = 0xFEEF04BD

// versionKeys are the StringFileInfo entries consulted, in order.
var versionKeys = []string{"ProductVersion", "FileVersion"}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// versionResource reads the version resource of a PE image.
func (i *Inferrer) versionResource(ctx context.Context, path string) (string, bool) {
	f, err := i.fs.Open(ctx, path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	img, err := pe.NewFile(f)
	if err != nil {
		return "", false
	}
	defer img.Close()

	rsrc := img.Section(".rsrc")
	if rsrc == nil {
		return "", false
	}
	data, err := rsrc.Data()
	if err != nil {
		return "", false
	}

	return parseVersionInfo(data)
}

// parseVersionInfo extracts a version from the bytes of a resource section
// holding a VS_VERSION_INFO block.
func parseVersionInfo(data []byte) (string, bool) {
	start := bytes.Index(data, utf16z("VS_VERSION_INFO"))
	if start < 0 {
		return "", false
	}
	block := data[start:]

	for _, key := range versionKeys {
		if v, ok := stringValue(block, key); ok {
			return v, true
		}
	}
	return fixedProductVersion(block)
}

// stringValue finds a String structure named key and returns its value.
// The layout is wLength, wValueLength (in WCHARs), wType, the NUL terminated
// key, padding to a 32-bit boundary, then the value.
func stringValue(block []byte, key string) (string, bool) {
	needle := utf16z(key)

	for off := 0; off < len(block); {
		i := bytes.Index(block[off:], needle)
		if i < 0 {
			return "", false
		}
		idx := off + i
		off = idx + len(needle)

		header := idx - 6
		if header < 0 {
			continue
		}
		valueLen := int(binary.LittleEndian.Uint16(block[header+2:]))
		valueStart := header + align4(idx+len(needle)-header)
		if valueLen == 0 || valueStart >= len(block) {
			continue
		}

		end := min(valueStart+valueLen*2, len(block))
		raw := block[valueStart:end]
		raw = raw[:len(raw)&^1]

		decoded, err := utf16le.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		value, _, _ := strings.Cut(string(decoded), "\x00")
		if value = strings.TrimSpace(value); value != "" {
			return value, true
		}
	}
	return "", false
}

// fixedProductVersion reads dwProductVersionMS/LS from VS_FIXEDFILEINFO.
func fixedProductVersion(block []byte) (string, bool) {
	var sig [4]byte
	binary.LittleEndian.PutUint32(sig[:], fixedFileInfoSignature)

	i := bytes.Index(block, sig[:])
	if i < 0 || i+24 > len(block) {
		return "", false
	}

	ms := binary.LittleEndian.Uint32(block[i+16:])
	ls := binary.LittleEndian.Uint32(block[i+20:])
	if ms == 0 && ls == 0 {
		return "", false
	}
	return fmt.Sprintf("%d.%d.%d.%d", ms>>16, ms&0xFFFF, ls>>16, ls&0xFFFF), true
}

// utf16z encodes s as NUL terminated UTF-16LE.
func utf16z(s string) []byte {
	b, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil
	}
	return append(b, 0, 0)
}

func align4(n int) int {
	return (n + 3) &^ 3
}
