package generator

import (
	"fmt"
	"io"
	"strings"
)

// Hexdump writes 16 bytes per line, grouped by four, prefixed by the offset.
func Hexdump(w io.Writer, data []byte) (err error) {
	for offset := 0; offset < len(data); offset += 16 {
		end := min(offset+16, len(data))

		parts := []string{fmt.Sprintf("%04X:", offset)}
		for group := offset; group < end; group += 4 {
			parts = append(parts, "")
			for _, value := range data[group:min(group+4, end)] {
				parts = append(parts, fmt.Sprintf("%02X", value))
			}
		}

		_, err = fmt.Fprintln(w, strings.Join(parts, " "))
		if err != nil {
			return
		}
	}

	return
}
