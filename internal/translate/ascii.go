// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// MarshalASCII marshals v to JSON with every non-ASCII character escaped as
// \uXXXX, so the output displays correctly on consoles with a non-UTF-8 code
// page. Characters outside the BMP become surrogate pairs.
func MarshalASCII(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(data))
	for i := 0; i < len(data); {
		if data[i] < utf8.RuneSelf {
			buf.WriteByte(data[i])
			i++
			continue
		}
		r, size := utf8.DecodeRune(data[i:])
		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&buf, `\u%04x\u%04x`, r1, r2)
		} else {
			fmt.Fprintf(&buf, `\u%04x`, r)
		}
		i += size
	}
	return buf.Bytes(), nil
}
