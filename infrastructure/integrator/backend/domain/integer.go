package backenddomain

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// RawInt guarda quantidades e códigos como vieram do backend. Assim como os
// valores monetários, podem chegar como número, texto ou null.
type RawInt string

func (i *RawInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*i = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		text, err := strconv.Unquote(string(data))
		if err != nil {
			text = string(data)
		}
		*i = RawInt(text)
		return nil
	}

	*i = RawInt(data)
	return nil
}

// Int converte o valor bruto. Ausente vale zero; texto que não representa um
// inteiro vale zero com ok=false.
func (i RawInt) Int() (value int, ok bool) {
	raw := strings.TrimSpace(string(i))
	if raw == "" {
		return 0, true
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}

func (i RawInt) String() string {
	return string(i)
}
