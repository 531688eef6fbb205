package backenddomain

import (
	"bytes"
	"strconv"
)

// RawAmount guarda o valor monetário como veio do backend. O backend envia
// às vezes número, às vezes texto e às vezes null.
type RawAmount string

func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		text, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*a = RawAmount(text)
		return nil
	}

	*a = RawAmount(data)
	return nil
}

func (a RawAmount) String() string {
	return string(a)
}
