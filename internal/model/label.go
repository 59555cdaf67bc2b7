package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Label is a period label that may be encoded as a JSON number or string.
type Label string

func (l *Label) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Label(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("label: %w", err)
	}
	*l = Label(n.String())
	return nil
}

func (l Label) String() string {
	return string(l)
}
