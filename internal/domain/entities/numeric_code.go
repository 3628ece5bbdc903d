package entities

import (
	"bytes"
	"encoding/json"
	"errors"
)

// NumericCode is a short digit string (OTP, PIN) that clients may send as a JSON string or number
type NumericCode string

// UnmarshalJSON accepts "1234", 1234 and null
func (c *NumericCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = NumericCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("code must be a string or a number")
	}
	*c = NumericCode(n.String())
	return nil
}

func (c NumericCode) String() string {
	return string(c)
}
