package httpdto

import (
	"bytes"
	"encoding/json"

	"bents-gateway/internal/domain/contact"
)

// ContactRequest is used for POST /contact. Missing fields bind as "".
type ContactRequest struct {
	Name    FormText `json:"name"`
	Email   FormText `json:"email"`
	Subject FormText `json:"subject"`
	Message FormText `json:"message"`
}

// FormText accepts any JSON value and keeps its text form: strings unquoted,
// numbers, booleans, objects and arrays as written, null as "".
type FormText string

func (t *FormText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = FormText(s)
	default:
		*t = FormText(data)
	}
	return nil
}

// ContactResponse is returned after the row is stored.
type ContactResponse = Response[*contact.Message]
