package menu

import (
	"bytes"
	"fmt"

	"menuview/internal/jsonutil"
)

// ID is an opaque item identifier. The API may encode it as a JSON string or number.
type ID string

// UnmarshalJSON accepts both `"abc"` and `42`.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	var v interface{}
	if err := jsonutil.UnmarshalWithContext(data, &v, "menu id"); err != nil {
		return err
	}
	switch v.(type) {
	case string, float64:
		*id = ID(jsonutil.ToString(v))
		return nil
	}
	return fmt.Errorf("menu id: unsupported JSON value %s", string(data))
}

// String returns the identifier as used in URL paths.
func (id ID) String() string { return string(id) }

// Item is a single priced, described, image-bearing catalog entry.
type Item struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
}

// Payload is the request body for create and update. It only exists for drafts
// whose price validated.
type Payload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
}

