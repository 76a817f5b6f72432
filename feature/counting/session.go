package counting

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidSession is wrapped by every session decoding failure.
var ErrInvalidSession = errors.New("invalid counting session")

// Entry is one observation: a scanned barcode and the counted quantity.
// Quantity is a signed delta.
type Entry struct {
	Barcode  string `json:"codigo_barra"`
	Quantity int    `json:"quantidade"`
}

// Session is an ordered batch of observations.
//
// On the wire it is a JSON object {"<barcode>": {"quantidade": n}, ...}.
// Decoding keeps document order and keeps repeated keys as separate
// entries, so a barcode counted twice is applied twice.
type Session []Entry

// UnmarshalJSON decodes the object form, preserving key order.
func (s *Session) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected an object of barcodes", ErrInvalidSession)
	}

	entries := make(Session, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSession, err)
		}
		barcode, _ := tok.(string)

		var item struct {
			Quantity *int `json:"quantidade"`
		}
		if err := dec.Decode(&item); err != nil {
			return fmt.Errorf("%w: barcode %q: %v", ErrInvalidSession, barcode, err)
		}
		if item.Quantity == nil {
			return fmt.Errorf("%w: barcode %q has no quantidade", ErrInvalidSession, barcode)
		}

		entries = append(entries, Entry{
			Barcode:  barcode,
			Quantity: *item.Quantity,
		})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after session", ErrInvalidSession)
	}

	*s = entries
	return nil
}

// MarshalJSON writes the object form back, in order. Repeated barcodes are
// written as repeated keys.
func (s Session) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Barcode)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, `:{"quantidade":%d}`, e.Quantity)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
