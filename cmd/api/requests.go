package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cc-details-portal/internal/model"
)

// undefined is rendered in place of a field missing from the request.
const undefined = "undefined"

// SubmitCardRequest is the body of POST /ect/cc-det/api. Any JSON value is
// accepted; fields are read from it only when it is an object.
type SubmitCardRequest map[string]json.RawMessage

func decodeSubmitCardRequest(r io.Reader) (SubmitCardRequest, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding card details request: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		// valid JSON that is not an object carries no fields
		return SubmitCardRequest{}, nil
	}
	return fields, nil
}

func (r SubmitCardRequest) toSubmission() model.CardSubmission {
	return model.CardSubmission{
		RefNumber:           r.field("refNumber"),
		CardNumber:          r.field("cardNumber"),
		CardName:            r.field("cardName"),
		CardExpirationMonth: r.field("cardExpirationMonth"),
		CardExpirationYear:  r.field("cardExpirationYear"),
	}
}

// field renders a value the way string interpolation in a browser would:
// strings unquoted, numbers and booleans as written, null as "null".
func (r SubmitCardRequest) field(name string) string {
	raw, ok := r[name]
	if !ok {
		return undefined
	}
	return renderValue(raw)
}

func renderValue(raw json.RawMessage) string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return string(raw)
	}
	return stringify(v)
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case []interface{}:
		parts := make([]string, len(t))
		for i, e := range t {
			// array joins render null elements as empty
			if e != nil {
				parts[i] = stringify(e)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}
