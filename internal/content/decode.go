// Package content fetches, decodes and caches the portfolio document.
// Sources know where the document lives; the Store decides when to fetch it.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/maxviazov/portfolio-service/internal/model"
)

// Resolution errors surfaced to the service and transport layers.
var (
	// ErrNotFound means the upstream answered with the "not found" marker string.
	ErrNotFound = errors.New("content not found")
	// ErrPending means no document has resolved yet.
	ErrPending = errors.New("content pending")
	// ErrFetchFailed covers transport failures and undecodable bodies.
	ErrFetchFailed = errors.New("content fetch failed")
)

// notFoundBody is compared case-insensitively against top-level string bodies.
const notFoundBody = "not found"

// Decode turns a raw /data body into a Document.
//
// The body is expected to be a JSON array whose first element carries the
// section fields. A top-level string equal to "not found" (any case) is
// reported as ErrNotFound. Falsy bodies (null, "", false, 0) are ErrPending,
// and anything that is not JSON is ErrFetchFailed. Every other shape yields
// an empty Document.
func Decode(body []byte) (model.Document, error) {
	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return model.Document{}, fmt.Errorf("%w: body is not valid JSON", ErrFetchFailed)
	}

	switch body[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return model.Document{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
		if len(items) == 0 {
			return model.Document{}, nil
		}
		return decodeDocument(items[0]), nil
	case '"':
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return model.Document{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
		if strings.EqualFold(s, notFoundBody) {
			return model.Document{}, ErrNotFound
		}
		if s == "" {
			return model.Document{}, ErrPending
		}
		return model.Document{}, nil
	case 'n':
		return model.Document{}, ErrPending
	default:
		if falsy(body) {
			return model.Document{}, ErrPending
		}
		return model.Document{}, nil
	}
}

// falsy reports whether a scalar body is false or numerically zero.
func falsy(body []byte) bool {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case bool:
		return !x
	case float64:
		return x == 0
	default:
		return false
	}
}

// decodeDocument decodes each known field on its own so one malformed
// section never blanks out the others.
func decodeDocument(raw json.RawMessage) model.Document {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.Document{}
	}

	var doc model.Document
	decodeField(fields, "navLinks", &doc.NavLinks, &doc.Skipped)
	decodeField(fields, "hero", &doc.Hero, &doc.Skipped)
	decodeField(fields, "stats", &doc.Stats, &doc.Skipped)
	decodeField(fields, "abilities", &doc.Abilities, &doc.Skipped)
	decodeField(fields, "projects", &doc.Projects, &doc.Skipped)
	decodeField(fields, "educations", &doc.Educations, &doc.Skipped)
	decodeField(fields, "feedbacks", &doc.Feedbacks, &doc.Skipped)
	decodeField(fields, "contacts", &doc.Contacts, &doc.Skipped)
	decodeField(fields, "footer", &doc.Footer, &doc.Skipped)
	decodeField(fields, "socialMedia", &doc.SocialMedia, &doc.Skipped)
	return doc
}

func decodeField[T any](fields map[string]json.RawMessage, key string, dst *T, skipped *[]string) {
	raw, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		*skipped = append(*skipped, key)
		return
	}
	*dst = v
}
