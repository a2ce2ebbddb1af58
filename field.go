package insideideo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FieldKind identifies the shape of a structured-data field. The kind is
// determined once when the server response is decoded; all later rendering
// and editing dispatches on it.
type FieldKind string

const (
	// KindText is a single-line string field (e.g. title).
	KindText FieldKind = "text"

	// KindMultiline is a string field rendered as a paragraph (e.g. summary).
	KindMultiline FieldKind = "multiline"

	// KindList is an ordered list of strings (e.g. key_points).
	KindList FieldKind = "list"
)

// FieldValue holds the value of a field. Exactly one of Text or List is
// meaningful, according to the field's kind.
type FieldValue struct {
	Text string   `json:"text,omitempty"`
	List []string `json:"list,omitempty"`
}

// Field is one editable entry of a session's structured data. Original is
// the value as returned by the server and is never modified after the
// session is created; Edited starts equal to Original and diverges as the
// user edits.
type Field struct {
	SessionID string     `json:"sessionId"`
	Name      string     `json:"name"`
	Kind      FieldKind  `json:"kind"`
	Original  FieldValue `json:"original"`
	Edited    FieldValue `json:"edited"`
	Position  int        `json:"position"`
}

// Validate returns an error if the field contains invalid data.
func (f *Field) Validate() error {
	if f.Name == "" {
		return Errorf(EINVALID, "field name required")
	}
	switch f.Kind {
	case KindText, KindMultiline, KindList:
	default:
		return Errorf(EINVALID, "unknown field kind %q", f.Kind)
	}
	return nil
}

// Dirty reports whether the edited value differs from the original.
func (f *Field) Dirty() bool {
	if f.Kind == KindList {
		if len(f.Edited.List) != len(f.Original.List) {
			return true
		}
		for i := range f.Edited.List {
			if f.Edited.List[i] != f.Original.List[i] {
				return true
			}
		}
		return false
	}
	return f.Edited.Text != f.Original.Text
}

// Render returns the field's edited value as display text. List fields are
// joined by newline.
func (f *Field) Render() string {
	if f.Kind == KindList {
		return JoinLines(f.Edited.List)
	}
	return f.Edited.Text
}

// JoinLines projects a list value to its raw-text form: elements joined by
// newline. It is the inverse of SplitLines for lists that contain no blank
// entries.
func JoinLines(list []string) string {
	return strings.Join(list, "\n")
}

// SplitLines parses raw text into a list value: split on newline with
// blank and whitespace-only lines removed. Interior whitespace is kept
// verbatim and duplicates are not collapsed; this is the only
// normalization applied to list fields.
func SplitLines(raw string) []string {
	var list []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		list = append(list, line)
	}
	return list
}

// FieldService manages the editable fields of a session.
//
// Edit operations on a name that does not exist in the session are no-ops,
// not errors: rendering is driven by enumerating the stored fields, so an
// unknown name simply has nothing to update.
type FieldService interface {
	// CreateFields stores the decoded structured data for a session.
	// Each field's Edited value is initialized from its Original.
	CreateFields(ctx context.Context, sessionID string, fields []*Field) error

	// FindFieldsBySession retrieves a session's fields in position order.
	FindFieldsBySession(ctx context.Context, sessionID string) ([]*Field, error)

	// SetText overwrites the edited value of a text or multiline field.
	// Any string, including empty, is accepted.
	SetText(ctx context.Context, sessionID, name, value string) error

	// SetList overwrites the edited value of a list field from raw text,
	// parsed with SplitLines.
	SetList(ctx context.Context, sessionID, name, rawText string) error

	// ResetField restores a field's edited value from its original.
	ResetField(ctx context.Context, sessionID, name string) error

	// ResetAll restores every field's edited value from its original.
	ResetAll(ctx context.Context, sessionID string) error
}

// canonicalFieldOrder lists the well-known case-study fields in display
// order. Fields outside this list keep their server order after these.
var canonicalFieldOrder = []string{
	"title",
	"summary",
	"key_points",
	"insights",
	"client",
	"challenge",
	"approach",
	"solution",
	"outcome",
	"impact",
}

// DecodeStructuredData decodes a server structured-data object into an
// ordered list of fields. Each value must be a string or an array of
// strings; any other shape is rejected. Well-known case-study fields sort
// first in canonical order, remaining fields keep the server's order.
//
// A payload carrying "error": true signals that the server's AI step
// failed; it is surfaced as an EUNAVAILABLE error rather than decoded.
func DecodeStructuredData(data json.RawMessage) ([]*Field, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, Errorf(EINVALID, "structured data is not a JSON object")
	}
	if raw, ok := probe["error"]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("true")) {
		msg := "AI processing failed"
		if raw, ok := probe["error_message"]; ok {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && s != "" {
				msg = s
			}
		}
		return nil, Errorf(EUNAVAILABLE, "%s", msg)
	}

	names, err := objectKeysInOrder(data)
	if err != nil {
		return nil, err
	}

	var fields []*Field
	for _, name := range names {
		if name == "error" || name == "error_type" || name == "error_message" {
			continue
		}
		field, err := decodeField(name, probe[name])
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	orderFields(fields)
	return fields, nil
}

// decodeField determines a field's kind from its JSON shape and decodes
// its value. Strings containing a newline become multiline fields.
func decodeField(name string, raw json.RawMessage) (*Field, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, Errorf(EINVALID, "field %q has no value", name)
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, fmt.Errorf("decode field %q: %w", name, err)
		}
		kind := KindText
		if strings.Contains(s, "\n") || len(s) > 120 {
			kind = KindMultiline
		}
		value := FieldValue{Text: s}
		return &Field{Name: name, Kind: kind, Original: value, Edited: value}, nil
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, Errorf(EINVALID, "field %q is not an array of strings", name)
		}
		original := FieldValue{List: list}
		edited := FieldValue{List: append([]string(nil), list...)}
		return &Field{Name: name, Kind: KindList, Original: original, Edited: edited}, nil
	default:
		return nil, Errorf(EINVALID, "field %q is neither a string nor an array of strings", name)
	}
}

// objectKeysInOrder returns the top-level keys of a JSON object in the
// order they appear in the document. encoding/json maps do not preserve
// order, so the token stream is walked directly.
func objectKeysInOrder(data json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, Errorf(EINVALID, "structured data is not a JSON object")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, Errorf(EINVALID, "structured data is not a JSON object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("scan structured data keys: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, Errorf(EINVALID, "structured data has a non-string key")
		}
		keys = append(keys, key)

		// Skip the value.
		var discard json.RawMessage
		if err := dec.Decode(&discard); err != nil {
			return nil, fmt.Errorf("scan structured data values: %w", err)
		}
	}
	return keys, nil
}

// EncodeStructuredData serializes fields back into the server's
// structured-data shape, an object of name to string or string list,
// using edited values and preserving field order.
func EncodeStructuredData(fields []*Field) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("encode field name %q: %w", f.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')

		var value []byte
		if f.Kind == KindList {
			list := f.Edited.List
			if list == nil {
				list = []string{}
			}
			value, err = json.Marshal(list)
		} else {
			value, err = json.Marshal(f.Edited.Text)
		}
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", f.Name, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	var indented bytes.Buffer
	if err := json.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return indented.Bytes(), nil
}

// orderFields reorders fields in place: canonical fields first in
// canonical order, then the rest in their existing order. Positions are
// assigned to match.
func orderFields(fields []*Field) {
	rank := make(map[string]int, len(canonicalFieldOrder))
	for i, name := range canonicalFieldOrder {
		rank[name] = i
	}

	sort.SliceStable(fields, func(i, j int) bool {
		ri, iKnown := rank[fields[i].Name]
		rj, jKnown := rank[fields[j].Name]
		if iKnown && jKnown {
			return ri < rj
		}
		return iKnown && !jKnown
	})

	for i, f := range fields {
		f.Position = i
	}
}
