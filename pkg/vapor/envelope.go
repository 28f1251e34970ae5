package vapor

import (
	"encoding/json"
	"fmt"
)

// PageLink holds the cursors for adjacent pages. An empty string means there
// is no page in that direction.
type PageLink struct {
	Next string `json:"next" yaml:"next"`
	Prev string `json:"prev" yaml:"prev"`
}

// PageMeta is the pagination block of a list envelope.
type PageMeta struct {
	Links PageLink `json:"links" yaml:"links"`
	Total int      `json:"total" yaml:"total"`
}

// Page is one decoded page of a list response: the raw item array plus its
// pagination metadata.
type Page struct {
	Items json.RawMessage
	Meta  PageMeta
}

// metaKey is the reserved envelope key carrying pagination metadata.
const metaKey = "meta"

// UnwrapPage decodes a list envelope of the form
//
//	{"<resourceKey>": [...], "meta": {"links": {"next": "...", "prev": "..."}, "total": N}}
//
// The caller names the resource key it expects. Envelopes missing that key,
// missing the meta block, or carrying extra keys are rejected with
// ErrUnexpectedPayload so malformed responses never silently decode as an
// empty page.
func UnwrapPage(data []byte, resourceKey string) (*Page, error) {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding list envelope: %s", ErrUnexpectedPayload, err)
	}

	metaRaw, ok := envelope[metaKey]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrUnexpectedPayload, metaKey)
	}

	items, ok := envelope[resourceKey]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrUnexpectedPayload, resourceKey)
	}

	if len(envelope) != 2 {
		return nil, fmt.Errorf("%w: envelope has %d keys, expected %q and %q",
			ErrUnexpectedPayload, len(envelope), resourceKey, metaKey)
	}

	page := &Page{Items: items}

	err = json.Unmarshal(metaRaw, &page.Meta)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding page meta: %s", ErrUnexpectedPayload, err)
	}

	return page, nil
}

// UnwrapSingle decodes a single-resource envelope of the form
//
//	{"<resourceKey>": {...}}
//
// and returns the inner payload.
func UnwrapSingle(data []byte, resourceKey string) (json.RawMessage, error) {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding envelope: %s", ErrUnexpectedPayload, err)
	}

	payload, ok := envelope[resourceKey]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrUnexpectedPayload, resourceKey)
	}

	if len(envelope) != 1 {
		return nil, fmt.Errorf("%w: envelope has %d keys, expected only %q",
			ErrUnexpectedPayload, len(envelope), resourceKey)
	}

	return payload, nil
}

// DecodeSingle unwraps a single-resource envelope and unmarshals the payload
// into a value of type T.
func DecodeSingle[T any](data []byte, resourceKey string) (*T, error) {
	payload, err := UnwrapSingle(data, resourceKey)
	if err != nil {
		return nil, err
	}

	var value T

	err = json.Unmarshal(payload, &value)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", resourceKey, err)
	}

	return &value, nil
}
