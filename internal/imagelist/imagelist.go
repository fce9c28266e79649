// Package imagelist reconciles the two historical storage forms of a
// product's image field (a bare URL or a JSON-encoded array of URLs) into a
// single ordered slice. New writes always use the array form; Normalize stays
// as the compatibility shim for rows written before the schema settled.
package imagelist

import "encoding/json"

// Normalize converts the raw stored image value into an ordered list of URLs.
// It is total: malformed input degrades to a single-element list holding the
// raw text, and empty input yields nil.
func Normalize(raw string) []string {
	if raw == "" {
		return nil
	}
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []string{raw}
	}
	seq, ok := parsed.([]any)
	if !ok {
		// Valid JSON but not a sequence: the whole value is one URL.
		return []string{raw}
	}
	return fromSequence(seq)
}

// fromSequence renders each element of a decoded JSON array as text. Strings
// pass through untouched; anything else keeps its JSON form, so no element is
// ever dropped and the list length matches the stored array.
func fromSequence(seq []any) []string {
	urls := make([]string, 0, len(seq))
	for _, item := range seq {
		if s, ok := item.(string); ok {
			urls = append(urls, s)
			continue
		}
		b, err := json.Marshal(item)
		if err != nil {
			urls = append(urls, "")
			continue
		}
		urls = append(urls, string(b))
	}
	return urls
}

// NormalizeValue applies the same contract to an already-decoded JSON value,
// as received in admin payloads. Structured sequences pass through with order
// preserved; anything else falls back like Normalize.
func NormalizeValue(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return val
	case []any:
		return fromSequence(val)
	case string:
		return Normalize(val)
	default:
		return nil
	}
}

// Serialize encodes an image list in the canonical storage form, always the
// JSON array regardless of how the value was originally read.
func Serialize(urls []string) string {
	if urls == nil {
		urls = []string{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		// A []string cannot fail to marshal.
		return "[]"
	}
	return string(b)
}
