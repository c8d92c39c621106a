// Package scan extracts typed values out of a raw provider payload without
// decoding it as a whole. Upstream documents arrive truncated or partially
// garbled often enough that a strict decoder is the wrong tool: every
// function here is best-effort and degrades to zero or empty instead of
// returning an error, and callers treat zero as "unknown".
package scan

import (
	"strconv"
	"strings"
)

// Number returns the numeric value of the leftmost `"key":` occurrence at or
// after from. The value token runs until the next comma or closing brace;
// surrounding quotes are stripped. Missing key, missing delimiter, or an
// unparsable token all yield 0.
func Number(doc, key string, from int) float64 {
	if from < 0 || from > len(doc) {
		return 0
	}
	pattern := `"` + key + `":`
	idx := strings.Index(doc[from:], pattern)
	if idx < 0 {
		return 0
	}
	valueStart := from + idx + len(pattern)
	rest := doc[valueStart:]
	end := strings.IndexAny(rest, ",}")
	if end < 0 {
		return 0
	}
	token := strings.ReplaceAll(rest[:end], `"`, "")
	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0
	}
	return v
}

// NumberArray returns up to limit numbers from the first bracketed array
// following `"key":` at or after from. Elements that fail to parse are
// dropped, so the result may be shorter than limit.
func NumberArray(doc, key string, from, limit int) []float64 {
	body, ok := arrayBody(doc, key, from)
	if !ok {
		return nil
	}
	var result []float64
	for _, part := range strings.Split(body, ",") {
		if len(result) >= limit {
			break
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			continue
		}
		result = append(result, v)
	}
	return result
}

// StringArray returns up to limit quoted substrings, in order of appearance,
// from the first bracketed array following `"key":` at or after from.
func StringArray(doc, key string, from, limit int) []string {
	body, ok := arrayBody(doc, key, from)
	if !ok {
		return nil
	}
	var result []string
	current := 0
	for len(result) < limit {
		first := strings.IndexByte(body[current:], '"')
		if first < 0 {
			break
		}
		first += current
		second := strings.IndexByte(body[first+1:], '"')
		if second < 0 {
			break
		}
		second += first + 1
		result = append(result, body[first+1:second])
		current = second + 1
	}
	return result
}

// arrayBody locates the interior of the first [...] pair after the key.
func arrayBody(doc, key string, from int) (string, bool) {
	if from < 0 || from > len(doc) {
		return "", false
	}
	pattern := `"` + key + `":`
	idx := strings.Index(doc[from:], pattern)
	if idx < 0 {
		return "", false
	}
	keyPos := from + idx
	open := strings.IndexByte(doc[keyPos:], '[')
	if open < 0 {
		return "", false
	}
	open += keyPos
	end := strings.IndexByte(doc[open:], ']')
	if end < 0 {
		return "", false
	}
	end += open
	return doc[open+1 : end], true
}
