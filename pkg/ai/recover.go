package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// DecodeLenient converts sanitized model text into the structured result
// pointed to by out. It first attempts a strict parse of the whole text, then
// falls back to the substring between the first '{' and the last '}'. It
// reports false when neither attempt yields parseable JSON, leaving the caller
// to substitute the use-case default.
//
// A field whose value has the wrong JSON type does not fail the decode: the
// remaining fields are kept and the offending field stays at its zero value so
// the normalization stage can substitute a safe default for it.
func DecodeLenient(text string, out any) bool {
	if tryUnmarshal(text, out) {
		return true
	}

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last <= first {
		return false
	}

	return tryUnmarshal(text[first:last+1], out)
}

func tryUnmarshal(text string, out any) bool {
	err := json.Unmarshal([]byte(text), out)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}
