package tour

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// separators split the delimited string encoding.
const separators = " \t\r\n,;"

// Solution is a tour as stored in a results file. The zero value is an empty
// solution. Use Decode to obtain node identifiers.
type Solution struct {
	text string
	ids  []int
	list bool
}

// FromIDs wraps an identifier sequence. ids is copied.
func FromIDs(ids []int) Solution {
	cp := make([]int, len(ids))
	copy(cp, ids)
	return Solution{ids: cp, list: true}
}

// FromString wraps a legacy digit string or a delimited list.
func FromString(s string) Solution {
	return Solution{text: s}
}

// IsZero reports whether s carries no data at all.
func (s Solution) IsZero() bool {
	return !s.list && s.text == ""
}

// Legacy reports whether s uses the single-digit-per-character encoding.
func (s Solution) Legacy() bool {
	return !s.list && !strings.ContainsAny(strings.TrimSpace(s.text), separators)
}

// Decode returns the node identifiers of s in stored order, as a fresh slice.
// Failures match ErrDecode.
//
// Complexity: O(len) time and space.
func (s Solution) Decode() ([]int, error) {
	if s.list {
		return decodeList(s.ids)
	}

	text := strings.TrimSpace(s.text)
	if text == "" {
		return nil, decodeErr(ErrEmptyTour, -1, "")
	}
	if s.Legacy() {
		return decodeDigits(text)
	}
	return decodeDelimited(text)
}

// DecodeFor decodes s for a node set with n nodes. A legacy digit string can
// only name identifiers 0..9, so with more than 10 nodes it is rejected with
// ErrLegacyEncoding instead of being read as a tour over the first ten nodes.
// Identifiers are not checked against n; see Known and Validate.
func (s Solution) DecodeFor(n int) ([]int, error) {
	ids, err := s.Decode()
	if err != nil {
		return nil, err
	}
	if n > 10 && s.Legacy() {
		return nil, decodeErr(ErrLegacyEncoding, -1, "")
	}
	return ids, nil
}

func decodeList(ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, decodeErr(ErrEmptyTour, -1, "")
	}
	out := make([]int, len(ids))
	for i, v := range ids {
		if v < 0 {
			return nil, decodeErr(ErrInvalidToken, i, strconv.Itoa(v))
		}
		out[i] = v
	}
	return out, nil
}

// decodeDigits maps every character to one identifier in 0..9.
func decodeDigits(text string) ([]int, error) {
	out := make([]int, 0, len(text))
	for i, r := range text {
		if r < '0' || r > '9' {
			return nil, decodeErr(ErrInvalidToken, i, string(r))
		}
		out = append(out, int(r-'0'))
	}
	return out, nil
}

func decodeDelimited(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	if len(fields) == 0 {
		return nil, decodeErr(ErrEmptyTour, -1, "")
	}

	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, decodeErr(ErrInvalidToken, i, f)
		}
		out[i] = v
	}
	return out, nil
}

// String returns the stored form: the text for string encodings, the
// space-separated identifiers for lists.
func (s Solution) String() string {
	if !s.list {
		return s.text
	}
	parts := make([]string, len(s.ids))
	for i, v := range s.ids {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// UnmarshalJSON accepts an integer array, a string, or null (zero Solution).
func (s *Solution) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = Solution{}
		return nil
	case len(b) > 0 && b[0] == '"':
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		*s = FromString(text)
		return nil
	case len(b) > 0 && b[0] == '[':
		var ids []int
		if err := json.Unmarshal(b, &ids); err != nil {
			return fmt.Errorf("tour: solution array must hold integers: %w", err)
		}
		*s = Solution{ids: ids, list: true}
		return nil
	}
	return fmt.Errorf("tour: solution must be an integer array or a string, got %s", b)
}

// MarshalJSON writes lists as arrays and string encodings as strings.
func (s Solution) MarshalJSON() ([]byte, error) {
	if s.list {
		if s.ids == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(s.ids)
	}
	return json.Marshal(s.text)
}
