package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexString accepts a JSON string, number or boolean and keeps its text form.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	text, err := scalarText(data)
	if err != nil {
		return err
	}

	*f = FlexString(text)

	return nil
}

func (f FlexString) String() string {
	return strings.TrimSpace(string(f))
}

// Int parses the value, returning fallback when it is empty or not an integer.
func (f FlexString) Int(fallback int) int {
	text := f.String()
	if text == "" {
		return fallback
	}

	if n, err := strconv.Atoi(text); err == nil {
		return n
	}

	if n, err := strconv.ParseFloat(text, 64); err == nil {
		return int(n)
	}

	return fallback
}

// OneOrMany decodes either a single object or an array of them.
type OneOrMany[T any] []T

func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*o = nil
	case data[0] == '[':
		var many []T
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}

		*o = many
	case data[0] == '{':
		var one T
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}

		*o = OneOrMany[T]{one}
	default:
		return fmt.Errorf("expected object or array, got %q", truncate(data))
	}

	return nil
}

func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return "", err
	}

	return textOf(value), nil
}

// textOf renders scalar JSON values. Objects and arrays render empty.
func textOf(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func truncate(data []byte) string {
	if len(data) > 32 {
		return string(data[:32])
	}

	return string(data)
}
