package calc

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

var AllowedMultiFormats = []string{"comma", "newline", "space", "json"}

func checkMultiFormat(formats []string) error {
	for _, format := range formats {
		if !slices.Contains(AllowedMultiFormats, format) {
			return errors.Newf("invalid multi format: %s, allowed formats are: %v", format, AllowedMultiFormats)
		}
	}
	if slices.Contains(formats, "json") && len(formats) > 1 {
		return errors.New("multi format 'json' cannot be combined with other formats")
	}
	return nil
}

// splitAndTrim splits s on any rune of seps that is not inside brackets, so
// "[0, 1], (2, 3)" splits on the middle comma only. Empty pieces are dropped.
func splitAndTrim(s string, seps string) []string {
	var parts []string
	depth, start := 0, 0
	flush := func(end int) {
		if part := strings.TrimSpace(s[start:end]); part != "" {
			parts = append(parts, part)
		}
	}
	for i, r := range s {
		switch {
		case r == '[' || r == '(':
			depth++
		case (r == ']' || r == ')') && depth > 0:
			depth--
		case depth == 0 && strings.ContainsRune(seps, r):
			flush(i)
			start = i + len(string(r))
		}
	}
	flush(len(s))
	return parts
}

// ParseMultiValues splits each raw value according to formats. Without any
// format every raw value is taken as is.
func ParseMultiValues(formats []string, rawValues []string) ([]string, error) {
	if err := checkMultiFormat(formats); err != nil {
		return nil, err
	}
	if len(formats) == 0 {
		return rawValues, nil
	}
	if slices.Contains(formats, "json") {
		var result []string
		for _, raw := range rawValues {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			// a JSON array of strings, or a single JSON string
			var arr []string
			if err := json.Unmarshal([]byte(raw), &arr); err == nil {
				result = append(result, arr...)
				continue
			}
			var s string
			if err := json.Unmarshal([]byte(raw), &s); err != nil {
				return nil, errors.Wrapf(err, "invalid json multi value: %s", raw)
			}
			result = append(result, s)
		}
		return result, nil
	}
	sepsBuilder := strings.Builder{}
	for _, format := range formats {
		switch format {
		case "comma":
			sepsBuilder.WriteString(",")
		case "newline":
			sepsBuilder.WriteString("\r\n")
		case "space":
			sepsBuilder.WriteString(" \t")
		}
	}
	seps := sepsBuilder.String()
	var result []string
	for _, raw := range rawValues {
		result = append(result, splitAndTrim(raw, seps)...)
	}
	return result, nil
}

// OutputMultiValues joins values with the separator of the first listed
// format, or renders them as a JSON array.
func OutputMultiValues(formats []string, values []string) (string, error) {
	if err := checkMultiFormat(formats); err != nil {
		return "", err
	}
	if slices.Contains(formats, "json") {
		if values == nil {
			values = []string{}
		}
		data, err := json.Marshal(values)
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal multi values to json")
		}
		return string(data), nil
	}
	sep := ","
	if len(formats) > 0 {
		switch formats[0] {
		case "newline":
			sep = "\n"
		case "space":
			sep = " "
		}
	}
	return strings.Join(values, sep), nil
}
