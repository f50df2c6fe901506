package content

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v2"
)

const delimiter = "---"

var yamlFormat = frontmatter.NewFormat(delimiter, delimiter, yaml.Unmarshal)

// Metadata is the decoded frontmatter header of a content file.
type Metadata map[string]any

// ParseFrontmatter splits raw file text into its YAML header and the markdown
// body. Input without a header yields empty metadata and the whole input as
// body. An opening delimiter without a closing one is a MalformedContentError.
func ParseFrontmatter(raw []byte) (Metadata, []byte, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	start, ok := headerStart(raw)
	if !ok {
		return Metadata{}, raw, nil
	}
	raw = raw[start:]
	if !hasClosingDelimiter(raw) {
		return nil, nil, &MalformedContentError{Reason: "frontmatter delimiter opened but never closed"}
	}
	if !bytes.HasSuffix(raw, []byte("\n")) {
		raw = append(append([]byte(nil), raw...), '\n')
	}

	meta := Metadata{}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta, yamlFormat)
	if err != nil {
		return nil, nil, &MalformedContentError{Reason: "invalid frontmatter", Err: err}
	}
	if meta == nil {
		meta = Metadata{}
	}
	return meta, body, nil
}

// EncodeFrontmatter writes meta as a YAML header followed by body.
func EncodeFrontmatter(meta Metadata, body []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")
	if len(meta) > 0 {
		out, err := yaml.Marshal(map[string]any(meta))
		if err != nil {
			return nil, fmt.Errorf("encode frontmatter: %w", err)
		}
		buf.Write(out)
	}
	buf.WriteString(delimiter + "\n")
	buf.Write(body)
	return buf.Bytes(), nil
}

// headerStart returns the offset of the opening delimiter line when the first
// non-blank line of raw is exactly the delimiter.
func headerStart(raw []byte) (int, bool) {
	offset := 0
	for offset < len(raw) {
		end := bytes.IndexByte(raw[offset:], '\n')
		var line []byte
		if end < 0 {
			line = raw[offset:]
		} else {
			line = raw[offset : offset+end]
		}
		trimmed := strings.TrimSpace(string(line))
		if trimmed == "" {
			if end < 0 {
				return 0, false
			}
			offset += end + 1
			continue
		}
		return offset, trimmed == delimiter
	}
	return 0, false
}

func hasClosingDelimiter(raw []byte) bool {
	lines := strings.Split(string(raw), "\n")
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == delimiter {
			return true
		}
	}
	return false
}

// String returns the value under key as text. YAML timestamps are formatted
// as dates when they carry no time of day.
func (m Metadata) String(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return scalarString(v)
}

// Strings returns a list-valued key. A lone scalar becomes a one-element list.
func (m Metadata) Strings(key string) []string {
	v, ok := m[key]
	if !ok || v == nil {
		return []string{}
	}

	out := []string{}
	switch x := v.(type) {
	case []any:
		for _, item := range x {
			if item == nil {
				continue
			}
			if s := strings.TrimSpace(scalarString(item)); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, item := range x {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
	default:
		if s := strings.TrimSpace(scalarString(x)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return formatDate(x)
	case *time.Time:
		if x == nil {
			return ""
		}
		return formatDate(*x)
	default:
		return fmt.Sprint(x)
	}
}

func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
