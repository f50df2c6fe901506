package content

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseFrontmatter(t *testing.T) {
	raw := []byte(`---
title: "作業服の選び方"
date: "2024-03-01"
category: workwear
tags:
  - 作業服
  - Safety
draft: false
---
# Heading

Body text.
`)

	meta, body, err := ParseFrontmatter(raw)
	if err != nil {
		t.Fatalf("ParseFrontmatter: %v", err)
	}
	if meta.String("title") != "作業服の選び方" {
		t.Fatalf("title mismatch: %q", meta.String("title"))
	}
	if meta.String("date") != "2024-03-01" {
		t.Fatalf("date mismatch: %q", meta.String("date"))
	}
	if got := meta.Strings("tags"); !reflect.DeepEqual(got, []string{"作業服", "Safety"}) {
		t.Fatalf("tags mismatch: %#v", got)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(body)), "# Heading") {
		t.Fatalf("body not returned correctly: %q", string(body))
	}
	if strings.Contains(string(body), "title:") {
		t.Fatalf("body still contains the header: %q", string(body))
	}
}

func TestParseFrontmatter_NoHeader(t *testing.T) {
	raw := []byte("Just markdown.\n\n---\n\nAfter a rule.\n")

	meta, body, err := ParseFrontmatter(raw)
	if err != nil {
		t.Fatalf("ParseFrontmatter: %v", err)
	}
	if len(meta) != 0 {
		t.Fatalf("expected empty metadata, got %#v", meta)
	}
	if string(body) != string(raw) {
		t.Fatalf("expected whole input as body, got %q", string(body))
	}
}

func TestParseFrontmatter_UnquotedDate(t *testing.T) {
	meta, _, err := ParseFrontmatter([]byte("---\ndate: 2024-01-01\n---\nbody\n"))
	if err != nil {
		t.Fatalf("ParseFrontmatter: %v", err)
	}
	if got := meta.String("date"); got != "2024-01-01" {
		t.Fatalf("date mismatch: %q", got)
	}
}

func TestParseFrontmatter_LeadingBlankLines(t *testing.T) {
	meta, body, err := ParseFrontmatter([]byte("\n\n---\ntitle: x\n---\nbody"))
	if err != nil {
		t.Fatalf("ParseFrontmatter: %v", err)
	}
	if meta.String("title") != "x" {
		t.Fatalf("title mismatch: %#v", meta)
	}
	if strings.TrimSpace(string(body)) != "body" {
		t.Fatalf("body mismatch: %q", string(body))
	}
}

func TestParseFrontmatter_Unterminated(t *testing.T) {
	_, _, err := ParseFrontmatter([]byte("---\ntitle: broken\n\nno closing delimiter\n"))
	var mce *MalformedContentError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MalformedContentError, got %v", err)
	}
}

func TestParseFrontmatter_InvalidYAML(t *testing.T) {
	_, _, err := ParseFrontmatter([]byte("---\ntitle: [unclosed\n---\nbody\n"))
	var mce *MalformedContentError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MalformedContentError, got %v", err)
	}
}

func TestEncodeFrontmatter_RoundTrip(t *testing.T) {
	inputs := []string{
		"---\ntitle: Sample\ndate: \"2024-01-01\"\ncategory: workwear\n---\nHello\n",
		"---\ntitle: 空調服\ntags: [cooling, summer]\nkeywords:\n  - fan\n  - battery\npriority: 3\nfeatured: true\n---\n",
	}

	for _, in := range inputs {
		meta, body, err := ParseFrontmatter([]byte(in))
		if err != nil {
			t.Fatalf("ParseFrontmatter(%q): %v", in, err)
		}
		encoded, err := EncodeFrontmatter(meta, body)
		if err != nil {
			t.Fatalf("EncodeFrontmatter: %v", err)
		}
		again, body2, err := ParseFrontmatter(encoded)
		if err != nil {
			t.Fatalf("re-parse: %v", err)
		}
		if !reflect.DeepEqual(meta, again) {
			t.Fatalf("metadata changed after round trip:\n before %#v\n after  %#v", meta, again)
		}
		if string(body) != string(body2) {
			t.Fatalf("body changed after round trip: %q vs %q", body, body2)
		}
	}
}

func TestMetadataStrings_Scalar(t *testing.T) {
	meta := Metadata{"tags": "single", "empty": nil}
	if got := meta.Strings("tags"); !reflect.DeepEqual(got, []string{"single"}) {
		t.Fatalf("scalar tag: %#v", got)
	}
	if got := meta.Strings("empty"); len(got) != 0 {
		t.Fatalf("nil value: %#v", got)
	}
	if got := meta.Strings("missing"); got == nil || len(got) != 0 {
		t.Fatalf("missing key must be empty, non-nil: %#v", got)
	}
}
