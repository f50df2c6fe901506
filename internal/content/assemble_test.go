package content

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

const testAuthor = "ユニフォームナビ編集部"

func TestAssembler_LoadByID_Sample(t *testing.T) {
	fsys := fstest.MapFS{
		"sample.md": {Data: []byte("---\ntitle: \"Sample\"\ndate: \"2024-01-01\"\ncategory: \"workwear\"\n---\nHello ![a](x.png)")},
	}
	a := NewAssembler(fsys, nil, testAuthor)

	post, err := a.LoadByID("sample")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if post.ID != "sample" {
		t.Errorf("id = %q", post.ID)
	}
	if post.Title != "Sample" || post.Date != "2024-01-01" || post.Category != "workwear" {
		t.Errorf("unexpected metadata: %+v", post)
	}
	if post.Thumbnail != "x.png" {
		t.Errorf("thumbnail = %q, want x.png", post.Thumbnail)
	}
	if !strings.Contains(post.Content, `<img src="x.png"`) {
		t.Errorf("content missing image: %q", post.Content)
	}
	if post.Author != testAuthor {
		t.Errorf("author = %q, want default", post.Author)
	}
	if post.UpdatedAt != "2024-01-01" {
		t.Errorf("updatedAt = %q, want date", post.UpdatedAt)
	}
	if post.Tags == nil || post.Keywords == nil {
		t.Errorf("tags and keywords must be non-nil")
	}
}

func TestAssembler_ExplicitFields(t *testing.T) {
	raw := []byte(`---
title: 空調服ガイド
date: "2024-05-10"
updatedAt: "2024-06-01"
category: cooling
author: 山田
thumbnail: /images/fan.jpg
tags: [空調服, 夏]
keywords: [ファン付き]
relatedPosts: [battery-guide]
excerpt: 夏の現場向け
---
![a](other.png)
`)
	post, err := NewAssembler(fstest.MapFS{}, nil, testAuthor).Assemble("cooling-guide", raw)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if post.Author != "山田" || post.UpdatedAt != "2024-06-01" || post.Thumbnail != "/images/fan.jpg" {
		t.Errorf("explicit fields overridden: %+v", post)
	}
	if len(post.Tags) != 2 || post.Tags[0] != "空調服" {
		t.Errorf("tags = %#v", post.Tags)
	}
	if len(post.RelatedPosts) != 1 || post.RelatedPosts[0] != "battery-guide" {
		t.Errorf("relatedPosts = %#v", post.RelatedPosts)
	}
	if post.Excerpt != "夏の現場向け" {
		t.Errorf("excerpt = %q", post.Excerpt)
	}
}

func TestAssembler_LoadByID_NotFound(t *testing.T) {
	a := NewAssembler(fstest.MapFS{"a.md": {Data: []byte("x")}}, nil, testAuthor)

	for _, id := range []string{"missing", "", "..", "../etc/passwd", `a\b`} {
		_, err := a.LoadByID(id)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("LoadByID(%q): expected NotFoundError, got %v", id, err)
		}
	}
}

func TestAssembler_LoadByID_Malformed(t *testing.T) {
	fsys := fstest.MapFS{"broken.md": {Data: []byte("---\ntitle: broken\n")}}

	_, err := NewAssembler(fsys, nil, testAuthor).LoadByID("broken")
	var mce *MalformedContentError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MalformedContentError, got %v", err)
	}
	if mce.ID != "broken" {
		t.Fatalf("error id = %q", mce.ID)
	}
}

func TestMissingRequired(t *testing.T) {
	post, err := NewAssembler(fstest.MapFS{}, nil, testAuthor).Assemble("bare", []byte("no header"))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	missing := MissingRequired(post)
	if strings.Join(missing, ",") != "title,date,category" {
		t.Fatalf("missing = %v", missing)
	}
}
