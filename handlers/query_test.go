// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	var empty filter
	if empty.where() != "" {
		t.Errorf("Expected no WHERE clause, got %q", empty.where())
	}
	clause, args := empty.page(1, 10)
	if clause != " LIMIT $1 OFFSET $2" || !reflect.DeepEqual(args, []any{10, 0}) {
		t.Errorf("Unexpected page clause %q %v", clause, args)
	}

	var f filter
	f.add("village_id", "v1")
	f.add("posko_id", "p1")

	if got := f.where(); got != " WHERE village_id = $1 AND posko_id = $2" {
		t.Errorf("Unexpected WHERE clause %q", got)
	}

	clause, args = f.page(3, 20)
	if clause != " LIMIT $3 OFFSET $4" {
		t.Errorf("Unexpected page clause %q", clause)
	}
	if !reflect.DeepEqual(args, []any{"v1", "p1", 20, 40}) {
		t.Errorf("Unexpected args %v", args)
	}
	if len(f.args) != 2 {
		t.Errorf("page must not modify the filter's own args, got %v", f.args)
	}
}

func TestFilter_Search(t *testing.T) {
	var f filter
	f.add("village_id", "v1")
	f.search("Siti_50%", "child_name", "parent_name")

	want := ` WHERE village_id = $1 AND (LOWER(child_name) LIKE $2 ESCAPE '\' OR LOWER(parent_name) LIKE $2 ESCAPE '\')`
	if got := f.where(); got != want {
		t.Errorf("Unexpected WHERE clause\n got %q\nwant %q", got, want)
	}
	if !reflect.DeepEqual(f.args, []any{"v1", `%siti\_50\%%`}) {
		t.Errorf("Unexpected args %v", f.args)
	}
}
