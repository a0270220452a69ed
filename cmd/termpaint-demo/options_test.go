// ABOUTME: Tests for the YAML menu definition loader
// ABOUTME: Covers field mapping, value defaulting, and validation errors

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMenuFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMenuFile(t *testing.T) {
	t.Parallel()

	path := writeMenuFile(t, `
title: Pick a target
cancellable: true
numbered: true
options:
  - name: staging
    description: pre-production cluster
    value: stg-1
    fields:
      - label: region
        value: eu-west-1
  - name: production
`)

	def, err := loadMenuFile(path)
	if err != nil {
		t.Fatalf("loadMenuFile failed: %v", err)
	}

	if def.Title != "Pick a target" {
		t.Errorf("Title = %q", def.Title)
	}
	if !def.Cancellable || !def.Numbered {
		t.Errorf("flags = cancellable %v numbered %v, want both true", def.Cancellable, def.Numbered)
	}
	if len(def.Options) != 2 {
		t.Fatalf("got %d options, want 2", len(def.Options))
	}

	first := def.Options[0]
	if first.Name != "staging" || first.Description != "pre-production cluster" {
		t.Errorf("first option = %+v", first)
	}
	if first.Value != "stg-1" {
		t.Errorf("first value = %v, want stg-1", first.Value)
	}
	if len(first.Fields) != 1 || first.Fields[0].Label != "region" || first.Fields[0].Value != "eu-west-1" {
		t.Errorf("first fields = %+v", first.Fields)
	}

	// Omitted values stay nil so the option name becomes the value.
	if def.Options[1].Value != nil {
		t.Errorf("second value = %v, want nil", def.Options[1].Value)
	}
}

func TestLoadMenuFileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "{{nope"},
		{"no options", "title: empty\n"},
		{"nameless option", "options:\n  - description: who am I\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeMenuFile(t, tt.content)
			if _, err := loadMenuFile(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadMenuFileMissing(t *testing.T) {
	t.Parallel()

	if _, err := loadMenuFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
