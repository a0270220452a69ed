// ABOUTME: YAML menu definitions for the menu demo
// ABOUTME: Maps a small file format onto selection options, with validation

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/termpaint/pkg/selection"
)

// menuFile is the YAML shape of a menu definition:
//
//	title: Pick a deployment target
//	cancellable: true
//	numbered: false
//	options:
//	  - name: staging
//	    description: pre-production cluster
//	    value: stg-1
//	    fields:
//	      - label: region
//	        value: eu-west-1
type menuFile struct {
	Title       string       `yaml:"title"`
	Cancellable bool         `yaml:"cancellable"`
	Numbered    bool         `yaml:"numbered"`
	Options     []optionNode `yaml:"options"`
}

type optionNode struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Value       string      `yaml:"value"`
	Fields      []fieldNode `yaml:"fields"`
}

type fieldNode struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// menuDef is a parsed, validated menu definition.
type menuDef struct {
	Title       string
	Cancellable bool
	Numbered    bool
	Options     []selection.Option
}

// loadMenuFile reads and validates a YAML menu definition.
func loadMenuFile(path string) (*menuDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menu file: %w", err)
	}

	var mf menuFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parsing menu file %s: %w", path, err)
	}
	if len(mf.Options) == 0 {
		return nil, fmt.Errorf("menu file %s defines no options", path)
	}

	def := &menuDef{
		Title:       mf.Title,
		Cancellable: mf.Cancellable,
		Numbered:    mf.Numbered,
	}
	for i, node := range mf.Options {
		if node.Name == "" {
			return nil, fmt.Errorf("menu file %s: option %d has no name", path, i)
		}
		opt := selection.Option{
			Name:        node.Name,
			Description: node.Description,
		}
		if node.Value != "" {
			opt.Value = node.Value
		}
		for _, f := range node.Fields {
			opt.Fields = append(opt.Fields, selection.Field{Label: f.Label, Value: f.Value})
		}
		def.Options = append(def.Options, opt)
	}
	return def, nil
}

// sampleMenu is the built-in definition used when no -options file is
// given.
func sampleMenu() *menuDef {
	return &menuDef{
		Title: "Pick a deployment target",
		Options: []selection.Option{
			{
				Name:        "staging",
				Description: "pre-production cluster",
				Fields:      []selection.Field{{Label: "region", Value: "eu-west-1"}},
			},
			{
				Name:        "production",
				Description: "live cluster",
				Fields:      []selection.Field{{Label: "region", Value: "eu-central-1"}},
			},
			{
				Name:        "local",
				Description: "docker compose on this machine",
				Fields:      []selection.Field{{Label: "region", Value: "-"}},
			},
		},
	}
}
