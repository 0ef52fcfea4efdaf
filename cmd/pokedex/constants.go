package main

// Valid output formats.
const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var validOutputs = []string{outputJSON, outputYAML}
