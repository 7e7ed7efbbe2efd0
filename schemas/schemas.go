// Package schemas embeds the JSON Schemas for the documents PathFinder exchanges.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names.
const (
	AnalyzeRequest = "analyze_request.schema.json"
	Recommendation = "recommendation.schema.json"
	AnswerSet      = "answer_set.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Get returns the content of an embedded schema.
func Get(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("schema %s not found: %w", name, err)
	}
	return string(data), nil
}

// MustGet is like Get but panics when the schema is missing.
func MustGet(name string) string {
	s, err := Get(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Names lists every embedded schema.
func Names() []string {
	return []string{AnalyzeRequest, Recommendation, AnswerSet}
}
