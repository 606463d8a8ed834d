// Package docs embeds the help topics of the sms command.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// index is the topic shown when none is asked for. It is not listed by
// AllTopics.
const index = "readme"

// Topic returns the markdown content of a single help topic.
func Topic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		all, _ := AllTopics()
		return "", fmt.Errorf("topic %q not found, available topics are %s: %w", topic, strings.Join(all, ", "), err)
	}
	return string(content), nil
}

// Topics returns the content of several topics, one after the other. "*"
// expands to every topic, no argument to the index.
func Topics(topics ...string) (string, error) {
	if len(topics) == 0 {
		topics = []string{index}
	}
	var expanded []string
	for _, topic := range topics {
		if topic != "*" {
			expanded = append(expanded, topic)
			continue
		}
		all, err := AllTopics()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	var b strings.Builder
	for _, topic := range expanded {
		content, err := Topic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// AllTopics lists the available topics, sorted, the index excluded.
func AllTopics() ([]string, error) {
	entries, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		if name := strings.TrimSuffix(path.Base(e), ".md"); name != index {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
