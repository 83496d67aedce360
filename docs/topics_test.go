package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics keeps the documentation in sync with itself:
//  1. every topic listed in readme.md can be loaded,
//  2. every .md file (except readme.md) is listed in readme.md,
//  3. every topic starts with a level-1 heading.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}

	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q listed in readme.md cannot be loaded: %v", topic, err)
		}
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if topic == "readme" {
			continue
		}
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}

	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		if !startsWithH1(t, content) {
			t.Errorf("topic %q does not start with a level-1 heading", topic)
		}
	}
}

// startsWithH1 parses the markdown and reports whether the first block
// is an H1 heading.
func startsWithH1(t *testing.T, content string) bool {
	t.Helper()
	source := []byte(content)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	first := doc.FirstChild()
	heading, ok := first.(*ast.Heading)
	return ok && heading.Level == 1
}

func TestGetTopics_Star(t *testing.T) {
	all, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}
	expanded, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(expanded, content) {
			t.Errorf("expanded topics do not contain topic %q", topic)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Fatal("expected an error for an unknown topic")
	}
}
