package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	var listed []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			listed = append(listed, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return listed
}

func TestTopicsMatchReadme(t *testing.T) {
	// The readme is the index: every listed topic must load, and every
	// embedded topic must be listed.
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range listed {
		if _, err := Get(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	embedded, err := All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}
	for _, topic := range embedded {
		found := false
		for _, l := range listed {
			if l == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopicsAreValidMarkdown(t *testing.T) {
	topics, err := All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}

	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := Get(topic)
			if err != nil {
				t.Fatalf("failed to get topic: %v", err)
			}

			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			headings := 0
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if entering {
					if _, ok := n.(*ast.Heading); ok {
						headings++
					}
				}
				return ast.WalkContinue, nil
			})
			if headings == 0 {
				t.Errorf("topic %q has no markdown heading", topic)
			}
		})
	}
}

func TestGetAllConcatenates(t *testing.T) {
	all, err := Get("*")
	if err != nil {
		t.Fatalf("Get(*) failed: %v", err)
	}
	topics, err := All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}
	for _, topic := range topics {
		content, err := Get(topic)
		if err != nil {
			t.Fatalf("failed to get topic %q: %v", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("Get(*) is missing topic %q", topic)
		}
	}
}

func TestUnknownTopic(t *testing.T) {
	if _, err := Get("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}
