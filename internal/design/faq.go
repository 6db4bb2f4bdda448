package design

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gi-os/ShopTemplateSystem/internal/domain"
)

// ParseFAQ parses the line-oriented Q:/A: format. "Q:" starts a new entry,
// "A:" starts its answer and subsequent lines extend the answer until the
// next "Q:" or end of input. A pair is only kept when both sides are
// non-empty, so a question with no answer is dropped. Input order is
// preserved and answers keep their internal newlines.
func ParseFAQ(content string) []domain.FAQEntry {
	var entries []domain.FAQEntry
	var question, answer string
	inAnswer := false

	flush := func() {
		if question != "" && answer != "" {
			entries = append(entries, domain.FAQEntry{
				Question: question,
				Answer:   strings.TrimRight(answer, " \t\r\n"),
			})
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "Q:"):
			flush()
			question = strings.TrimSpace(strings.TrimPrefix(line, "Q:"))
			answer = ""
			inAnswer = false
		case strings.HasPrefix(line, "A:"):
			answer = strings.TrimSpace(strings.TrimPrefix(line, "A:"))
			inAnswer = true
		case inAnswer:
			// continuation lines extend the answer; blank lines become
			// paragraph breaks, trailing ones are trimmed at flush
			if answer != "" {
				answer += "\n" + strings.TrimSpace(line)
			} else {
				answer = strings.TrimSpace(line)
			}
		}
	}
	flush()
	return entries
}

// FAQ reads and parses FAQ/FAQ.txt; any failure yields an empty list.
func (r *Repository) FAQ() []domain.FAQEntry {
	data, err := os.ReadFile(filepath.Join(r.root, "FAQ", "FAQ.txt"))
	if err != nil {
		return nil
	}
	return ParseFAQ(string(data))
}
