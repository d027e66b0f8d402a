package maintenance

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed bad-words.txt
var defaultWords string

// DefaultWords returns the word list the shipped substitution table was built from.
func DefaultWords() []string {
	words, _ := ParseWords(strings.NewReader(defaultWords))
	return words
}

// ParseWords reads one word per line. Blank lines and lines starting with
// '#' are skipped; words are lowercased.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}

	return words, nil
}

func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseWords(f)
}

// Match returns the first word contained in digest.
func Match(digest string, words []string) (string, bool) {
	for _, w := range words {
		if strings.Contains(digest, w) {
			return w, true
		}
	}
	return "", false
}
