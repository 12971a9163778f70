package checker

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"
)

//go:embed words.txt
var embeddedWords string

// Speller is a dictionary-based word checker. A word is reported only when
// it is unknown and a known word lies within MaxEdit edits of it, which keeps
// rare-but-correct words out of the results. Add may run concurrently with
// Check.
type Speller struct {
	mu      sync.RWMutex
	words   map[string]struct{}
	byLen   map[int][]string
	MaxEdit int
}

// NewSpeller loads the embedded dictionary plus any extra word lists.
func NewSpeller(extra ...io.Reader) (*Speller, error) {
	s := &Speller{
		words:   map[string]struct{}{},
		byLen:   map[int][]string{},
		MaxEdit: 2,
	}
	if err := s.load(strings.NewReader(embeddedWords)); err != nil {
		return nil, err
	}
	for _, r := range extra {
		if err := s.load(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewSpellerFromFile is NewSpeller with an optional word list on disk.
func NewSpellerFromFile(path string) (*Speller, error) {
	if path == "" {
		return NewSpeller()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return NewSpeller(f)
}

// Add registers extra known words, e.g. topic keywords.
func (s *Speller) Add(words ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range words {
		for _, f := range strings.Fields(strings.ToLower(w)) {
			s.add(f)
		}
	}
}

func (s *Speller) add(w string) {
	if _, ok := s.words[w]; ok {
		return
	}
	s.words[w] = struct{}{}
	n := len([]rune(w))
	s.byLen[n] = append(s.byLen[n], w)
}

func (s *Speller) load(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		s.add(w)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read dictionary: %w", err)
	}
	return nil
}

// Len is the number of dictionary entries.
func (s *Speller) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Known reports whether w, or a regular inflection of a known stem, is in
// the dictionary.
func (s *Speller) Known(w string) bool {
	w = strings.ToLower(w)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.words[w]; ok {
		return true
	}
	for _, stem := range stems(w) {
		if _, ok := s.words[stem]; ok {
			return true
		}
	}
	return false
}

// Suggest returns the closest dictionary word within MaxEdit, or "".
// Ties resolve alphabetically.
func (s *Speller) Suggest(w string) string {
	w = strings.ToLower(w)
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len([]rune(w))
	best, bestDist := "", s.MaxEdit+1
	for l := n - s.MaxEdit; l <= n+s.MaxEdit; l++ {
		if diff := l - n; diff > bestDist || -diff > bestDist {
			continue
		}
		for _, c := range s.byLen[l] {
			d := levenshtein(w, c)
			if d < bestDist || (d == bestDist && c < best) {
				best, bestDist = c, d
			}
		}
	}
	if bestDist > s.MaxEdit {
		return ""
	}
	return best
}

// Check implements Checker.
func (s *Speller) Check(_ context.Context, text string) ([]Match, error) {
	var out []Match
	for _, tok := range tokenize(text) {
		w := tok.word
		if len([]rune(w)) < 3 {
			continue
		}
		if tok.capitalized && !tok.sentenceStart {
			// proper nouns
			continue
		}
		if s.Known(w) {
			continue
		}
		sug := s.Suggest(w)
		if sug == "" {
			continue
		}
		if tok.capitalized {
			sug = capitalize(sug)
		}
		out = append(out, Match{
			Offset:       tok.offset,
			Length:       tok.length,
			Message:      fmt.Sprintf("Possible spelling mistake: %q.", w),
			Replacements: []string{sug},
			Category:     "misspelling",
			Source:       "speller",
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out, nil
}

type token struct {
	word          string
	offset        int // UTF-16 units
	length        int // UTF-16 units
	capitalized   bool
	sentenceStart bool
}

// tokenize yields purely alphabetic words; tokens glued to digits or
// apostrophes are skipped.
func tokenize(text string) []token {
	var (
		out       []token
		cur       []rune
		curOff    int
		units     int
		tainted   bool
		nextStart = true
	)
	flush := func() {
		if len(cur) > 0 && !tainted {
			n := 0
			for _, r := range cur {
				n += utf16Len(r)
			}
			out = append(out, token{
				word:          string(cur),
				offset:        curOff,
				length:        n,
				capitalized:   unicode.IsUpper(cur[0]),
				sentenceStart: nextStart,
			})
		}
		if len(cur) > 0 {
			nextStart = false
		}
		cur, tainted = cur[:0], false
	}
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			if len(cur) == 0 {
				curOff = units
			}
			cur = append(cur, r)
		case unicode.IsDigit(r) || r == '\'' || r == '’' || r == '-':
			if len(cur) == 0 {
				curOff = units
			}
			tainted = true
			cur = append(cur, r)
		default:
			flush()
			if r == '.' || r == '!' || r == '?' {
				nextStart = true
			}
		}
		units += utf16Len(r)
	}
	flush()
	return out
}

// stems lists candidate base forms for common English suffixes.
func stems(w string) []string {
	var out []string
	add := func(s string) {
		if len(s) >= 2 {
			out = append(out, s)
		}
	}
	switch {
	case strings.HasSuffix(w, "ies"):
		add(strings.TrimSuffix(w, "ies") + "y")
	case strings.HasSuffix(w, "es"):
		add(strings.TrimSuffix(w, "es"))
		add(strings.TrimSuffix(w, "s"))
	case strings.HasSuffix(w, "s"):
		add(strings.TrimSuffix(w, "s"))
	}
	for _, suf := range []string{"ed", "ing", "er", "est"} {
		if !strings.HasSuffix(w, suf) {
			continue
		}
		base := strings.TrimSuffix(w, suf)
		add(base)
		add(base + "e")
		if strings.HasSuffix(base, "i") {
			add(strings.TrimSuffix(base, "i") + "y")
		}
		if n := len(base); n >= 2 && base[n-1] == base[n-2] {
			add(base[:n-1])
		}
	}
	if strings.HasSuffix(w, "ly") {
		base := strings.TrimSuffix(w, "ly")
		add(base)
		if strings.HasSuffix(base, "i") {
			add(strings.TrimSuffix(base, "i") + "y")
		}
	}
	return out
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// levenshtein computes edit distance (insertion, deletion, substitution cost 1).
func levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n, m := len(ar), len(br)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			tmp := dp[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			dp[j] = min(dp[j]+1, dp[j-1]+1, prev+cost)
			prev = tmp
		}
	}
	return dp[m]
}
