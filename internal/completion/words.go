package completion

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// DefaultDictionary is the word list most Unix systems ship
const DefaultDictionary = "/usr/share/dict/words"

// WordOptions tunes a WordSource
type WordOptions struct {
	Fuzzy     bool // rank by fuzzy match instead of requiring a prefix
	CacheSize int  // remembered lookups, 0 disables the cache
	Limit     int  // maximum candidates per lookup, 0 means no limit
}

// WordSource completes words from a dictionary
type WordSource struct {
	words []string // sorted, unique
	opts  WordOptions
	cache *lru.Cache[string, []string]
}

// LoadWords reads a dictionary with one word per line
func LoadWords(path string, opts WordOptions) (*WordSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	return NewWordSource(words, opts)
}

// NewWordSource creates a source over an in-memory word list
func NewWordSource(words []string, opts WordOptions) (*WordSource, error) {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	s := &WordSource{
		words: lo.Uniq(sorted),
		opts:  opts,
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New[string, []string](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create word cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

func (s *WordSource) Name() string {
	return "words"
}

func (s *WordSource) Description() string {
	if s.opts.Fuzzy {
		return "Dictionary words ranked by fuzzy match"
	}
	return "Dictionary words starting with the current word"
}

// Len returns the number of distinct words in the dictionary
func (s *WordSource) Len() int {
	return len(s.words)
}

// CachedLookups returns the number of lookups currently remembered
func (s *WordSource) CachedLookups() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

func (s *WordSource) Complete(text string) []string {
	if s.cache != nil {
		if entries, ok := s.cache.Get(text); ok {
			return append([]string(nil), entries...)
		}
	}

	var entries []string
	if s.opts.Fuzzy && text != "" {
		entries = s.fuzzyMatches(text)
	} else {
		entries = s.prefixMatches(text)
	}

	if s.cache != nil {
		s.cache.Add(text, entries)
	}
	return append([]string(nil), entries...)
}

func (s *WordSource) prefixMatches(text string) []string {
	var entries []string
	for i := sort.SearchStrings(s.words, text); i < len(s.words); i++ {
		if !strings.HasPrefix(s.words[i], text) {
			break
		}
		if s.full(entries) {
			break
		}
		entries = append(entries, s.words[i])
	}
	return entries
}

func (s *WordSource) fuzzyMatches(text string) []string {
	var entries []string
	for _, match := range fuzzy.Find(text, s.words) {
		if s.full(entries) {
			break
		}
		entries = append(entries, match.Str)
	}
	return entries
}

func (s *WordSource) full(entries []string) bool {
	return s.opts.Limit > 0 && len(entries) >= s.opts.Limit
}
