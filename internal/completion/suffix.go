package completion

// SuffixSource completes a word by appending each of a fixed set of suffixes
type SuffixSource struct {
	Suffixes []string
}

// NewSuffixSource creates a source that offers text+suffix for every suffix
func NewSuffixSource(suffixes []string) *SuffixSource {
	return &SuffixSource{Suffixes: suffixes}
}

func (s *SuffixSource) Name() string {
	return "suffix"
}

func (s *SuffixSource) Description() string {
	return "Appends a fixed suffix to the current word"
}

func (s *SuffixSource) Complete(text string) []string {
	entries := make([]string, 0, len(s.Suffixes))
	for _, suffix := range s.Suffixes {
		entries = append(entries, text+suffix)
	}
	return entries
}
