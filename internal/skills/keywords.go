package skills

// Keyword is a vocabulary term found in a document.
type Keyword struct {
	Name     string   `json:"name"`
	Category Category `json:"category,omitempty"`
	// Position is the token index of the first occurrence.
	Position int `json:"position"`
	// Count is the number of occurrences.
	Count int `json:"count"`
}

// KeywordSet holds the distinct terms of one document in first-occurrence
// order. The zero value is an empty set.
type KeywordSet struct {
	items []Keyword
	index map[string]int
}

func newKeywordSet() KeywordSet {
	return KeywordSet{index: make(map[string]int)}
}

// NewKeywordSet builds a set from keywords that were extracted elsewhere
// (for example loaded from storage). Later duplicates are folded into the
// first occurrence.
func NewKeywordSet(keywords []Keyword) KeywordSet {
	set := newKeywordSet()
	for _, kw := range keywords {
		if kw.Name == "" {
			continue
		}

		count := kw.Count
		if count < 1 {
			count = 1
		}

		if i, ok := set.index[kw.Name]; ok {
			set.items[i].Count += count

			continue
		}

		kw.Count = count
		set.index[kw.Name] = len(set.items)
		set.items = append(set.items, kw)
	}

	return set
}

func (s *KeywordSet) add(name string, category Category, position int) {
	if i, ok := s.index[name]; ok {
		s.items[i].Count++

		return
	}

	s.index[name] = len(s.items)
	s.items = append(s.items, Keyword{
		Name:     name,
		Category: category,
		Position: position,
		Count:    1,
	})
}

// Len returns the number of distinct terms.
func (s KeywordSet) Len() int {
	return len(s.items)
}

// Contains reports whether the canonical term name is in the set.
func (s KeywordSet) Contains(name string) bool {
	_, ok := s.index[name]

	return ok
}

// Get returns the keyword for a canonical term name.
func (s KeywordSet) Get(name string) (Keyword, bool) {
	i, ok := s.index[name]
	if !ok {
		return Keyword{}, false
	}

	return s.items[i], true
}

// Keywords returns a copy of the keywords in first-occurrence order.
func (s KeywordSet) Keywords() []Keyword {
	out := make([]Keyword, len(s.items))
	copy(out, s.items)

	return out
}

// Names returns the canonical names in first-occurrence order.
func (s KeywordSet) Names() []string {
	return Names(s.items)
}

// Names returns the names of the keywords, keeping their order.
func Names(keywords []Keyword) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = kw.Name
	}

	return out
}
