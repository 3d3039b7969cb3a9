package sentiment

import "strings"

// Group is one named bucket of the categorizer: instruments whose display
// name contains one of the keywords (case-insensitive) belong to it.
type Group struct {
	Key      string   `json:"key" yaml:"key"`
	Title    string   `json:"title" yaml:"title"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Categorizer assigns instruments to groups by ordered keyword matching:
// groups are evaluated in the supplied order and the first keyword hit
// wins. Names that match nothing fall into the default group.
type Categorizer struct {
	groups     []Group
	defaultKey string
}

// NewCategorizer builds a categorizer over the ordered group list.
func NewCategorizer(groups []Group, defaultKey string) *Categorizer {
	return &Categorizer{groups: groups, defaultKey: defaultKey}
}

// Categorize returns the key of the first group whose keyword is a
// case-insensitive substring of name. Empty names and misses map to the
// default key. Never fails.
func (c *Categorizer) Categorize(name string) string {
	if name == "" {
		return c.defaultKey
	}
	lower := strings.ToLower(name)
	for _, g := range c.groups {
		for _, kw := range g.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(kw)) {
				return g.Key
			}
		}
	}
	return c.defaultKey
}

// DefaultKey returns the fallback group key.
func (c *Categorizer) DefaultKey() string { return c.defaultKey }

// Groups returns the configured groups in evaluation order.
func (c *Categorizer) Groups() []Group { return c.groups }
