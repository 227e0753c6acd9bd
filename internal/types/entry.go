package types

// Category is the closed set of catalog categories shared by both entry
// variants.
type Category string

const (
	CategoryVersionControl    Category = "Version Control"
	CategoryPackageManagement Category = "Package Management"
	CategoryBuildTools        Category = "Build Tools"
	CategoryFrameworks        Category = "Frameworks & Libraries"
	CategoryOther             Category = "Other"
)

// Categories lists every valid catalog category.
var Categories = []Category{
	CategoryVersionControl,
	CategoryPackageManagement,
	CategoryBuildTools,
	CategoryFrameworks,
	CategoryOther,
}

// IsValid reports whether c is a member of the closed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Status is the publication state of an entry.
type Status string

const (
	StatusPublished  Status = "published"
	StatusComingSoon Status = "coming_soon"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return s == StatusPublished || s == StatusComingSoon
}

// Kind discriminates the two entry variants.
type Kind string

const (
	KindComparison Kind = "comparison"
	KindSingleTool Kind = "single_tool"
)

// Tool describes one tool as shown in the catalog
type Tool struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// EntryMeta holds the fields common to both entry variants.
type EntryMeta struct {
	Slug          string   `yaml:"slug" json:"slug"`
	Category      Category `yaml:"category" json:"category"`
	Steps         int      `yaml:"steps" json:"steps"`
	EstimatedTime string   `yaml:"estimated_time" json:"estimated_time"`
	Status        Status   `yaml:"status" json:"status"`
	ExternalURL   string   `yaml:"external_url,omitempty" json:"external_url,omitempty"`
	Tags          []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Language      string   `yaml:"language,omitempty" json:"language,omitempty"`
}

// Entry is one tutorial in the catalog, either a two-tool comparison or a
// single-tool guide. The concrete type carries the variant-specific tool
// descriptors; consumers narrow with a type switch on *Comparison /
// *SingleTool, never by probing optional fields.
type Entry interface {
	Kind() Kind
	Meta() EntryMeta
	Slug() string
}

// Comparison is a "from tool X to tool Y" tutorial entry.
type Comparison struct {
	EntryMeta `yaml:",inline"`
	From      Tool `yaml:"from" json:"from"`
	To        Tool `yaml:"to" json:"to"`
}

// SingleTool is a standalone guide for one tool.
type SingleTool struct {
	EntryMeta `yaml:",inline"`
	Tool      Tool `yaml:"tool" json:"tool"`
}

func (c *Comparison) Kind() Kind      { return KindComparison }
func (c *Comparison) Meta() EntryMeta { return c.EntryMeta }
func (c *Comparison) Slug() string    { return c.EntryMeta.Slug }

func (s *SingleTool) Kind() Kind      { return KindSingleTool }
func (s *SingleTool) Meta() EntryMeta { return s.EntryMeta }
func (s *SingleTool) Slug() string    { return s.EntryMeta.Slug }
