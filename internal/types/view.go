package types

// EntryView is the serialization-friendly projection of an Entry, flat
// across both variants. Exactly one of From/To or Tool is set, per the
// entry's kind.
type EntryView struct {
	Slug          string   `json:"slug"`
	Kind          Kind     `json:"kind"`
	Title         string   `json:"title"`
	Category      Category `json:"category"`
	Steps         int      `json:"steps"`
	EstimatedTime string   `json:"estimated_time"`
	Status        Status   `json:"status"`
	ExternalURL   string   `json:"external_url,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Language      string   `json:"language,omitempty"`
	From          *Tool    `json:"from,omitempty"`
	To            *Tool    `json:"to,omitempty"`
	Tool          *Tool    `json:"tool,omitempty"`
}

// ViewOf projects an entry for output, narrowing by variant.
func ViewOf(entry Entry) EntryView {
	meta := entry.Meta()
	view := EntryView{
		Slug:          meta.Slug,
		Kind:          entry.Kind(),
		Category:      meta.Category,
		Steps:         meta.Steps,
		EstimatedTime: meta.EstimatedTime,
		Status:        meta.Status,
		ExternalURL:   meta.ExternalURL,
		Tags:          meta.Tags,
		Language:      meta.Language,
	}

	switch e := entry.(type) {
	case *Comparison:
		view.Title = e.To.Name + " for " + e.From.Name + " users"
		view.From = &e.From
		view.To = &e.To
	case *SingleTool:
		view.Title = e.Tool.Name
		view.Tool = &e.Tool
	}
	return view
}
