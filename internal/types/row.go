package types

// Row is the common contract of glossary and cheat-sheet rows. The query
// layer in internal/tables is generic over it.
type Row interface {
	RowID() string
	RowCategory() string
	// SearchFields returns the textual fields a search query is matched
	// against. Fields are ORed: one match qualifies the row.
	SearchFields() []string
}

// GlossaryRow maps one source command/API to its target equivalent within a
// comparison table.
type GlossaryRow struct {
	ID       string `yaml:"id" json:"id"`
	Category string `yaml:"category" json:"category"`
	From     string `yaml:"from" json:"from"`
	To       string `yaml:"to" json:"to"`
	Note     string `yaml:"note" json:"note"`
}

func (r GlossaryRow) RowID() string       { return r.ID }
func (r GlossaryRow) RowCategory() string { return r.Category }

func (r GlossaryRow) SearchFields() []string {
	return []string{r.From, r.To, r.Note}
}

// CheatRow is one command reference line within a single-tool cheat sheet.
type CheatRow struct {
	ID          string `yaml:"id" json:"id"`
	Category    string `yaml:"category" json:"category"`
	Command     string `yaml:"command" json:"command"`
	Description string `yaml:"description" json:"description"`
	Note        string `yaml:"note,omitempty" json:"note,omitempty"`
}

func (r CheatRow) RowID() string       { return r.ID }
func (r CheatRow) RowCategory() string { return r.Category }

func (r CheatRow) SearchFields() []string {
	fields := []string{r.Command, r.Description}
	if r.Note != "" {
		fields = append(fields, r.Note)
	}
	return fields
}
