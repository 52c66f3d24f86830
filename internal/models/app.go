package models

// FormField identifies which form input currently has keyboard focus.
type FormField int

const (
	FieldQuery FormField = iota
	FieldLocation
)

// SampleQuestion is a canned query the user can copy into the form.
type SampleQuestion struct {
	Text        string // Malayalam query text
	Description string // English gloss shown next to the key hint
}

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Query        string           // Question input field
	Location     string           // Optional location input field
	Focus        FormField        // Which input receives keystrokes
	Response     *QueryResponse   // Last successful response, nil while absent
	History      []HistoryEntry   // Bounded, most-recent-first
	ErrMsg       string           // Last submission error, empty when none
	Status       string           // Status bar text
	Loading      bool             // Submission in flight
	LoadingDots  int              // Animation counter for loading dots
	Width        int              // Terminal width
	Height       int              // Terminal height
	ServiceReady bool             // Whether the backend client is configured
	Samples      []SampleQuestion // Sample questions selectable via F-keys
}
