package models

// JournalEntry is a single free-form entry. Immutable once analyzed.
type JournalEntry struct {
	ID        string `json:"id"`
	UserID    string `json:"-"`
	Content   string `json:"content"`
	Mood      string `json:"mood,omitempty"`
	Energy    string `json:"energy,omitempty"`
	EntryDate int64  `json:"entryDate"`
	CreatedAt int64  `json:"createdAt"`
}

// Todo is a tracked task, optionally dated and prioritized.
type Todo struct {
	ID          string       `json:"id"`
	UserID      string       `json:"-"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     string       `json:"dueDate,omitempty"` // YYYY-MM-DD
	Priority    TodoPriority `json:"priority,omitempty"`
	Completed   bool         `json:"completed"`
	CreatedAt   int64        `json:"createdAt"`
	CompletedAt *int64       `json:"completedAt,omitempty"`
}

// Mood is one recorded mood reading.
type Mood struct {
	ID         string `json:"id"`
	UserID     string `json:"-"`
	Mood       string `json:"mood"`
	Energy     string `json:"energy,omitempty"`
	Note       string `json:"note,omitempty"`
	RecordedAt int64  `json:"recordedAt"`
}

// Habit is a recurring practice with a consecutive-day streak.
type Habit struct {
	ID             string `json:"id"`
	UserID         string `json:"-"`
	Name           string `json:"name"`
	Frequency      string `json:"frequency,omitempty"` // daily, weekly, ...
	Streak         int    `json:"streak"`
	LastCheckedDay string `json:"lastCheckedDay,omitempty"` // YYYY-MM-DD
	Active         bool   `json:"active"`
	CreatedAt      int64  `json:"createdAt"`
}

// Media is a tracked book, movie, show, podcast, or similar.
type Media struct {
	ID        string      `json:"id"`
	UserID    string      `json:"-"`
	Title     string      `json:"title"`
	Type      string      `json:"type"` // book, movie, show, music, podcast
	Status    MediaStatus `json:"status"`
	Rating    *int        `json:"rating,omitempty"`
	CreatedAt int64       `json:"createdAt"`
	UpdatedAt int64       `json:"updatedAt"`
}

// Preferences tunes extraction filtering and prompt generation per user.
type Preferences struct {
	UserID              string      `json:"-"`
	ConfidenceThreshold float64     `json:"confidenceThreshold"`
	SuggestionTypes     []string    `json:"suggestionTypes"`
	PromptStyle         PromptStyle `json:"promptStyle"`
	UpdatedAt           int64       `json:"updatedAt"`
}

// DefaultPreferences is what a user gets before they have tuned anything.
func DefaultPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:              userID,
		ConfidenceThreshold: 0.7,
		SuggestionTypes: []string{
			string(KindTodo), string(KindMood), string(KindHabit),
			string(KindMedia), SuggestionTypeReflection,
		},
		PromptStyle: StyleReflective,
	}
}

// Validate enforces the documented ranges before a replace is accepted.
func (p *Preferences) Validate() error {
	if p.ConfidenceThreshold < 0 || p.ConfidenceThreshold > 1 {
		return &ValidationError{Field: "confidenceThreshold", Msg: "must be between 0 and 1"}
	}
	for _, t := range p.SuggestionTypes {
		if !ValidSuggestionTypes[t] {
			return &ValidationError{Field: "suggestionTypes", Msg: "unknown suggestion type: " + t}
		}
	}
	if !p.PromptStyle.IsValid() {
		return &ValidationError{Field: "promptStyle", Msg: "unknown prompt style: " + string(p.PromptStyle)}
	}
	return nil
}

// Allows reports whether the given suggestion type is enabled.
func (p *Preferences) Allows(suggestionType string) bool {
	for _, t := range p.SuggestionTypes {
		if t == suggestionType {
			return true
		}
	}
	return false
}

// ValidationError marks bad client input. Handlers map it to a 400.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

// ContextSnapshot is the per-request fusion of a user's cross-domain state.
// Each sub-list keeps its source ordering; the aggregator never reorders.
type ContextSnapshot struct {
	UpcomingTodos  []Todo         `json:"upcomingTodos"`
	RecentMoods    []Mood         `json:"recentMoods"`
	ActiveHabits   []Habit        `json:"activeHabits"`
	RecentMedia    []Media        `json:"recentMedia"`
	RecentJournals []JournalEntry `json:"recentJournals"`
}
