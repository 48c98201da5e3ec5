package models

// AnalysisResult is the engine's structured read of one journal entry.
// The degraded variant returned when the engine fails is a well-formed
// value of this type, not an error.
type AnalysisResult struct {
	Summary     string        `json:"summary"`
	Sentiment   Sentiment     `json:"sentiment"`
	Keywords    []string      `json:"keywords"`
	Suggestions []string      `json:"suggestions"`
	Insights    string        `json:"insights"`
	Extracted   ExtractedData `json:"extracted"`
}

// ExtractedData holds the raw structured items the engine pulled out of
// the entry text, before typing and confidence filtering.
type ExtractedData struct {
	Mood           string           `json:"mood"`
	MoodConfidence float64          `json:"moodConfidence,omitempty"`
	Todos          []ExtractedTodo  `json:"todos"`
	Media          []ExtractedMedia `json:"media"`
	Habits         []ExtractedHabit `json:"habits"`
}

type ExtractedTodo struct {
	Title      string  `json:"title"`
	DueDate    string  `json:"dueDate,omitempty"`
	Priority   string  `json:"priority,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

type ExtractedMedia struct {
	Title      string  `json:"title"`
	Type       string  `json:"type,omitempty"`
	Status     string  `json:"status,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

type ExtractedHabit struct {
	Name       string  `json:"name"`
	Frequency  string  `json:"frequency,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// ExtractedCandidate is one typed, confidence-scored proposal. Exactly one
// payload pointer matching Kind is set. Candidates are never mutated after
// creation, only filtered or persisted.
type ExtractedCandidate struct {
	Kind       CandidateKind   `json:"kind"`
	Confidence float64         `json:"confidence"`
	Todo       *TodoCandidate  `json:"todo,omitempty"`
	Mood       *MoodCandidate  `json:"mood,omitempty"`
	Habit      *HabitCandidate `json:"habit,omitempty"`
	Media      *MediaCandidate `json:"media,omitempty"`
}

type TodoCandidate struct {
	Title    string `json:"title"`
	DueDate  string `json:"dueDate,omitempty"`
	Priority string `json:"priority,omitempty"`
}

type MoodCandidate struct {
	Mood string `json:"mood"`
}

type HabitCandidate struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency,omitempty"`
}

type MediaCandidate struct {
	Title  string `json:"title"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
}

// CreatedRecord identifies one record created from a confirmed candidate.
type CreatedRecord struct {
	Kind CandidateKind `json:"kind"`
	ID   string        `json:"id"`
}

// PersistResult is returned from POST /journal/actions.
type PersistResult struct {
	Created []CreatedRecord `json:"created"`
}
