package models

// AnalyzeRequest is the payload for POST /ai/analyze-journal.
type AnalyzeRequest struct {
	Content    string   `json:"content"`
	Mood       string   `json:"mood,omitempty"`
	Energy     string   `json:"energy,omitempty"`
	Activities []string `json:"activities,omitempty"`
}

// AnalyzeResponse pairs the engine's analysis with the filtered candidates
// the user can confirm.
type AnalyzeResponse struct {
	Analysis   *AnalysisResult      `json:"analysis"`
	Candidates []ExtractedCandidate `json:"candidates"`
}

// PromptResponse is returned from POST /ai/journal-prompt.
type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// CreateEntryRequest is the payload for POST /journal.
type CreateEntryRequest struct {
	Content   string `json:"content"`
	Mood      string `json:"mood,omitempty"`
	Energy    string `json:"energy,omitempty"`
	EntryDate int64  `json:"entryDate,omitempty"` // defaults to now
}

// EntryFilter bounds GET /journal listings.
type EntryFilter struct {
	From  int64
	To    int64
	Limit int
}

// ActionsRequest is the payload for POST /journal/actions.
type ActionsRequest struct {
	Candidates []ExtractedCandidate `json:"candidates"`
}

// CreateTodoRequest is the payload for POST /todos.
type CreateTodoRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     string       `json:"dueDate,omitempty"`
	Priority    TodoPriority `json:"priority,omitempty"`
}

// RecordMoodRequest is the payload for POST /moods.
type RecordMoodRequest struct {
	Mood   string `json:"mood"`
	Energy string `json:"energy,omitempty"`
	Note   string `json:"note,omitempty"`
}

// CreateHabitRequest is the payload for POST /habits.
type CreateHabitRequest struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency,omitempty"`
}

// CreateMediaRequest is the payload for POST /media.
type CreateMediaRequest struct {
	Title  string      `json:"title"`
	Type   string      `json:"type,omitempty"`
	Status MediaStatus `json:"status,omitempty"`
}

// UpdateMediaRequest is the payload for PATCH /media/{id}.
type UpdateMediaRequest struct {
	Status MediaStatus `json:"status,omitempty"`
	Rating *int        `json:"rating,omitempty"`
}

// ServiceCheck reports one dependency's health.
type ServiceCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health.
type HealthResponse struct {
	Status     string       `json:"status"`
	DB         ServiceCheck `json:"db"`
	Engine     ServiceCheck `json:"engine"`
	EntryCount int          `json:"entryCount,omitempty"`
}
