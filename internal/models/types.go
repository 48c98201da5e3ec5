package models

// CandidateKind classifies what kind of tracked record an extracted
// candidate would create once confirmed.
type CandidateKind string

const (
	KindTodo  CandidateKind = "todo"
	KindMood  CandidateKind = "mood"
	KindHabit CandidateKind = "habit"
	KindMedia CandidateKind = "media"
)

func (k CandidateKind) IsValid() bool {
	switch k {
	case KindTodo, KindMood, KindHabit, KindMedia:
		return true
	}
	return false
}

// SuggestionTypeReflection enables reflective prompt nudges. It is a valid
// preference entry but never produced as an extraction candidate.
const SuggestionTypeReflection = "reflection"

// ValidSuggestionTypes is the closed set accepted in Preferences.SuggestionTypes.
var ValidSuggestionTypes = map[string]bool{
	string(KindTodo):         true,
	string(KindMood):         true,
	string(KindHabit):        true,
	string(KindMedia):        true,
	SuggestionTypeReflection: true,
}

// PromptStyle selects the voice of generated journal prompts.
type PromptStyle string

const (
	StyleReflective PromptStyle = "reflective"
	StyleAnalytical PromptStyle = "analytical"
	StyleCreative   PromptStyle = "creative"
	StyleGrowth     PromptStyle = "growth"
)

func (s PromptStyle) IsValid() bool {
	switch s {
	case StyleReflective, StyleAnalytical, StyleCreative, StyleGrowth:
		return true
	}
	return false
}

// Sentiment is the engine's coarse read of an entry's tone.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentMixed    Sentiment = "mixed"
)

// MediaStatus tracks where a media item sits in the user's queue.
type MediaStatus string

const (
	MediaPlanned    MediaStatus = "planned"
	MediaInProgress MediaStatus = "in_progress"
	MediaFinished   MediaStatus = "finished"
	MediaAbandoned  MediaStatus = "abandoned"
)

func (s MediaStatus) IsValid() bool {
	switch s {
	case MediaPlanned, MediaInProgress, MediaFinished, MediaAbandoned:
		return true
	}
	return false
}

// TodoPriority is a coarse urgency bucket.
type TodoPriority string

const (
	PriorityLow    TodoPriority = "low"
	PriorityMedium TodoPriority = "medium"
	PriorityHigh   TodoPriority = "high"
)

func (p TodoPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
