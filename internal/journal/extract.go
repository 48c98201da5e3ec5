// Package journal owns the orchestration core: turning engine output into
// confirmable candidates, fusing cross-domain context, generating prompts,
// and persisting what the user confirms.
package journal

import "github.com/evharlow/lumen/internal/models"

// ExtractCandidates converts a raw analysis result into typed candidates.
// Output order is fixed (todos, then mood, then habits, then media) and
// preserves the engine's ordering within each group. A missing confidence
// stays 0 so any positive threshold filters it out.
func ExtractCandidates(res *models.AnalysisResult) []models.ExtractedCandidate {
	if res == nil {
		return nil
	}

	var out []models.ExtractedCandidate

	for _, td := range res.Extracted.Todos {
		if td.Title == "" {
			continue
		}
		out = append(out, models.ExtractedCandidate{
			Kind:       models.KindTodo,
			Confidence: td.Confidence,
			Todo: &models.TodoCandidate{
				Title:    td.Title,
				DueDate:  td.DueDate,
				Priority: td.Priority,
			},
		})
	}

	if res.Extracted.Mood != "" {
		out = append(out, models.ExtractedCandidate{
			Kind:       models.KindMood,
			Confidence: res.Extracted.MoodConfidence,
			Mood:       &models.MoodCandidate{Mood: res.Extracted.Mood},
		})
	}

	for _, h := range res.Extracted.Habits {
		if h.Name == "" {
			continue
		}
		out = append(out, models.ExtractedCandidate{
			Kind:       models.KindHabit,
			Confidence: h.Confidence,
			Habit: &models.HabitCandidate{
				Name:      h.Name,
				Frequency: h.Frequency,
			},
		})
	}

	for _, m := range res.Extracted.Media {
		if m.Title == "" {
			continue
		}
		out = append(out, models.ExtractedCandidate{
			Kind:       models.KindMedia,
			Confidence: m.Confidence,
			Media: &models.MediaCandidate{
				Title:  m.Title,
				Type:   m.Type,
				Status: m.Status,
			},
		})
	}

	return out
}

// FilterCandidates applies the user's confidence policy. A candidate
// survives only when its confidence meets the threshold AND its kind is an
// enabled suggestion type. Surviving candidates keep their original order.
func FilterCandidates(candidates []models.ExtractedCandidate, prefs *models.Preferences) []models.ExtractedCandidate {
	out := make([]models.ExtractedCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Confidence < prefs.ConfidenceThreshold {
			continue
		}
		if !prefs.Allows(string(c.Kind)) {
			continue
		}
		out = append(out, c)
	}
	return out
}
