package notes

import (
	"fmt"
	"sort"
	"strings"
)

const noteSystemPrompt = `You are a supportive learning coach. A learner has just been given a personalized study pathway and needs a short, encouraging orientation note that explains what the pathway covers and how to approach it.`

func buildNoteUserMessage(input NoteInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Objectives completed so far: %d\n", input.Completed))

	if len(input.Preferences) > 0 {
		b.WriteString("Learner preferences:\n")
		cats := make([]string, 0, len(input.Preferences))
		for c := range input.Preferences {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		for _, c := range cats {
			b.WriteString(fmt.Sprintf("- %s: %s\n", c, input.Preferences[c]))
		}
	}

	b.WriteString("\nPathway objectives (in order):\n")
	for i, obj := range input.Objectives {
		b.WriteString(fmt.Sprintf("%d. %s: %s (subject: %s, difficulty: %s)\n",
			i+1, obj.ID, obj.Description, obj.Subject, obj.Difficulty))
	}

	b.WriteString("\nActivities per objective:\n")
	for _, step := range input.Pathway.Steps {
		if len(step.Content) == 0 {
			b.WriteString(fmt.Sprintf("- %s: no activities available yet\n", step.Objective.ID))
			continue
		}
		titles := make([]string, len(step.Content))
		for i, item := range step.Content {
			titles[i] = fmt.Sprintf("%s (%s)", item.Title, item.Type)
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", step.Objective.ID, strings.Join(titles, ", ")))
	}

	b.WriteString(`
Instructions:
Write a study note that:
1. Opens with a 2-4 sentence overview of what this pathway covers and how it connects to what the learner has already completed.
2. Gives one focus entry per objective, in pathway order, with a short headline and one sentence on why it helps.
3. Ends with one practical study tip tailored to the learner's stated preferences (or a general tip if none are set).
4. Uses plain, encouraging language. No jargon, no markdown formatting.`)

	return b.String()
}
