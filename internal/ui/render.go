package ui

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathweaver/internal/badges"
	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/notes"
	"github.com/abhisek/pathweaver/internal/pathway"
	"github.com/abhisek/pathweaver/internal/ui/theme"
)

// RenderPathway formats a generated pathway for terminal display.
func RenderPathway(p *pathway.Pathway) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Your Learning Pathway"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("pathway %s · %d objectives · %d activities",
		p.ID, len(p.Steps), p.ActivityCount())))
	b.WriteString("\n\n")

	for i, step := range p.Steps {
		obj := step.Objective
		b.WriteString(theme.Objective.Render(fmt.Sprintf("%d. %s", i+1, obj.Description)))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("   %s · %s · year %d", obj.ID, obj.Subject, obj.YearGroup)))
		b.WriteString("\n")

		if len(step.Content) == 0 {
			b.WriteString(theme.Hint.Render("   (no content available for this objective yet)"))
			b.WriteString("\n")
		}
		for _, item := range step.Content {
			line := fmt.Sprintf("   • %s %s %s",
				theme.Activity.Render(item.Title),
				theme.ActivityType.Render("["+string(item.Type)+"]"),
				theme.Difficulty.Render("("+item.Difficulty+")"))
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(p.Diagnostics) > 0 {
		b.WriteString(theme.Hint.Render("Notes:"))
		b.WriteString("\n")
		for _, d := range p.Diagnostics {
			b.WriteString(theme.Hint.Render("  - " + d))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderEmptyPathway explains why no pathway could be generated.
func RenderEmptyPathway(p *pathway.Pathway) string {
	var b strings.Builder
	b.WriteString(theme.Warn.Render("No eligible objectives right now."))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("Either everything eligible is already completed, or prerequisites are still open."))
	b.WriteString("\n")
	for _, d := range p.Diagnostics {
		b.WriteString(theme.Hint.Render("  - " + d))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStats formats catalog statistics.
func RenderStats(st catalog.Stats) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Catalog"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Objectives: %d (%d roots)", st.Objectives, st.Roots)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Content items: %d", st.Items)))
	b.WriteString("\n")
	if len(st.Subjects) > 0 {
		b.WriteString(theme.Body.Render("Subjects: " + strings.Join(st.Subjects, ", ")))
		b.WriteString("\n")
	}
	for _, ct := range catalog.AllContentTypes() {
		if n, ok := st.ByType[ct]; ok && n > 0 {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  %s: %d", ct, n)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderBadges formats a learner's earned badges.
func RenderBadges(earned []badges.Badge) string {
	if len(earned) == 0 {
		return theme.Hint.Render("No badges earned yet. Complete an objective to get started!") + "\n"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Badges"))
	b.WriteString("\n")
	for _, badge := range earned {
		b.WriteString(theme.BadgeStyle.Render("★ " + badge.Type.DisplayName()))
		if badge.Reason != "" {
			b.WriteString(theme.Hint.Render("  " + badge.Reason))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStudyNote formats an LLM-generated study note.
func RenderStudyNote(note *notes.StudyNote) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(note.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(note.Overview))
	b.WriteString("\n\n")
	for _, f := range note.Focus {
		b.WriteString(theme.Objective.Render("• " + f.Headline))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("  " + f.WhyItHelps))
		b.WriteString("\n")
	}
	if note.Tip != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Tip: " + note.Tip))
		b.WriteString("\n")
	}
	return b.String()
}
