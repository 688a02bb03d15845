package badges

import "time"

// BadgeType identifies the category of achievement.
type BadgeType string

const (
	BadgeFirstSteps BadgeType = "first-steps" // first objective completed
	BadgeMilestone  BadgeType = "milestone"   // completion-count thresholds
	BadgeSubject    BadgeType = "subject"     // every objective in a subject
	BadgeExplorer   BadgeType = "explorer"    // first preference captured
)

// AllBadgeTypes returns all badge types in display order.
func AllBadgeTypes() []BadgeType {
	return []BadgeType{BadgeFirstSteps, BadgeMilestone, BadgeSubject, BadgeExplorer}
}

// DisplayName returns a human-readable label for the badge type.
func (t BadgeType) DisplayName() string {
	switch t {
	case BadgeFirstSteps:
		return "First Steps"
	case BadgeMilestone:
		return "Milestone"
	case BadgeSubject:
		return "Subject Champion"
	case BadgeExplorer:
		return "Explorer"
	default:
		return string(t)
	}
}

// Badge is a single awarded achievement.
type Badge struct {
	Type      BadgeType
	LearnerID string
	Subject   string // set for subject badges
	Reason    string
	AwardedAt time.Time
}
