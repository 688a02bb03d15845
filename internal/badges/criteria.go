package badges

// milestoneThresholds are the completion counts that earn a milestone
// badge. The first-completion badge is its own type.
var milestoneThresholds = []int{5, 10, 25, 50, 100}

// milestoneFor returns whether completing the Nth objective crosses a
// milestone threshold.
func milestoneFor(completedCount int) (int, bool) {
	for _, t := range milestoneThresholds {
		if completedCount == t {
			return t, true
		}
	}
	return 0, false
}
