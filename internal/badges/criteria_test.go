package badges

import "testing"

func TestMilestoneFor(t *testing.T) {
	tests := []struct {
		count int
		want  int
		hit   bool
	}{
		{0, 0, false},
		{1, 0, false},
		{4, 0, false},
		{5, 5, true},
		{6, 0, false},
		{10, 10, true},
		{25, 25, true},
		{50, 50, true},
		{100, 100, true},
		{101, 0, false},
	}
	for _, tt := range tests {
		got, hit := milestoneFor(tt.count)
		if hit != tt.hit || (hit && got != tt.want) {
			t.Errorf("milestoneFor(%d) = (%d, %v), want (%d, %v)", tt.count, got, hit, tt.want, tt.hit)
		}
	}
}
