package catalog

import (
	"testing"
)

func testObjectives() []Objective {
	return []Objective{
		{ID: "num-1", Description: "Counting to 100", Subject: "maths", YearGroup: 1},
		{ID: "num-2", Description: "Addition within 20", Subject: "maths", YearGroup: 2, Prerequisites: []string{"num-1"}},
		{ID: "num-3", Description: "Multiplication tables", Subject: "maths", YearGroup: 3, Prerequisites: []string{"num-2"}},
		{ID: "lit-1", Description: "Phonics", Subject: "literacy", YearGroup: 1},
		{ID: "lit-2", Description: "Simple sentences", Subject: "literacy", YearGroup: 2, Prerequisites: []string{"lit-1"}},
	}
}

func testItems() []Item {
	return []Item{
		{ID: "vid-count", Title: "Counting song", Type: TypeVideo, Difficulty: "easy", Objectives: []string{"num-1"}},
		{ID: "quiz-count", Title: "Counting quiz", Type: TypeQuiz, Difficulty: "medium", Objectives: []string{"num-1"}},
		{ID: "ws-add", Title: "Addition worksheet", Type: TypeWorksheet, Difficulty: "medium", Objectives: []string{"num-2"}},
		{ID: "game-add", Title: "Addition game", Type: TypeGame, Difficulty: "easy", Objectives: []string{"num-2", "num-3"}},
	}
}

func mustLoad(t *testing.T, objectives []Objective, items []Item) *Store {
	t.Helper()
	s, err := Load(objectives, items)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestLoad_Counts(t *testing.T) {
	s := mustLoad(t, testObjectives(), testItems())
	objs, items := s.Counts()
	if objs != 5 {
		t.Errorf("got %d objectives, want 5", objs)
	}
	if items != 4 {
		t.Errorf("got %d items, want 4", items)
	}
}

func TestObjective_Lookup(t *testing.T) {
	s := mustLoad(t, testObjectives(), testItems())

	o, ok := s.Objective("num-2")
	if !ok {
		t.Fatal("num-2 not found")
	}
	if o.Subject != "maths" || o.YearGroup != 2 {
		t.Errorf("got %+v, want maths year 2", o)
	}

	if _, ok := s.Objective("ghost"); ok {
		t.Error("expected lookup miss for unknown objective")
	}
}

func TestContentForObjective_LoadOrder(t *testing.T) {
	s := mustLoad(t, testObjectives(), testItems())

	items := s.ContentForObjective("num-1")
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != "vid-count" || items[1].ID != "quiz-count" {
		t.Errorf("items out of load order: %q, %q", items[0].ID, items[1].ID)
	}

	if got := s.ContentForObjective("ghost"); len(got) != 0 {
		t.Errorf("unknown objective: got %d items, want 0", len(got))
	}
}

func TestContentForObjective_SharedItem(t *testing.T) {
	s := mustLoad(t, testObjectives(), testItems())

	for _, objID := range []string{"num-2", "num-3"} {
		found := false
		for _, it := range s.ContentForObjective(objID) {
			if it.ID == "game-add" {
				found = true
			}
		}
		if !found {
			t.Errorf("game-add missing from %s coverage", objID)
		}
	}
}

func TestTopologicalOrder_RespectsPrerequisites(t *testing.T) {
	s := mustLoad(t, testObjectives(), testItems())

	order := s.TopologicalOrder()
	if len(order) != 5 {
		t.Fatalf("got %d objectives in order, want 5", len(order))
	}

	pos := make(map[string]int, len(order))
	for i, o := range order {
		pos[o.ID] = i
	}
	for _, o := range testObjectives() {
		for _, prereq := range o.Prerequisites {
			if pos[prereq] > pos[o.ID] {
				t.Errorf("%q (pos %d) ordered before its prerequisite %q (pos %d)",
					o.ID, pos[o.ID], prereq, pos[prereq])
			}
		}
	}
}

func TestRootObjectives(t *testing.T) {
	s := mustLoad(t, testObjectives(), testItems())

	roots := s.RootObjectives()
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	ids := map[string]bool{}
	for _, r := range roots {
		ids[r.ID] = true
	}
	if !ids["num-1"] || !ids["lit-1"] {
		t.Errorf("unexpected roots: %v", ids)
	}
}

func TestBySubject_SortedByYear(t *testing.T) {
	s := mustLoad(t, testObjectives(), testItems())

	maths := s.BySubject("maths")
	if len(maths) != 3 {
		t.Fatalf("got %d maths objectives, want 3", len(maths))
	}
	for i := 1; i < len(maths); i++ {
		if maths[i].YearGroup < maths[i-1].YearGroup {
			t.Errorf("maths[%d] year %d before maths[%d] year %d",
				i, maths[i].YearGroup, i-1, maths[i-1].YearGroup)
		}
	}

	if got := s.BySubject("science"); len(got) != 0 {
		t.Errorf("unknown subject: got %d objectives, want 0", len(got))
	}
}

func TestPrerequisitesAndDependents(t *testing.T) {
	s := mustLoad(t, testObjectives(), testItems())

	prereqs := s.Prerequisites("num-3")
	if len(prereqs) != 1 || prereqs[0].ID != "num-2" {
		t.Errorf("Prerequisites(num-3) = %v, want [num-2]", prereqs)
	}

	deps := s.Dependents("num-1")
	if len(deps) != 1 || deps[0].ID != "num-2" {
		t.Errorf("Dependents(num-1) = %v, want [num-2]", deps)
	}
}

func TestLoad_DanglingReferencesAreDiagnostics(t *testing.T) {
	objectives := []Objective{
		{ID: "a", Description: "A", Subject: "maths", YearGroup: 1},
		{ID: "b", Description: "B", Subject: "maths", YearGroup: 1, Prerequisites: []string{"ghost"}},
	}
	items := []Item{
		{ID: "i1", Title: "One", Type: TypeVideo, Objectives: []string{"missing-obj"}},
	}

	s, err := Load(objectives, items)
	if err != nil {
		t.Fatalf("dangling references must not fail the load: %v", err)
	}

	diags := s.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(diags), diags)
	}
}

func TestLoad_DuplicateObjectiveID(t *testing.T) {
	objectives := []Objective{
		{ID: "a", Description: "A", Subject: "maths", YearGroup: 1},
		{ID: "a", Description: "A again", Subject: "maths", YearGroup: 2},
	}
	if _, err := Load(objectives, nil); err == nil {
		t.Fatal("expected error for duplicate objective ID")
	}
}

func TestLoad_PrerequisiteCycle(t *testing.T) {
	objectives := []Objective{
		{ID: "a", Description: "A", Subject: "maths", YearGroup: 1, Prerequisites: []string{"b"}},
		{ID: "b", Description: "B", Subject: "maths", YearGroup: 1, Prerequisites: []string{"a"}},
	}
	if _, err := Load(objectives, nil); err == nil {
		t.Fatal("expected error for prerequisite cycle")
	}
}

func TestExtend_MergesSlices(t *testing.T) {
	s := mustLoad(t, testObjectives(), testItems())

	err := s.Extend(
		[]Objective{{ID: "sci-1", Description: "Plants", Subject: "science", YearGroup: 2}},
		[]Item{{ID: "vid-plants", Title: "Plant video", Type: TypeVideo, Objectives: []string{"sci-1"}}},
	)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}

	objs, items := s.Counts()
	if objs != 6 || items != 5 {
		t.Errorf("got %d objectives %d items, want 6 and 5", objs, items)
	}
	if _, ok := s.Objective("sci-1"); !ok {
		t.Error("sci-1 missing after Extend")
	}
	if got := s.ContentForObjective("sci-1"); len(got) != 1 {
		t.Errorf("sci-1 coverage: got %d items, want 1", len(got))
	}
}

func TestExtend_CollisionRejectsWholeMerge(t *testing.T) {
	s := mustLoad(t, testObjectives(), testItems())

	err := s.Extend(
		[]Objective{
			{ID: "sci-1", Description: "Plants", Subject: "science", YearGroup: 2},
			{ID: "num-1", Description: "Colliding", Subject: "science", YearGroup: 2},
		},
		nil,
	)
	if err == nil {
		t.Fatal("expected collision error")
	}

	// Nothing from the rejected slice may be visible.
	objs, items := s.Counts()
	if objs != 5 || items != 4 {
		t.Errorf("store changed after rejected merge: %d objectives, %d items", objs, items)
	}
	if _, ok := s.Objective("sci-1"); ok {
		t.Error("sci-1 visible after rejected merge")
	}
}

func TestSummarize(t *testing.T) {
	s := mustLoad(t, testObjectives(), testItems())

	st := s.Summarize()
	if st.Objectives != 5 || st.Items != 4 || st.Roots != 2 {
		t.Errorf("got %+v", st)
	}
	if len(st.Subjects) != 2 || st.Subjects[0] != "literacy" || st.Subjects[1] != "maths" {
		t.Errorf("subjects = %v, want [literacy maths]", st.Subjects)
	}
	if st.ByType[TypeVideo] != 1 || st.ByType[TypeQuiz] != 1 {
		t.Errorf("type counts = %v", st.ByType)
	}
}
