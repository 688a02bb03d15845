package catalog

import (
	"slices"
	"sort"
	"sync"
)

// Store is the loaded curriculum catalog with precomputed indices.
// Reads are safe for concurrent use; Extend takes the write lock.
type Store struct {
	mu sync.RWMutex

	objectives []Objective
	items      []Item

	objByID  map[string]*Objective
	itemByID map[string]*Item

	// coverage maps an objective id to the ids of items that declare it,
	// in catalog load order.
	coverage   map[string][]string
	dependents map[string][]string
	bySubject  map[string][]Objective
	byYear     map[int][]Objective
	roots      []Objective
	topoOrder  []Objective
	topoIndex  map[string]int

	diagnostics []string
}

// Load builds a Store from objective and content slices.
// Duplicate ids and prerequisite cycles are load-time errors; dangling
// prerequisite or coverage references are collected as diagnostics and
// the affected lookups fail closed at query time.
func Load(objectives []Objective, items []Item) (*Store, error) {
	s := &Store{}
	if err := s.rebuild(slices.Clone(objectives), slices.Clone(items)); err != nil {
		return nil, err
	}
	return s, nil
}

// Extend merges an additional slice into the catalog, allowing multiple
// subject catalogs to be combined into one session. Any id collision with
// the existing catalog (or within the new slice) rejects the whole merge;
// the store is left unchanged on error.
func (s *Store) Extend(objectives []Objective, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make([]Objective, 0, len(s.objectives)+len(objectives))
	merged = append(merged, s.objectives...)
	merged = append(merged, objectives...)

	mergedItems := make([]Item, 0, len(s.items)+len(items))
	mergedItems = append(mergedItems, s.items...)
	mergedItems = append(mergedItems, items...)

	return s.rebuild(merged, mergedItems)
}

// rebuild validates and reindexes the full catalog. Caller holds the write
// lock (or owns the store exclusively during Load).
func (s *Store) rebuild(objectives []Objective, items []Item) error {
	diags, err := validateCatalog(objectives, items)
	if err != nil {
		return err
	}

	objByID := make(map[string]*Objective, len(objectives))
	for i := range objectives {
		objByID[objectives[i].ID] = &objectives[i]
	}

	itemByID := make(map[string]*Item, len(items))
	coverage := make(map[string][]string)
	for i := range items {
		itemByID[items[i].ID] = &items[i]
		for _, objID := range items[i].Objectives {
			coverage[objID] = append(coverage[objID], items[i].ID)
		}
	}

	dependents := make(map[string][]string)
	for i := range objectives {
		for _, prereqID := range objectives[i].Prerequisites {
			dependents[prereqID] = append(dependents[prereqID], objectives[i].ID)
		}
	}

	// Topological order via Kahn's algorithm. A dangling prerequisite
	// counts as unsatisfiable, so its objective never enters the order;
	// that matches the fail-closed eligibility semantics.
	inDegree := make(map[string]int, len(objectives))
	for i := range objectives {
		inDegree[objectives[i].ID] = len(objectives[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	var topoOrder []Objective
	topoIndex := make(map[string]int, len(objectives))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		topoIndex[id] = len(topoOrder)
		topoOrder = append(topoOrder, *objByID[id])

		deps := slices.Clone(dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	var roots []Objective
	for i := range objectives {
		if len(objectives[i].Prerequisites) == 0 {
			roots = append(roots, objectives[i])
		}
	}

	bySubject := make(map[string][]Objective)
	byYear := make(map[int][]Objective)
	for i := range objectives {
		o := objectives[i]
		bySubject[o.Subject] = append(bySubject[o.Subject], o)
		byYear[o.YearGroup] = append(byYear[o.YearGroup], o)
	}
	for subject, objs := range bySubject {
		sortByYearThenTopo(objs, topoIndex)
		bySubject[subject] = objs
	}
	for year, objs := range byYear {
		sortBySubjectThenTopo(objs, topoIndex)
		byYear[year] = objs
	}

	s.objectives = objectives
	s.items = items
	s.objByID = objByID
	s.itemByID = itemByID
	s.coverage = coverage
	s.dependents = dependents
	s.bySubject = bySubject
	s.byYear = byYear
	s.roots = roots
	s.topoOrder = topoOrder
	s.topoIndex = topoIndex
	s.diagnostics = diags
	return nil
}

func sortByYearThenTopo(objs []Objective, topoIndex map[string]int) {
	sort.SliceStable(objs, func(i, j int) bool {
		if objs[i].YearGroup != objs[j].YearGroup {
			return objs[i].YearGroup < objs[j].YearGroup
		}
		return topoIndex[objs[i].ID] < topoIndex[objs[j].ID]
	})
}

func sortBySubjectThenTopo(objs []Objective, topoIndex map[string]int) {
	sort.SliceStable(objs, func(i, j int) bool {
		if objs[i].Subject != objs[j].Subject {
			return objs[i].Subject < objs[j].Subject
		}
		return topoIndex[objs[i].ID] < topoIndex[objs[j].ID]
	})
}

// Objective returns the objective with the given id.
func (s *Store) Objective(id string) (Objective, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objByID[id]
	if !ok {
		return Objective{}, false
	}
	return *o, true
}

// Content returns the content item with the given id.
func (s *Store) Content(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.itemByID[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// ContentForObjective returns every item that declares coverage of the
// objective and still exists in the content index, in catalog load order.
// Repeated calls without an intervening Extend return identical results.
func (s *Store) ContentForObjective(id string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.coverage[id]
	result := make([]Item, 0, len(ids))
	for _, itemID := range ids {
		if it, ok := s.itemByID[itemID]; ok {
			result = append(result, *it)
		}
	}
	return result
}

// AllObjectives returns every objective in catalog load order.
func (s *Store) AllObjectives() []Objective {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.objectives)
}

// AllContent returns every content item in catalog load order.
func (s *Store) AllContent() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// BySubject returns the objectives for a subject, ordered by year group
// then topological position.
func (s *Store) BySubject(subject string) []Objective {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bySubject[subject])
}

// ByYearGroup returns the objectives for a year group, ordered by subject
// then topological position.
func (s *Store) ByYearGroup(year int) []Objective {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.byYear[year])
}

// RootObjectives returns all objectives with no prerequisites.
func (s *Store) RootObjectives() []Objective {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.roots)
}

// Prerequisites returns the direct prerequisite objectives for id.
// Dangling references are skipped.
func (s *Store) Prerequisites(id string) []Objective {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.objByID[id]
	if !ok {
		return nil
	}
	result := make([]Objective, 0, len(o.Prerequisites))
	for _, prereqID := range o.Prerequisites {
		if p, ok := s.objByID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns the objectives that directly require id.
func (s *Store) Dependents(id string) []Objective {
	s.mu.RLock()
	defer s.mu.RUnlock()

	depIDs := s.dependents[id]
	result := make([]Objective, 0, len(depIDs))
	for _, depID := range depIDs {
		if o, ok := s.objByID[depID]; ok {
			result = append(result, *o)
		}
	}
	return result
}

// TopologicalOrder returns all reachable objectives in a valid
// topological order.
func (s *Store) TopologicalOrder() []Objective {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.topoOrder)
}

// Diagnostics returns the non-fatal problems recorded during the most
// recent Load or Extend (dangling references and the like).
func (s *Store) Diagnostics() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.diagnostics)
}

// Counts returns the number of objectives and content items loaded.
func (s *Store) Counts() (objectives, items int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objectives), len(s.items)
}

// Stats summarizes the catalog for display.
type Stats struct {
	Objectives int
	Items      int
	Subjects   []string
	Roots      int
	ByType     map[ContentType]int
}

// Summarize computes catalog statistics.
func (s *Store) Summarize() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Objectives: len(s.objectives),
		Items:      len(s.items),
		Roots:      len(s.roots),
		ByType:     make(map[ContentType]int),
	}
	for subject := range s.bySubject {
		st.Subjects = append(st.Subjects, subject)
	}
	sort.Strings(st.Subjects)
	for i := range s.items {
		st.ByType[s.items[i].Type]++
	}
	return st
}
