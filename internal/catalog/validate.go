package catalog

import (
	"fmt"
	"strings"
)

// validateCatalog performs structural checks on a candidate catalog.
// Duplicate ids and prerequisite cycles are hard errors that reject the
// load; dangling references are returned as diagnostics because the
// store degrades gracefully around them (fail-closed eligibility,
// filtered coverage lookups). All problems of each class are reported
// at once.
func validateCatalog(objectives []Objective, items []Item) ([]string, error) {
	var errs []string
	var diags []string

	objIDs := make(map[string]bool, len(objectives))
	for _, o := range objectives {
		if objIDs[o.ID] {
			errs = append(errs, fmt.Sprintf("duplicate objective ID: %q", o.ID))
		}
		objIDs[o.ID] = true
	}

	itemIDs := make(map[string]bool, len(items))
	for _, it := range items {
		if itemIDs[it.ID] {
			errs = append(errs, fmt.Sprintf("duplicate content ID: %q", it.ID))
		}
		itemIDs[it.ID] = true
	}

	for _, o := range objectives {
		for _, prereqID := range o.Prerequisites {
			if !objIDs[prereqID] {
				diags = append(diags, fmt.Sprintf(
					"objective %q references nonexistent prerequisite %q (treated as permanently ineligible)",
					o.ID, prereqID))
			}
		}
	}

	for _, it := range items {
		for _, objID := range it.Objectives {
			if !objIDs[objID] {
				diags = append(diags, fmt.Sprintf(
					"content %q covers nonexistent objective %q (unreachable via lookup)",
					it.ID, objID))
			}
		}
	}

	// Cycle check via Kahn's algorithm over the edges whose endpoints
	// both exist. Dangling edges are already diagnosed above and must
	// not mask a genuine cycle among the remaining nodes.
	inDegree := make(map[string]int, len(objectives))
	adjList := make(map[string][]string)
	for _, o := range objectives {
		for _, prereqID := range o.Prerequisites {
			if objIDs[prereqID] {
				inDegree[o.ID]++
				adjList[prereqID] = append(adjList[prereqID], o.ID)
			}
		}
	}

	var queue []string
	for _, o := range objectives {
		if inDegree[o.ID] == 0 {
			queue = append(queue, o.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(objectives) {
		var cycleNodes []string
		for _, o := range objectives {
			if inDegree[o.ID] > 0 {
				cycleNodes = append(cycleNodes, o.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle detected involving objectives: %s",
			strings.Join(cycleNodes, ", ")))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return diags, nil
}
