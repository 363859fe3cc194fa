package discovery

import (
	"cuisto-web/domain"
	"cuisto-web/entities"
	"github.com/google/uuid"
	"sort"
)

type extractionGroup struct {
	recipe *entities.Recipe
	count  int
	users  map[uuid.UUID]struct{}
}

// stats reports the distinct extracting users. Jobs without a user id
// cannot be told apart, so a group with no known user falls back to the
// extraction count.
func (g extractionGroup) stats() domain.ExtractionStats {
	unique := len(g.users)
	if unique == 0 {
		unique = g.count
	}
	return domain.ExtractionStats{
		ExtractionCount:  g.count,
		UniqueExtractors: unique,
	}
}

// groupExtractions counts completed jobs per listable recipe and returns
// the top limit groups by count, ties ordered by recipe id.
func groupExtractions(jobs []*entities.ExtractionJob, sourceTypes []string, limit int) []extractionGroup {
	allowed := make(map[string]struct{}, len(sourceTypes))
	for _, t := range sourceTypes {
		allowed[t] = struct{}{}
	}

	groups := make(map[uuid.UUID]*extractionGroup)
	for _, job := range jobs {
		if job == nil || job.RecipeID == nil || !listable(job.Recipe) {
			continue
		}
		if job.Status != entities.ExtractionStatusCompleted {
			continue
		}
		if _, ok := allowed[job.SourceType]; !ok {
			continue
		}

		g, ok := groups[*job.RecipeID]
		if !ok {
			g = &extractionGroup{recipe: job.Recipe, users: make(map[uuid.UUID]struct{})}
			groups[*job.RecipeID] = g
		}
		g.count++
		if job.UserID != nil {
			g.users[*job.UserID] = struct{}{}
		}
	}

	sorted := make([]extractionGroup, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, *g)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].recipe.ID.String() < sorted[j].recipe.ID.String()
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
