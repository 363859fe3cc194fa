package discovery

import (
	"cuisto-web/domain"
)

// SectionOrder is the fixed display order of the discovery sections.
var SectionOrder = []domain.SectionType{
	domain.SectionTrending,
	domain.SectionSocials,
	domain.SectionOnline,
	domain.SectionRated,
}

// Compose keeps the sections holding at least minItems recipes, in
// SectionOrder. Smaller sections are dropped whole, never padded.
func Compose(results domain.DiscoveryResults, minItems int) domain.DiscoverySections {
	sections := make([]domain.DiscoverySection, 0, len(SectionOrder))
	for _, t := range SectionOrder {
		var recipes any
		var count int
		switch t {
		case domain.SectionTrending:
			recipes, count = results.Trending, len(results.Trending)
		case domain.SectionSocials:
			recipes, count = results.Socials, len(results.Socials)
		case domain.SectionOnline:
			recipes, count = results.Online, len(results.Online)
		case domain.SectionRated:
			recipes, count = results.Rated, len(results.Rated)
		}
		if count < minItems {
			continue
		}
		sections = append(sections, domain.DiscoverySection{
			Type:    t,
			Count:   count,
			Recipes: recipes,
		})
	}

	return domain.DiscoverySections{
		Sections:   sections,
		HasContent: len(sections) > 0,
	}
}

// HiddenSections lists the section types missing from a composition.
func HiddenSections(composed domain.DiscoverySections) []domain.SectionType {
	shown := make(map[domain.SectionType]bool, len(composed.Sections))
	for _, s := range composed.Sections {
		shown[s.Type] = true
	}
	hidden := make([]domain.SectionType, 0)
	for _, t := range SectionOrder {
		if !shown[t] {
			hidden = append(hidden, t)
		}
	}
	return hidden
}
