// Package normalize reshapes stored rows into the grouped and nested
// shapes returned by the API.
//
// Grouping is driven by explicit rule tables. A row is placed in every
// bucket whose rule has a substring contained in the row's category
// (case-sensitive). A row matching no rule is left out of every bucket
// and reported back as unmatched so callers can log the gap.
package normalize

import (
	"math"
	"slices"
	"strings"

	"github.com/deppfellow/portfolio-api/internal/model"
)

// Rule maps a bucket to the substrings that select it.
type Rule struct {
	Bucket     string
	Substrings []string
}

// Rules is an ordered bucket table.
type Rules []Rule

// Match reports every bucket the category falls into.
func (r Rules) Match(category string) []string {
	var buckets []string
	for _, rule := range r {
		for _, sub := range rule.Substrings {
			if strings.Contains(category, sub) {
				buckets = append(buckets, rule.Bucket)
				break
			}
		}
	}
	return buckets
}

// Buckets lists the bucket names in table order.
func (r Rules) Buckets() []string {
	names := make([]string, 0, len(r))
	for _, rule := range r {
		names = append(names, rule.Bucket)
	}
	return names
}

var ContactRules = Rules{
	{Bucket: "social_media", Substrings: []string{model.ContactTypeSocial}},
	{Bucket: "professional", Substrings: []string{model.ContactTypeProfessional}},
	{Bucket: "portfolio", Substrings: []string{model.ContactTypePortfolio}},
}

var SkillRules = Rules{
	{Bucket: "frontend", Substrings: []string{"Frontend", "Framework"}},
	{Bucket: "backend", Substrings: []string{"Backend", "Runtime", "Language"}},
	{Bucket: "database", Substrings: []string{"Database"}},
	{Bucket: "devops", Substrings: []string{"Cloud", "Container"}},
}

var TechnologyRules = Rules{
	{Bucket: "tools", Substrings: []string{"Editor", "Tool"}},
	{Bucket: "libraries", Substrings: []string{"Framework", "Library"}},
	{Bucket: "testing", Substrings: []string{"Testing"}},
	{Bucket: "version_control", Substrings: []string{"Version", "Code Hosting"}},
	{Bucket: "deployment", Substrings: []string{"Hosting", "Platform"}},
}

// Partition splits items into the buckets of rules, keeping input order
// inside each bucket. Every bucket of the table is present in the result,
// empty or not.
func Partition[T any](items []T, rules Rules, category func(T) string) (map[string][]T, []T) {
	buckets := make(map[string][]T, len(rules))
	for _, name := range rules.Buckets() {
		buckets[name] = []T{}
	}

	var unmatched []T
	for _, item := range items {
		matched := rules.Match(category(item))
		if len(matched) == 0 {
			unmatched = append(unmatched, item)
			continue
		}
		for _, name := range matched {
			buckets[name] = append(buckets[name], item)
		}
	}
	return buckets, unmatched
}

func GroupContacts(contacts []model.Contact) (model.ContactBuckets, []model.Contact) {
	b, unmatched := Partition(contacts, ContactRules, func(c model.Contact) string { return c.Type })
	return model.ContactBuckets{
		SocialMedia:  b["social_media"],
		Professional: b["professional"],
		Portfolio:    b["portfolio"],
	}, unmatched
}

func GroupSkills(skills []model.Skill) (model.SkillBuckets, []model.Skill) {
	b, unmatched := Partition(skills, SkillRules, func(s model.Skill) string { return s.Category })
	return model.SkillBuckets{
		Frontend: b["frontend"],
		Backend:  b["backend"],
		Database: b["database"],
		DevOps:   b["devops"],
	}, unmatched
}

func GroupTechnologies(techs []model.Technology) (model.TechnologyBuckets, []model.Technology) {
	b, unmatched := Partition(techs, TechnologyRules, func(t model.Technology) string { return t.Category })
	return model.TechnologyBuckets{
		Tools:          b["tools"],
		Libraries:      b["libraries"],
		Testing:        b["testing"],
		VersionControl: b["version_control"],
		Deployment:     b["deployment"],
	}, unmatched
}

// AverageLevel is the rounded mean level of all skills, halves rounding
// up. An empty set averages to 0.
func AverageLevel(skills []model.Skill) int {
	if len(skills) == 0 {
		return 0
	}
	sum := 0
	for _, s := range skills {
		sum += s.Level
	}
	return int(math.Floor(float64(sum)/float64(len(skills)) + 0.5))
}

// TopSkillNames returns the names of the first n skills, which callers
// pass already ordered by level.
func TopSkillNames(skills []model.Skill, n int) []string {
	names := make([]string, 0, min(n, len(skills)))
	for i := 0; i < len(skills) && i < n; i++ {
		names = append(names, skills[i].Name)
	}
	return names
}

// List turns a missing list column into an empty list.
func List(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func Skill(s model.Skill) model.Skill {
	s.Certifications = List(s.Certifications)
	return s
}

func Experience(e model.Experience) model.Experience {
	e.Responsibilities = List(e.Responsibilities)
	e.Technologies = List(e.Technologies)
	e.Achievements = List(e.Achievements)
	return e
}

func Portfolio(p model.Portfolio) model.Portfolio {
	p.Technologies = List(p.Technologies)
	p.Features = List(p.Features)
	return p
}

// Gallery orders rows by sort_order and projects them to {url, caption}.
func Gallery(rows []model.GalleryRow) []model.GalleryImage {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b model.GalleryRow) int { return a.SortOrder - b.SortOrder })

	images := make([]model.GalleryImage, 0, len(sorted))
	for _, r := range sorted {
		images = append(images, model.GalleryImage{URL: r.ImageURL, Caption: r.ImageCaption})
	}
	return images
}

// PortfolioDetail attaches the gallery to a portfolio.
func PortfolioDetail(p model.Portfolio, rows []model.GalleryRow) model.PortfolioDetail {
	return model.PortfolioDetail{
		Portfolio:     Portfolio(p),
		GalleryImages: Gallery(rows),
	}
}

// Each applies fn to every element, always returning a non-nil slice.
func Each[T any](items []T, fn func(T) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
