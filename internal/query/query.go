// Package query computes the derived article views the end user sees.
// Every function is pure with respect to its inputs: it works on a snapshot
// of the collection and recomputes from scratch on each call.
package query

import (
	"sort"
	"strings"

	"knowledgebase/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// All is the sentinel that disables the topic or tag filter.
const All = "All"

const (
	SortDateDesc  = "date-desc"
	SortDateAsc   = "date-asc"
	SortTitleAsc  = "title-asc"
	SortTitleDesc = "title-desc"
	SortViewsDesc = "views-desc"
	SortViewsAsc  = "views-asc"
)

// Options is the filter/sort state of the end-user list.
type Options struct {
	Search string
	Topic  string
	Tag    string
	SortBy string
}

// Published restricts a collection to published articles. Drafts never
// appear in any end-user view.
func Published(articles []models.Article) []models.Article {
	published := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.IsPublished {
			published = append(published, a)
		}
	}
	return published
}

// Filter applies the fixed pipeline: published only, case-insensitive
// substring search over title and content, exact topic match, tag
// membership, then a stable sort by the selected key.
func Filter(articles []models.Article, opts Options) []models.Article {
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	filtered := make([]models.Article, 0, len(articles))
	for _, a := range Published(articles) {
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(a.Content), search) {
			continue
		}
		if opts.Topic != "" && opts.Topic != All && a.Topic != opts.Topic {
			continue
		}
		if opts.Tag != "" && opts.Tag != All && !hasTag(a, opts.Tag) {
			continue
		}
		filtered = append(filtered, a)
	}

	sortArticles(filtered, opts.SortBy)
	return filtered
}

// Trending returns the top n published articles by view count, ignoring
// whatever filters are active on the main list.
func Trending(articles []models.Article, n int) []models.Article {
	trending := Published(articles)
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].ViewCount > trending[j].ViewCount
	})
	if len(trending) > n {
		trending = trending[:n]
	}
	return trending
}

// Topics lists the distinct topics across published articles in first-seen
// order, prefixed with the All sentinel.
func Topics(articles []models.Article) []string {
	topics := []string{All}
	seen := make(map[string]bool)
	for _, a := range Published(articles) {
		if !seen[a.Topic] {
			seen[a.Topic] = true
			topics = append(topics, a.Topic)
		}
	}
	return topics
}

// Tags lists the distinct individual tags across published articles in
// first-seen order, prefixed with the All sentinel.
func Tags(articles []models.Article) []string {
	tags := []string{All}
	seen := make(map[string]bool)
	for _, a := range Published(articles) {
		for _, tag := range a.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

func hasTag(a models.Article, tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func sortArticles(articles []models.Article, sortBy string) {
	switch sortBy {
	case SortDateAsc:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].CreatedAt.Before(articles[j].CreatedAt)
		})
	case SortTitleAsc:
		c := collate.New(language.English)
		sort.SliceStable(articles, func(i, j int) bool {
			return c.CompareString(articles[i].Title, articles[j].Title) < 0
		})
	case SortTitleDesc:
		c := collate.New(language.English)
		sort.SliceStable(articles, func(i, j int) bool {
			return c.CompareString(articles[i].Title, articles[j].Title) > 0
		})
	case SortViewsDesc:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].ViewCount > articles[j].ViewCount
		})
	case SortViewsAsc:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].ViewCount < articles[j].ViewCount
		})
	case SortDateDesc:
		fallthrough
	default:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].CreatedAt.After(articles[j].CreatedAt)
		})
	}
}
