package query

import (
	"testing"
	"time"

	"knowledgebase/internal/models"

	"github.com/stretchr/testify/assert"
)

func article(id, title, content, topic string, tags []string, created time.Time, published bool, views int) models.Article {
	return models.Article{
		ID:          id,
		Title:       title,
		Content:     content,
		Topic:       topic,
		Tags:        tags,
		CreatedAt:   created,
		UpdatedAt:   created,
		IsPublished: published,
		ViewCount:   views,
	}
}

func day(d int) time.Time {
	return time.Date(2023, 9, d, 12, 0, 0, 0, time.UTC)
}

func fixture() []models.Article {
	return []models.Article{
		article("1", "Quarterly Sales Plan", "Enterprise targets for the quarter.", "Sales", []string{"goals", "q3"}, day(1), true, 152),
		article("2", "Onboarding Remote Employees", "IT setup and mentorship.", "HR Policies", []string{"onboarding", "hr"}, day(2), true, 210),
		article("3", "API Troubleshooting", "Verify the API key for 401 errors.", "Technical Support", []string{"api", "errors"}, day(3), true, 345),
		article("4", "Retrospective (Draft)", "Internal discussion only.", "Project Management", []string{"retrospective"}, day(4), false, 900),
		article("5", "Expense Reporting Guide", "Submitting expenses in ExpenseFlow.", "HR Policies", []string{"expenses", "guide"}, day(5), true, 480),
	}
}

func ids(articles []models.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterExcludesDrafts(t *testing.T) {
	// The draft has the highest view count and must still never surface
	got := Filter(fixture(), Options{SortBy: SortViewsDesc})
	assert.Equal(t, []string{"5", "3", "2", "1"}, ids(got))
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(fixture(), Options{Search: "SALES"})
	assert.Equal(t, []string{"1"}, ids(got))

	got = Filter(fixture(), Options{Search: "marketing"})
	assert.Empty(t, got)
}

func TestFilterSearchMatchesContent(t *testing.T) {
	got := Filter(fixture(), Options{Search: "api key"})
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestFilterByTopicAndTag(t *testing.T) {
	got := Filter(fixture(), Options{Topic: "HR Policies"})
	assert.Equal(t, []string{"5", "2"}, ids(got))

	got = Filter(fixture(), Options{Tag: "guide"})
	assert.Equal(t, []string{"5"}, ids(got))

	// The sentinel disables both filters
	got = Filter(fixture(), Options{Topic: All, Tag: All})
	assert.Len(t, got, 4)
}

func TestFilterSortKeys(t *testing.T) {
	tests := []struct {
		sortBy string
		want   []string
	}{
		{SortDateDesc, []string{"5", "3", "2", "1"}},
		{SortDateAsc, []string{"1", "2", "3", "5"}},
		{SortTitleAsc, []string{"3", "5", "2", "1"}},
		{SortTitleDesc, []string{"1", "2", "5", "3"}},
		{SortViewsDesc, []string{"5", "3", "2", "1"}},
		{SortViewsAsc, []string{"1", "2", "3", "5"}},
		{"", []string{"5", "3", "2", "1"}}, // default is newest first
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			got := Filter(fixture(), Options{SortBy: tt.sortBy})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterSortIsStableForEqualKeys(t *testing.T) {
	same := day(10)
	articles := []models.Article{
		article("a", "First", "x", "T", nil, same, true, 7),
		article("b", "Second", "x", "T", nil, same, true, 7),
		article("c", "Third", "x", "T", nil, same, true, 7),
	}

	got := Filter(articles, Options{SortBy: SortViewsDesc})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))

	got = Filter(articles, Options{SortBy: SortDateAsc})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestTrendingTopFourByViews(t *testing.T) {
	articles := []models.Article{
		article("1", "A", "x", "T", nil, day(1), true, 480),
		article("2", "B", "x", "T", nil, day(2), true, 345),
		article("3", "C", "x", "T", nil, day(3), true, 210),
		article("4", "D", "x", "T", nil, day(4), true, 152),
		article("5", "E", "x", "T", nil, day(5), true, 15),
	}

	got := Trending(articles, 4)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
}

func TestTrendingIgnoresDrafts(t *testing.T) {
	got := Trending(fixture(), 4)
	assert.Equal(t, []string{"5", "3", "2", "1"}, ids(got))
}

func TestTrendingShortCollection(t *testing.T) {
	got := Trending(fixture()[:2], 4)
	assert.Len(t, got, 2)
}

func TestTopicsAndTagsFacets(t *testing.T) {
	topics := Topics(fixture())
	assert.Equal(t, []string{All, "Sales", "HR Policies", "Technical Support"}, topics)

	tags := Tags(fixture())
	assert.Equal(t, []string{All, "goals", "q3", "onboarding", "hr", "api", "errors", "expenses", "guide"}, tags)
}
