package repository

import (
	"errors"
	"sync"
	"time"

	"knowledgebase/internal/models"

	"github.com/google/uuid"
)

// ErrArticleNotFound is returned by every mutation or lookup that targets
// an id not present in the collection.
var ErrArticleNotFound = errors.New("article not found")

type ArticleRepository interface {
	Create(article *models.Article) error
	FindAll() ([]models.Article, error)
	FindByID(id string) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id string) error
	IncrementViewCount(id string) error
	Like(id string) error
}

// articleRepository holds the whole collection in process memory. Every
// mutation swaps in a freshly built slice, so a snapshot handed out by
// FindAll is never modified behind the caller's back.
type articleRepository struct {
	mu       sync.RWMutex
	articles []models.Article
}

func NewArticleRepository(seed []models.Article) ArticleRepository {
	articles := make([]models.Article, len(seed))
	copy(articles, seed)
	return &articleRepository{articles: articles}
}

func (r *articleRepository) Create(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	article.ID = uuid.NewString()
	article.CreatedAt = now
	article.UpdatedAt = now
	article.ViewCount = 0
	article.Likes = 0

	// Newest first is a store convention, not something the list pipeline
	// re-establishes later.
	next := make([]models.Article, 0, len(r.articles)+1)
	next = append(next, *article)
	next = append(next, r.articles...)
	r.articles = next
	return nil
}

func (r *articleRepository) FindAll() ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	articles := make([]models.Article, len(r.articles))
	copy(articles, r.articles)
	return articles, nil
}

func (r *articleRepository) FindByID(id string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.articles {
		if r.articles[i].ID == id {
			article := r.articles[i]
			return &article, nil
		}
	}
	return nil, ErrArticleNotFound
}

// Update replaces the stored record matching article.ID. ID and CreatedAt
// are always taken from the existing record, UpdatedAt is refreshed, and
// everything else comes from the caller. The preserved fields are written
// back into the caller's struct so it reflects what was stored.
func (r *articleRepository) Update(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(article.ID)
	if idx < 0 {
		return ErrArticleNotFound
	}

	article.CreatedAt = r.articles[idx].CreatedAt
	article.UpdatedAt = time.Now()

	next := make([]models.Article, len(r.articles))
	copy(next, r.articles)
	next[idx] = *article
	r.articles = next
	return nil
}

func (r *articleRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrArticleNotFound
	}

	next := make([]models.Article, 0, len(r.articles)-1)
	next = append(next, r.articles[:idx]...)
	next = append(next, r.articles[idx+1:]...)
	r.articles = next
	return nil
}

func (r *articleRepository) IncrementViewCount(id string) error {
	return r.bump(id, func(a *models.Article) { a.ViewCount++ })
}

func (r *articleRepository) Like(id string) error {
	return r.bump(id, func(a *models.Article) { a.Likes++ })
}

// bump applies a counter mutation without touching UpdatedAt.
func (r *articleRepository) bump(id string, apply func(*models.Article)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrArticleNotFound
	}

	next := make([]models.Article, len(r.articles))
	copy(next, r.articles)
	apply(&next[idx])
	r.articles = next
	return nil
}

func (r *articleRepository) indexOf(id string) int {
	for i := range r.articles {
		if r.articles[i].ID == id {
			return i
		}
	}
	return -1
}
