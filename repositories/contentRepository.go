package repositories

import (
	"MediCare/models"
	"context"
)

type ContentRepository interface {
	BlogPosts(ctx context.Context) ([]models.BlogPost, error)
	BlogCategories(ctx context.Context) ([]string, error)
	RecentPosts(ctx context.Context) ([]string, error)
	Resources(ctx context.Context) ([]models.ResourceCategory, error)
	FAQs(ctx context.Context) ([]models.FAQ, error)
	ChatStep(ctx context.Context, id string) (*models.ChatStep, error)
}

type contentRepository struct {
	posts      []models.BlogPost
	categories []string
	recent     []string
	resources  []models.ResourceCategory
	faqs       []models.FAQ
	steps      map[string]models.ChatStep
}

// NewContentRepository serves the static site content.
func NewContentRepository() ContentRepository {
	return &contentRepository{
		posts:      models.SeedBlogPosts(),
		categories: models.SeedBlogCategories(),
		recent:     models.SeedRecentPosts(),
		resources:  models.SeedResources(),
		faqs:       models.SeedFAQs(),
		steps:      models.SeedChatSteps(),
	}
}

func (r *contentRepository) BlogPosts(context.Context) ([]models.BlogPost, error) {
	return append([]models.BlogPost(nil), r.posts...), nil
}

func (r *contentRepository) BlogCategories(context.Context) ([]string, error) {
	return append([]string(nil), r.categories...), nil
}

func (r *contentRepository) RecentPosts(context.Context) ([]string, error) {
	return append([]string(nil), r.recent...), nil
}

func (r *contentRepository) Resources(context.Context) ([]models.ResourceCategory, error) {
	out := make([]models.ResourceCategory, len(r.resources))
	for i, c := range r.resources {
		out[i] = models.ResourceCategory{Category: c.Category, Items: append([]models.Resource(nil), c.Items...)}
	}
	return out, nil
}

func (r *contentRepository) FAQs(context.Context) ([]models.FAQ, error) {
	return append([]models.FAQ(nil), r.faqs...), nil
}

func (r *contentRepository) ChatStep(_ context.Context, id string) (*models.ChatStep, error) {
	step, ok := r.steps[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &step, nil
}
