package services

import (
	"MediCare/models"
	"MediCare/repositories"
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrChatStepNotFound = errors.New("chat step not found")
	ErrInvalidOption    = errors.New("invalid option for this step")
	ErrEmptyAnswer      = errors.New("answer cannot be empty")
	ErrConversationEnd  = errors.New("conversation has ended")
)

type ContentService struct {
	repository repositories.ContentRepository
}

func NewContentService(repository repositories.ContentRepository) *ContentService {
	return &ContentService{repository: repository}
}

// BlogPosts returns every post, or those of one category when given.
func (s *ContentService) BlogPosts(ctx context.Context, category string) ([]models.BlogPost, error) {
	posts, err := s.repository.BlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || strings.EqualFold(category, "all") {
		return posts, nil
	}
	filtered := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *ContentService) BlogCategories(ctx context.Context) ([]string, error) {
	return s.repository.BlogCategories(ctx)
}

func (s *ContentService) RecentPosts(ctx context.Context) ([]string, error) {
	return s.repository.RecentPosts(ctx)
}

func (s *ContentService) Resources(ctx context.Context) ([]models.ResourceCategory, error) {
	return s.repository.Resources(ctx)
}

func (s *ContentService) FAQs(ctx context.Context) ([]models.FAQ, error) {
	return s.repository.FAQs(ctx)
}

func (s *ContentService) ChatStep(ctx context.Context, id string) (*models.ChatStep, error) {
	step, err := s.repository.ChatStep(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrChatStepNotFound
	}
	return step, err
}

// Answer moves the conversation from step id to the next step. Option steps
// follow the chosen option; input and message steps follow their own
// trigger.
func (s *ContentService) Answer(ctx context.Context, id, value string) (*models.ChatStep, error) {
	step, err := s.ChatStep(ctx, id)
	if err != nil {
		return nil, err
	}
	if step.End {
		return nil, ErrConversationEnd
	}

	next := step.Trigger
	switch {
	case len(step.Options) > 0:
		next = ""
		for _, o := range step.Options {
			if o.Value == value {
				next = o.Trigger
				break
			}
		}
		if next == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOption, value)
		}
	case step.User:
		if strings.TrimSpace(value) == "" {
			return nil, ErrEmptyAnswer
		}
	}
	if next == "" {
		return nil, ErrConversationEnd
	}
	return s.ChatStep(ctx, next)
}
