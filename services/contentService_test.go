package services

import (
	"MediCare/models"
	"MediCare/repositories"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatbotConversation(t *testing.T) {
	s := NewContentService(repositories.NewContentRepository())
	ctx := context.Background()

	step, err := s.ChatStep(ctx, models.ChatStartStep)
	require.NoError(t, err)
	assert.Equal(t, "options", step.Trigger)

	step, err = s.Answer(ctx, step.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "options", step.ID)
	require.NotEmpty(t, step.Options)

	step, err = s.Answer(ctx, "options", "symptoms")
	require.NoError(t, err)
	assert.Equal(t, "askSymptoms", step.ID)

	step, err = s.Answer(ctx, step.ID, "")
	require.NoError(t, err)
	assert.True(t, step.User)

	_, err = s.Answer(ctx, step.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	step, err = s.Answer(ctx, step.ID, "headache for two days")
	require.NoError(t, err)
	assert.Equal(t, "symptomsResponse", step.ID)
}

func TestChatbotRejectsUnknownOption(t *testing.T) {
	s := NewContentService(repositories.NewContentRepository())

	_, err := s.Answer(context.Background(), "options", "billing")
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = s.Answer(context.Background(), "nope", "yes")
	assert.ErrorIs(t, err, ErrChatStepNotFound)
}

func TestChatbotEndStep(t *testing.T) {
	s := NewContentService(repositories.NewContentRepository())
	ctx := context.Background()

	step, err := s.Answer(ctx, "findDoctor", "no")
	require.NoError(t, err)
	require.True(t, step.End)

	_, err = s.Answer(ctx, step.ID, "")
	assert.ErrorIs(t, err, ErrConversationEnd)
}

func TestBlogPostsByCategory(t *testing.T) {
	s := NewContentService(repositories.NewContentRepository())
	ctx := context.Background()

	all, err := s.BlogPosts(ctx, "")
	require.NoError(t, err)
	heart, err := s.BlogPosts(ctx, "heart health")
	require.NoError(t, err)

	assert.Greater(t, len(all), len(heart))
	require.NotEmpty(t, heart)
	for _, p := range heart {
		assert.Equal(t, "Heart Health", p.Category)
	}
}
