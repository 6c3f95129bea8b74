package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/service/mocks"
)

func TestSocialPostHandler_HashtagRoundTrip(t *testing.T) {
	handler := NewSocialPostTranslationHandler(nil)

	out, err := handler.PostTranslate("hashtags", "#Geschichte, #Seidenstrasse , #Handel")
	require.NoError(t, err)
	assert.JSONEq(t, `["#Geschichte", "#Seidenstrasse", "#Handel"]`, out)
}

func TestSocialPostHandler_ContentPassesThrough(t *testing.T) {
	handler := NewSocialPostTranslationHandler(nil)

	out, err := handler.PostTranslate("content", "  translated text \n")
	require.NoError(t, err)
	assert.Equal(t, "translated text", out)
}

func TestSocialPostHandler_FieldValueJoinsHashtags(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mocks.NewMockSocialPostStore(ctrl)
	handler := NewSocialPostTranslationHandler(posts)
	ctx := context.Background()

	posts.EXPECT().Get(ctx, int64(4)).Return(&domain.SocialPost{
		ID:       4,
		Hashtags: []string{"#history", "#trade"},
	}, nil)

	got, err := handler.FieldValue(ctx, 4, "hashtags")
	require.NoError(t, err)
	assert.Equal(t, "#history, #trade", got)
}

func TestSocialPostHandler_ValidateRejectsPosted(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mocks.NewMockSocialPostStore(ctrl)
	handler := NewSocialPostTranslationHandler(posts)
	ctx := context.Background()

	postedAt := time.Now()
	posts.EXPECT().Get(ctx, int64(4)).Return(&domain.SocialPost{
		ID:       4,
		Status:   domain.StatusApproved,
		PostedAt: &postedAt,
	}, nil)

	err := handler.Validate(ctx, 4)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "already posted")
}

func TestArticleHandler_ValidateRequiresApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	articles := mocks.NewMockArticleStore(ctrl)
	handler := NewArticleTranslationHandler(articles)
	ctx := context.Background()

	articles.EXPECT().Get(ctx, int64(9)).Return(&domain.Article{
		ID:      9,
		Title:   "t",
		Content: "c",
		Status:  domain.StatusPending,
	}, nil)

	err := handler.Validate(ctx, 9)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestArticleHandler_FinishSkipsWhenAllFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	articles := mocks.NewMockArticleStore(ctrl)
	handler := NewArticleTranslationHandler(articles)

	// No MarkTranslated expectation: nothing succeeded.
	err := handler.Finish(context.Background(), 9, map[string]bool{"title": false})
	require.NoError(t, err)
}
