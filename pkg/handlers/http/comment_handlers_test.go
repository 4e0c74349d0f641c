package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	appComment "github.com/kforum/moderation/pkg/app/comment"
	appCommentMocks "github.com/kforum/moderation/pkg/app/comment/mocks"
	"github.com/kforum/moderation/pkg/domain"
	domainComment "github.com/kforum/moderation/pkg/domain/comment"
	commentMocks "github.com/kforum/moderation/pkg/domain/comment/mocks"
	domainPost "github.com/kforum/moderation/pkg/domain/post"
	"github.com/kforum/moderation/pkg/handlers/http/response"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentHandler_Created(t *testing.T) {
	creator := new(appCommentMocks.Creator)
	handler := NewCreateCommentHandler(logrus.New(), creator)

	app := fiber.New()
	app.Post("/api/v1/posts/:post_id/comments", withUser("author-2", false), handler.Handle)

	postID := uuid.New()
	creator.On("Create", mock.Anything, mock.MatchedBy(func(input appComment.CreateInput) bool {
		return input.PostID == postID && input.AuthorID == "author-2"
	})).Return(&domainComment.Comment{
		ID:     uuid.New(),
		PostID: postID,
		Status: domainPost.StatusPublished,
	}, nil)

	body, _ := json.Marshal(map[string]string{"content": "agreed"})
	req := httptest.NewRequest(fiber.MethodPost, fmt.Sprintf("/api/v1/posts/%s/comments", postID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var got response.Comment
	decodeBody(t, resp.Body, &got)
	assert.Equal(t, postID, got.PostID)
}

func TestCreateCommentHandler_HeldParentIsNotFound(t *testing.T) {
	creator := new(appCommentMocks.Creator)
	handler := NewCreateCommentHandler(logrus.New(), creator)

	app := fiber.New()
	app.Post("/api/v1/posts/:post_id/comments", withUser("author-2", false), handler.Handle)

	postID := uuid.New()
	creator.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrPostNotVisible)

	body, _ := json.Marshal(map[string]string{"content": "hello"})
	req := httptest.NewRequest(fiber.MethodPost, fmt.Sprintf("/api/v1/posts/%s/comments", postID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateCommentHandler_InvalidParentID(t *testing.T) {
	creator := new(appCommentMocks.Creator)
	handler := NewCreateCommentHandler(logrus.New(), creator)

	app := fiber.New()
	app.Post("/api/v1/posts/:post_id/comments", withUser("author-2", false), handler.Handle)

	parent := "not-a-uuid"
	body, _ := json.Marshal(map[string]interface{}{"content": "reply", "parent_id": parent})
	req := httptest.NewRequest(fiber.MethodPost, fmt.Sprintf("/api/v1/posts/%s/comments", uuid.New()), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	creator.AssertNotCalled(t, "Create")
}

func TestListCommentsHandler_ReturnsPublishedOnly(t *testing.T) {
	repo := new(commentMocks.Repository)
	handler := NewListCommentsHandler(logrus.New(), repo)

	app := fiber.New()
	app.Get("/api/v1/posts/:post_id/comments", handler.Handle)

	postID := uuid.New()
	repo.On("ListPublished", mock.Anything, postID).
		Return([]domainComment.Comment{
			{ID: uuid.New(), PostID: postID, Content: "visible", Status: domainPost.StatusPublished},
		}, nil)

	req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/api/v1/posts/%s/comments", postID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got map[string][]response.Comment
	decodeBody(t, resp.Body, &got)
	require.Len(t, got["comments"], 1)
	assert.Equal(t, "visible", got["comments"][0].Content)
}
