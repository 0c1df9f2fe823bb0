package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/myErrors"
)

func newCommentServiceForTest(t *testing.T) (CommentService, *fakeCommentRepo, *fakePostRepo) {
	t.Helper()
	commentRepo := newFakeCommentRepo()
	postRepo := newFakePostRepo()
	svc := NewCommentService(nil, commentRepo, postRepo, newTestLogger(t))
	return svc, commentRepo, postRepo
}

func TestCommentService_CreateOnMissingPost(t *testing.T) {
	svc, commentRepo, _ := newCommentServiceForTest(t)

	_, err := svc.CreateComment(context.Background(), 1, &dto.CreateCommentRequest{
		PostID:  999,
		Content: "挂在不存在帖子上的评论",
	})
	assert.ErrorIs(t, err, myErrors.ErrPostNotFound)

	// 失败的创建不会留下任何评论行
	assert.Zero(t, commentRepo.count())
}

func TestCommentService_CreateAndListOrdering(t *testing.T) {
	svc, _, postRepo := newCommentServiceForTest(t)
	ctx := context.Background()

	post := postRepo.addPost(1, "标题", "正文")

	first, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{PostID: post.ID, Content: "第一条"})
	require.NoError(t, err)
	second, err := svc.CreateComment(ctx, 3, &dto.CreateCommentRequest{PostID: post.ID, Content: "第二条"})
	require.NoError(t, err)

	comments, err := svc.ListCommentsByPostID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// 按发表顺序升序
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
	assert.Equal(t, uint64(2), comments[0].UserID)
}

func TestCommentService_ListOnMissingPost(t *testing.T) {
	svc, _, _ := newCommentServiceForTest(t)

	_, err := svc.ListCommentsByPostID(context.Background(), 999)
	// 帖子不存在时返回未找到，而不是空列表
	assert.ErrorIs(t, err, myErrors.ErrPostNotFound)
}

func TestCommentService_ListAfterPostDeleted(t *testing.T) {
	svc, _, postRepo := newCommentServiceForTest(t)
	ctx := context.Background()

	post := postRepo.addPost(1, "标题", "正文")
	_, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{PostID: post.ID, Content: "评论"})
	require.NoError(t, err)

	// 父帖子删除后，评论列表入口也随之关闭
	require.NoError(t, postRepo.DeletePost(ctx, nil, post.ID))
	_, err = svc.ListCommentsByPostID(ctx, post.ID)
	assert.ErrorIs(t, err, myErrors.ErrPostNotFound)
}

func TestCommentService_UpdateAuthorization(t *testing.T) {
	svc, _, postRepo := newCommentServiceForTest(t)
	ctx := context.Background()

	post := postRepo.addPost(1, "标题", "正文")
	comment, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{PostID: post.ID, Content: "原始内容"})
	require.NoError(t, err)

	// 其他用户（包括帖子作者）都不能改别人的评论
	_, err = svc.UpdateComment(ctx, 1, comment.ID, &dto.UpdateCommentRequest{Content: "被篡改"})
	assert.ErrorIs(t, err, myErrors.ErrForbidden)

	got, err := svc.GetCommentByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "原始内容", got.Content)

	// 作者本人可以改
	updated, err := svc.UpdateComment(ctx, 2, comment.ID, &dto.UpdateCommentRequest{Content: "新内容"})
	require.NoError(t, err)
	assert.Equal(t, "新内容", updated.Content)
}

func TestCommentService_DeleteAuthorization(t *testing.T) {
	svc, commentRepo, postRepo := newCommentServiceForTest(t)
	ctx := context.Background()

	post := postRepo.addPost(1, "标题", "正文")
	comment, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{PostID: post.ID, Content: "评论"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteComment(ctx, 3, comment.ID), myErrors.ErrForbidden)
	assert.Equal(t, 1, commentRepo.count())

	require.NoError(t, svc.DeleteComment(ctx, 2, comment.ID))
	_, err = svc.GetCommentByID(ctx, comment.ID)
	assert.ErrorIs(t, err, myErrors.ErrCommentNotFound)
}

func TestCommentService_GetNotFound(t *testing.T) {
	svc, _, _ := newCommentServiceForTest(t)
	_, err := svc.GetCommentByID(context.Background(), 999)
	assert.ErrorIs(t, err, myErrors.ErrCommentNotFound)
}
