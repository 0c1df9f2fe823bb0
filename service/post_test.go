package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/myErrors"
)

func newPostServiceForTest(t *testing.T) (PostService, *fakePostRepo) {
	t.Helper()
	repo := newFakePostRepo()
	svc := NewPostService(nil, repo, newTestLogger(t))
	return svc, repo
}

func TestPostService_CreateAndGet(t *testing.T) {
	svc, _ := newPostServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, 1, &dto.CreatePostRequest{Title: "第一篇", Content: "正文内容"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, uint64(1), created.UserID)
	assert.Equal(t, int64(0), created.ViewCount)

	// 每次详情查询浏览量加一，返回值包含本次浏览
	got, err := svc.GetPostByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	got, err = svc.GetPostByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewCount)
}

func TestPostService_ConcurrentViewCounting(t *testing.T) {
	svc, repo := newPostServiceForTest(t)
	ctx := context.Background()

	post := repo.addPost(1, "标题", "正文")

	const readers = 50
	errs := make(chan error, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GetPostByID(ctx, post.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// 并发读 N 次，浏览量恰好增加 N，不丢失也不重复
	stored, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(readers), stored.ViewCount)
}

func TestPostService_GetNotFound(t *testing.T) {
	svc, _ := newPostServiceForTest(t)
	_, err := svc.GetPostByID(context.Background(), 999)
	assert.ErrorIs(t, err, myErrors.ErrPostNotFound)
}

func TestPostService_ListDoesNotCountViews(t *testing.T) {
	svc, repo := newPostServiceForTest(t)
	ctx := context.Background()

	post := repo.addPost(1, "标题", "正文")

	posts, err := svc.ListPosts(ctx, 100, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(0), posts[0].ViewCount)

	// 列表之后再看详情，浏览量才开始计数
	got, err := svc.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)
}

func TestPostService_ListPagination(t *testing.T) {
	svc, repo := newPostServiceForTest(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		repo.addPost(1, "标题", "正文")
	}

	page, err := svc.ListPosts(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := svc.ListPosts(ctx, 100, 4)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestPostService_UpdateByNonOwner(t *testing.T) {
	svc, repo := newPostServiceForTest(t)
	ctx := context.Background()

	post := repo.addPost(1, "原标题", "原正文")

	newTitle := "篡改标题"
	_, err := svc.UpdatePost(ctx, 2, post.ID, &dto.UpdatePostRequest{Title: &newTitle})
	assert.ErrorIs(t, err, myErrors.ErrForbidden)

	// 被拒绝的更新不会改动任何数据
	stored, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "原标题", stored.Title)
}

func TestPostService_UpdateByOwner(t *testing.T) {
	svc, repo := newPostServiceForTest(t)
	ctx := context.Background()

	post := repo.addPost(1, "原标题", "原正文")

	newTitle := "新标题"
	updated, err := svc.UpdatePost(ctx, 1, post.ID, &dto.UpdatePostRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "新标题", updated.Title)
	assert.Equal(t, "原正文", updated.Content) // 未提供的字段保持不变
}

func TestPostService_UpdateNotFound(t *testing.T) {
	svc, _ := newPostServiceForTest(t)
	newTitle := "标题"
	_, err := svc.UpdatePost(context.Background(), 1, 999, &dto.UpdatePostRequest{Title: &newTitle})
	assert.ErrorIs(t, err, myErrors.ErrPostNotFound)
}

func TestPostService_Delete(t *testing.T) {
	svc, repo := newPostServiceForTest(t)
	ctx := context.Background()

	post := repo.addPost(1, "标题", "正文")

	// 非作者删除被拒绝
	assert.ErrorIs(t, svc.DeletePost(ctx, 2, post.ID), myErrors.ErrForbidden)

	// 作者删除成功，之后再查返回未找到
	require.NoError(t, svc.DeletePost(ctx, 1, post.ID))
	_, err := svc.GetPostByID(ctx, post.ID)
	assert.ErrorIs(t, err, myErrors.ErrPostNotFound)
}
