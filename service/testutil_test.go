package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// newTestLogger 构造测试用的 ZapLogger。
func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	if err != nil {
		t.Fatalf("初始化测试 logger 失败: %v", err)
	}
	return logger
}

// --- 内存版用户仓库 ---

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   uint64
	users map[uint64]*entities.User

	createErr error // 注入 CreateUser 的失败
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*entities.User)}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, _ *gorm.DB, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	user.ID = r.seq
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	cloned := *user
	r.users[user.ID] = &cloned
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id uint64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	cloned := *user
	return &cloned, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			cloned := *user
			return &cloned, nil
		}
	}
	return nil, commonerrors.ErrRepoNotFound
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			cloned := *user
			return &cloned, nil
		}
	}
	return nil, commonerrors.ErrRepoNotFound
}

func (r *fakeUserRepo) ListUsers(_ context.Context) ([]*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		cloned := *user
		users = append(users, &cloned)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	return users, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, id uint64, username *string, password *string, email *string, role *enums.UserRole) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	if username != nil {
		user.Username = *username
	}
	if password != nil {
		user.Password = *password
	}
	if email != nil {
		user.Email = *email
	}
	if role != nil {
		user.Role = *role
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, _ *gorm.DB, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(r.users, id)
	return nil
}

// --- 内存版帖子仓库 ---

type fakePostRepo struct {
	mu    sync.Mutex
	seq   uint64
	posts map[uint64]*entities.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*entities.Post)}
}

func (r *fakePostRepo) addPost(userID uint64, title, content string) *entities.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	now := time.Now()
	post := &entities.Post{UserID: userID, Title: title, Content: content}
	post.ID = r.seq
	post.CreatedAt = now
	post.UpdatedAt = now
	r.posts[post.ID] = post
	cloned := *post
	return &cloned
}

func (r *fakePostRepo) CreatePost(_ context.Context, _ *gorm.DB, post *entities.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	post.ID = r.seq
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	cloned := *post
	r.posts[post.ID] = &cloned
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id uint64) (*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	cloned := *post
	return &cloned, nil
}

func (r *fakePostRepo) ListPosts(_ context.Context, limit, offset int) ([]*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := make([]*entities.Post, 0, len(r.posts))
	for _, post := range r.posts {
		cloned := *post
		posts = append(posts, &cloned)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	if offset >= len(posts) {
		return []*entities.Post{}, nil
	}
	posts = posts[offset:]
	if limit < len(posts) {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *fakePostRepo) UpdatePost(_ context.Context, id uint64, title *string, content *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	if title != nil {
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}
	post.UpdatedAt = time.Now()
	return nil
}

func (r *fakePostRepo) IncrementViewCount(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	post.ViewCount++
	return nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, _ *gorm.DB, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(r.posts, id)
	return nil
}

// --- 内存版评论仓库 ---

type fakeCommentRepo struct {
	mu       sync.Mutex
	seq      uint64
	comments map[uint64]*entities.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint64]*entities.Comment)}
}

func (r *fakeCommentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.comments)
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, _ *gorm.DB, comment *entities.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	comment.ID = r.seq
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	cloned := *comment
	r.comments[comment.ID] = &cloned
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(_ context.Context, id uint64) (*entities.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	cloned := *comment
	return &cloned, nil
}

func (r *fakeCommentRepo) ListCommentsByPostID(_ context.Context, postID uint64) ([]*entities.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comments := make([]*entities.Comment, 0)
	for _, comment := range r.comments {
		if comment.PostID == postID {
			cloned := *comment
			comments = append(comments, &cloned)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (r *fakeCommentRepo) UpdateComment(_ context.Context, id uint64, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	comment.Content = content
	comment.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, _ *gorm.DB, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(r.comments, id)
	return nil
}

// --- 内存版附件仓库 ---

type fakeFileRepo struct {
	mu    sync.Mutex
	seq   uint64
	files map[uint64]*entities.File

	createErr error // 注入 CreateFile 的失败，用于验证补偿清理
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[uint64]*entities.File)}
}

func (r *fakeFileRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.files)
}

func (r *fakeFileRepo) addFile(postID uint64, fileName, objectKey string, size int64) *entities.File {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	file := &entities.File{PostID: postID, FileName: fileName, ObjectKey: objectKey, FileSize: size}
	file.ID = r.seq
	file.CreatedAt = time.Now()
	file.UpdatedAt = file.CreatedAt
	r.files[file.ID] = file
	cloned := *file
	return &cloned
}

func (r *fakeFileRepo) CreateFile(_ context.Context, _ *gorm.DB, file *entities.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	file.ID = r.seq
	file.CreatedAt = time.Now()
	file.UpdatedAt = file.CreatedAt
	cloned := *file
	r.files[file.ID] = &cloned
	return nil
}

func (r *fakeFileRepo) GetFileByID(_ context.Context, id uint64) (*entities.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	file, ok := r.files[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	cloned := *file
	return &cloned, nil
}

func (r *fakeFileRepo) ListFilesByPostID(_ context.Context, postID uint64) ([]*entities.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	files := make([]*entities.File, 0)
	for _, file := range r.files {
		if file.PostID == postID {
			cloned := *file
			files = append(files, &cloned)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })
	return files, nil
}

func (r *fakeFileRepo) DeleteFile(_ context.Context, _ *gorm.DB, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(r.files, id)
	return nil
}

// --- 测试版事务管理器 ---

// fakeTxManager 直接执行回调，不涉及真实数据库事务。
type fakeTxManager struct{}

func (fakeTxManager) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}
