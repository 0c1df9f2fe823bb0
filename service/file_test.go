package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// fakeCOSClient 内存版 COS 客户端，记录上传与删除调用。
type fakeCOSClient struct {
	mu       sync.Mutex
	objects  map[string][]byte
	deleted  []string
	uploaded []string
}

func newFakeCOSClient() *fakeCOSClient {
	return &fakeCOSClient{objects: make(map[string][]byte)}
}

func (c *fakeCOSClient) UploadFile(_ context.Context, objectKey string, reader io.Reader, _ int64, _ string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	c.objects[objectKey] = data
	c.uploaded = append(c.uploaded, objectKey)
	return "https://example.com/" + objectKey, nil
}

func (c *fakeCOSClient) DownloadFile(_ context.Context, objectKey string) (io.ReadCloser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.objects[objectKey]
	if !ok {
		return nil, dependencies.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (c *fakeCOSClient) DeleteObject(_ context.Context, objectKey string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.objects, objectKey)
	c.deleted = append(c.deleted, objectKey)
	return nil
}

func (c *fakeCOSClient) uploadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.uploaded)
}

// newMultipartFileHeader 在内存中构造一个带内容的 multipart.FileHeader。
func newMultipartFileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(int64(len(content)) + 10240)
	require.NoError(t, err)
	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func newFileServiceForTest(t *testing.T, maxSize int64) (FileService, *fakeFileRepo, *fakePostRepo, *fakeCOSClient) {
	t.Helper()
	fileRepo := newFakeFileRepo()
	postRepo := newFakePostRepo()
	cosClient := newFakeCOSClient()
	svc := NewFileService(
		nil,
		fakeTxManager{},
		fileRepo,
		postRepo,
		cosClient,
		&appConfig.UploadConfig{MaxSizeBytes: maxSize},
		newTestLogger(t),
	)
	return svc, fileRepo, postRepo, cosClient
}

func TestFileService_UploadAndDownload(t *testing.T) {
	svc, _, postRepo, _ := newFileServiceForTest(t, 1024)
	ctx := context.Background()

	post := postRepo.addPost(1, "标题", "正文")
	content := []byte("附件内容")
	header := newMultipartFileHeader(t, "report.pdf", content)

	fileVO, err := svc.UploadFile(ctx, 1, post.ID, header)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", fileVO.FileName)
	assert.Equal(t, int64(len(content)), fileVO.FileSize)
	assert.Equal(t, post.ID, fileVO.PostID)

	gotVO, body, err := svc.DownloadFile(ctx, fileVO.ID)
	require.NoError(t, err)
	defer body.Close()
	assert.Equal(t, "report.pdf", gotVO.FileName)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFileService_UploadTooLarge(t *testing.T) {
	svc, fileRepo, postRepo, cosClient := newFileServiceForTest(t, 10)
	ctx := context.Background()

	post := postRepo.addPost(1, "标题", "正文")
	header := newMultipartFileHeader(t, "big.bin", []byte(strings.Repeat("x", 11)))

	_, err := svc.UploadFile(ctx, 1, post.ID, header)
	assert.ErrorIs(t, err, myErrors.ErrFileTooLarge)

	// 超限的上传不碰 COS，也不写元数据
	assert.Zero(t, cosClient.uploadCount())
	assert.Zero(t, fileRepo.count())
}

func TestFileService_UploadToNonOwnedPost(t *testing.T) {
	svc, fileRepo, postRepo, cosClient := newFileServiceForTest(t, 1024)
	ctx := context.Background()

	post := postRepo.addPost(1, "标题", "正文")
	header := newMultipartFileHeader(t, "a.txt", []byte("data"))

	_, err := svc.UploadFile(ctx, 2, post.ID, header)
	assert.ErrorIs(t, err, myErrors.ErrForbidden)
	assert.Zero(t, cosClient.uploadCount())
	assert.Zero(t, fileRepo.count())
}

func TestFileService_UploadToMissingPost(t *testing.T) {
	svc, _, _, _ := newFileServiceForTest(t, 1024)
	header := newMultipartFileHeader(t, "a.txt", []byte("data"))

	_, err := svc.UploadFile(context.Background(), 1, 999, header)
	assert.ErrorIs(t, err, myErrors.ErrPostNotFound)
}

func TestFileService_UploadMetadataFailureCompensates(t *testing.T) {
	svc, fileRepo, postRepo, cosClient := newFileServiceForTest(t, 1024)
	ctx := context.Background()

	post := postRepo.addPost(1, "标题", "正文")
	fileRepo.createErr = errors.New("db is down")
	header := newMultipartFileHeader(t, "a.txt", []byte("data"))

	_, err := svc.UploadFile(ctx, 1, post.ID, header)
	require.Error(t, err)

	// 元数据写入失败后，已上传的对象被补偿删除
	require.Len(t, cosClient.deleted, 1)
	assert.Equal(t, cosClient.uploaded[0], cosClient.deleted[0])
	assert.Zero(t, fileRepo.count())
}

func TestFileService_DownloadMissingMetadata(t *testing.T) {
	svc, _, _, _ := newFileServiceForTest(t, 1024)
	_, _, err := svc.DownloadFile(context.Background(), 999)
	assert.ErrorIs(t, err, myErrors.ErrFileNotFound)
}

func TestFileService_DownloadMissingObject(t *testing.T) {
	svc, fileRepo, postRepo, _ := newFileServiceForTest(t, 1024)
	ctx := context.Background()

	post := postRepo.addPost(1, "标题", "正文")
	// 元数据行存在但 COS 中没有对应对象
	file := fileRepo.addFile(post.ID, "ghost.txt", "blog/attachments/20250101/ghost.txt", 5)

	_, _, err := svc.DownloadFile(ctx, file.ID)
	assert.ErrorIs(t, err, myErrors.ErrFileNotFound)
}

func TestFileService_ListByMissingPost(t *testing.T) {
	svc, _, _, _ := newFileServiceForTest(t, 1024)
	_, err := svc.ListFilesByPostID(context.Background(), 999)
	assert.ErrorIs(t, err, myErrors.ErrPostNotFound)
}

func TestFileService_DeleteAuthorization(t *testing.T) {
	svc, fileRepo, postRepo, _ := newFileServiceForTest(t, 1024)
	ctx := context.Background()

	post := postRepo.addPost(1, "标题", "正文")
	file := fileRepo.addFile(post.ID, "a.txt", "blog/attachments/20250101/a.txt", 4)

	// 非帖子作者不能删附件
	assert.ErrorIs(t, svc.DeleteFile(ctx, 2, file.ID), myErrors.ErrForbidden)
	assert.Equal(t, 1, fileRepo.count())

	require.NoError(t, svc.DeleteFile(ctx, 1, file.ID))
	assert.Zero(t, fileRepo.count())
}

func TestFileService_DeleteWhenParentPostGone(t *testing.T) {
	svc, fileRepo, postRepo, _ := newFileServiceForTest(t, 1024)
	ctx := context.Background()

	post := postRepo.addPost(1, "标题", "正文")
	file := fileRepo.addFile(post.ID, "a.txt", "blog/attachments/20250101/a.txt", 4)
	require.NoError(t, postRepo.DeletePost(ctx, nil, post.ID))

	// 父帖子没了就无法判定归属，按附件不存在处理
	assert.ErrorIs(t, svc.DeleteFile(ctx, 1, file.ID), myErrors.ErrFileNotFound)
}
