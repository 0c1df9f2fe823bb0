package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// FileService 定义了帖子附件相关的业务逻辑接口。
// 附件的字节存放在 COS，元数据行存放在 MySQL，两边的一致性由本服务维护。
type FileService interface {
	// UploadFile 向指定帖子上传一个附件，仅限帖子作者本人。
	// - 超过配置的大小上限返回 myErrors.ErrFileTooLarge，字节不会被上传。
	// - 先上传 COS 字节，再在事务中写入元数据行；元数据写入失败时
	//   删除已上传的对象作为补偿，避免产生孤儿字节。
	UploadFile(ctx context.Context, callerID, postID uint64, fileHeader *multipart.FileHeader) (*vo.FileVO, error)

	// ListFilesByPostID 返回指定帖子下的全部附件元数据。
	// - 父帖子不存在或已被软删除时返回 myErrors.ErrPostNotFound。
	ListFilesByPostID(ctx context.Context, postID uint64) ([]*vo.FileVO, error)

	// DownloadFile 获取附件的元数据与内容流，调用方负责关闭流。
	// - 元数据行不存在，或 COS 中对象已丢失，统一返回 myErrors.ErrFileNotFound。
	DownloadFile(ctx context.Context, fileID uint64) (*vo.FileVO, io.ReadCloser, error)

	// DeleteFile 软删除附件元数据，仅限附件所属帖子的作者。
	// - 元数据是软删除，COS 中的字节保留，便于恢复。
	DeleteFile(ctx context.Context, callerID, fileID uint64) error
}

// fileService 是 FileService 的实现。
type fileService struct {
	db        *gorm.DB
	txManager TxManager
	fileRepo  mysql.FileRepository
	postRepo  mysql.PostRepository
	cosClient dependencies.COSClientInterface
	uploadCfg *appConfig.UploadConfig
	logger    *core.ZapLogger
}

// NewFileService 是 fileService 的构造函数。
func NewFileService(
	db *gorm.DB,
	txManager TxManager,
	fileRepo mysql.FileRepository,
	postRepo mysql.PostRepository,
	cosClient dependencies.COSClientInterface,
	uploadCfg *appConfig.UploadConfig,
	logger *core.ZapLogger,
) FileService {
	return &fileService{
		db:        db,
		txManager: txManager,
		fileRepo:  fileRepo,
		postRepo:  postRepo,
		cosClient: cosClient,
		uploadCfg: uploadCfg,
		logger:    logger,
	}
}

// maxUploadSize 返回生效的上传大小上限（字节）。
func (s *fileService) maxUploadSize() int64 {
	if s.uploadCfg != nil && s.uploadCfg.MaxSizeBytes > 0 {
		return s.uploadCfg.MaxSizeBytes
	}
	return constant.DefaultMaxUploadSizeBytes
}

// buildObjectKey 为新附件生成 COS 对象键。
// 形如 blog/attachments/20250901/<uuid>.png，按天分目录，UUID 保证不会互相覆盖。
func buildObjectKey(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("%s%s/%s%s",
		constant.COSObjectKeyPrefixAttachments,
		time.Now().UTC().Format("20060102"),
		uuid.NewString(),
		ext,
	)
}

// UploadFile 实现附件的上传。
func (s *fileService) UploadFile(ctx context.Context, callerID, postID uint64, fileHeader *multipart.FileHeader) (*vo.FileVO, error) {
	// 1. 大小校验放在最前面，超限的请求不碰任何外部依赖。
	if fileHeader.Size > s.maxUploadSize() {
		s.logger.Warn("上传被拒绝，文件超过大小上限",
			zap.Uint64("postID", postID),
			zap.Int64("fileSize", fileHeader.Size),
			zap.Int64("maxSize", s.maxUploadSize()),
		)
		return nil, myErrors.ErrFileTooLarge
	}

	// 2. 存在性与所有权检查：附件只能由帖子作者本人上传。
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("获取帖子失败: %w", err)
	}
	if post.UserID != callerID {
		s.logger.Warn("上传附件被拒绝，调用方不是帖子作者",
			zap.Uint64("postID", postID),
			zap.Uint64("callerID", callerID),
		)
		return nil, myErrors.ErrForbidden
	}

	// 3. 上传字节到 COS。
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := buildObjectKey(fileHeader.Filename)
	if _, err := s.cosClient.UploadFile(ctx, objectKey, src, fileHeader.Size, contentType); err != nil {
		return nil, fmt.Errorf("上传附件字节失败: %w", err)
	}

	// 4. 事务中写入元数据行。失败时删除刚上传的对象作为补偿，
	//    补偿使用独立的 context，请求被取消也要尽力完成清理。
	file := &entities.File{
		PostID:    postID,
		FileName:  fileHeader.Filename,
		ObjectKey: objectKey,
		FileSize:  fileHeader.Size,
	}

	txErr := s.txManager.Transaction(ctx, func(tx *gorm.DB) error {
		return s.fileRepo.CreateFile(ctx, tx, file)
	})
	if txErr != nil {
		s.logger.Error("附件元数据入库失败，开始补偿删除 COS 对象",
			zap.String("objectKey", objectKey),
			zap.Error(txErr),
		)
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if delErr := s.cosClient.DeleteObject(cleanupCtx, objectKey); delErr != nil {
			// 补偿失败只能记录，对象键里带 UUID，后续可以人工清理。
			s.logger.Error("补偿删除 COS 对象失败，存在孤儿对象",
				zap.String("objectKey", objectKey),
				zap.Error(delErr),
			)
		}
		return nil, fmt.Errorf("附件元数据入库失败: %w", txErr)
	}

	s.logger.Info("附件上传成功",
		zap.Uint64("fileID", file.ID),
		zap.Uint64("postID", postID),
		zap.String("objectKey", objectKey),
	)
	return vo.NewFileVOFromEntity(file), nil
}

// ListFilesByPostID 实现帖子附件列表查询。
func (s *fileService) ListFilesByPostID(ctx context.Context, postID uint64) ([]*vo.FileVO, error) {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("获取帖子失败: %w", err)
	}

	files, err := s.fileRepo.ListFilesByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("获取帖子附件列表失败: %w", err)
	}
	return vo.MapFilesToVOs(files), nil
}

// DownloadFile 实现附件下载。
func (s *fileService) DownloadFile(ctx context.Context, fileID uint64) (*vo.FileVO, io.ReadCloser, error) {
	file, err := s.fileRepo.GetFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, nil, myErrors.ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("获取附件元数据失败: %w", err)
	}

	body, err := s.cosClient.DownloadFile(ctx, file.ObjectKey)
	if err != nil {
		if errors.Is(err, dependencies.ErrObjectNotFound) {
			// 元数据行还在而字节已丢失，对调用方而言附件就是不存在。
			s.logger.Error("附件元数据存在但 COS 对象丢失",
				zap.Uint64("fileID", fileID),
				zap.String("objectKey", file.ObjectKey),
			)
			return nil, nil, myErrors.ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("下载附件字节失败: %w", err)
	}

	return vo.NewFileVOFromEntity(file), body, nil
}

// DeleteFile 实现附件元数据的软删除。
func (s *fileService) DeleteFile(ctx context.Context, callerID, fileID uint64) error {
	file, err := s.fileRepo.GetFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrFileNotFound
		}
		return fmt.Errorf("获取附件元数据失败: %w", err)
	}

	// 附件没有独立的作者字段，权限沿用所属帖子的作者。
	// 父帖子已被软删除时无法判定归属，按附件不存在处理。
	post, err := s.postRepo.GetPostByID(ctx, file.PostID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrFileNotFound
		}
		return fmt.Errorf("获取附件所属帖子失败: %w", err)
	}
	if post.UserID != callerID {
		s.logger.Warn("删除附件被拒绝，调用方不是帖子作者",
			zap.Uint64("fileID", fileID),
			zap.Uint64("callerID", callerID),
		)
		return myErrors.ErrForbidden
	}

	if err := s.fileRepo.DeleteFile(ctx, s.db, fileID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrFileNotFound
		}
		return fmt.Errorf("删除附件失败: %w", err)
	}

	s.logger.Info("附件元数据已软删除", zap.Uint64("fileID", fileID), zap.Uint64("userID", callerID))
	return nil
}
