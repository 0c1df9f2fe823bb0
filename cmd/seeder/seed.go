package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/service"
)

// seedPassword 所有测试用户共用的口令，方便手工登录验证。
const seedPassword = "password123"

// truncate 把字符串裁剪到指定长度，gofakeit 生成的句子偶尔会超过字段上限。
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// Seed 通过服务层填充测试用户、帖子和评论。
// 先串行注册用户拿到 ID，再并发创建帖子，每个帖子随机挂几条评论。
func Seed(
	ctx context.Context,
	userSvc service.UserService,
	postSvc service.PostService,
	commentSvc service.CommentService,
	logger *core.ZapLogger,
	numUsers, numPosts int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("用户数", numUsers), zap.Int("帖子数", numPosts))

	// --- 1. 注册测试用户 ---
	userIDs := make([]uint64, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		registerReq := &dto.RegisterUserRequest{
			Username: truncate(fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(10, 99)), 20),
			Password: seedPassword,
			Email:    gofakeit.Email(),
			Role:     enums.RoleUser,
		}

		userVO, err := userSvc.Register(ctx, registerReq)
		if err != nil {
			// 用户名/邮箱撞车就跳过，不影响整体填充。
			logger.Warn(fmt.Sprintf("注册测试用户 %d/%d 失败", i+1, numUsers),
				zap.Error(err),
				zap.String("username", registerReq.Username))
			continue
		}
		userIDs = append(userIDs, userVO.ID)
	}

	if len(userIDs) == 0 {
		logger.Error("没有成功注册任何测试用户，停止填充")
		return
	}
	logger.Info("测试用户注册完毕", zap.Int("成功数量", len(userIDs)))

	// --- 2. 并发创建帖子与评论 ---
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			authorID := userIDs[gofakeit.Number(0, len(userIDs)-1)]
			createReq := &dto.CreatePostRequest{
				Title:   truncate(gofakeit.Sentence(gofakeit.Number(3, 8)), 100),
				Content: gofakeit.Paragraph(3, 5, 20, "\n\n"),
			}

			postVO, err := postSvc.CreatePost(ctx, authorID, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title))
				return
			}
			logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, numPosts),
				zap.Uint64("post_id", postVO.ID),
				zap.String("title", postVO.Title))

			// 每个帖子随机挂 0-5 条评论，评论者也是随机的测试用户。
			numComments := gofakeit.Number(0, 5)
			for j := 0; j < numComments; j++ {
				commenterID := userIDs[gofakeit.Number(0, len(userIDs)-1)]
				commentReq := &dto.CreateCommentRequest{
					PostID:  postVO.ID,
					Content: gofakeit.Sentence(gofakeit.Number(5, 15)),
				}
				if _, err := commentSvc.CreateComment(ctx, commenterID, commentReq); err != nil {
					logger.Error("创建评论失败", zap.Error(err), zap.Uint64("post_id", postVO.ID))
				}
			}
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}
