package service

import (
	"context"

	"gorm.io/gorm"
)

// TxManager 把多条写操作包进一个数据库事务。
// 以接口形式注入，便于在测试中替换为不依赖数据库的实现。
type TxManager interface {
	// Transaction 在事务中执行 fn，fn 返回错误时整体回滚。
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

// NewGormTxManager 基于 GORM 连接构造 TxManager。
func NewGormTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
