package notice

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notice_repo.go -destination=mock/notice_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, notice *Notice) error
	FindRecent(ctx context.Context, limit int) ([]Notice, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, notice *Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]Notice, error) {
	var notices []Notice
	err := r.db.WithContext(ctx).
		Order("created_at DESC, date DESC").
		Limit(limit).
		Find(&notices).Error
	return notices, err
}
