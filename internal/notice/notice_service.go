package notice

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RecentNoticesKey caches the public notice board; it is the hottest
// read in the app (every mini-program launch hits it).
const RecentNoticesKey = "notices:recent"

const recentLimit = 5

var errInvalidDate = apperror.New(
	apperror.CodeValidationError,
	"invalid date format, expected YYYY-MM-DD",
	http.StatusBadRequest,
)

//go:generate mockgen -source=notice_service.go -destination=mock/notice_service_mock.go -package=mock
type Service interface {
	ListRecent(ctx context.Context) ([]NoticeResponse, error)
	Create(ctx context.Context, req CreateNoticeRequest) (NoticeResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("notice.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notice.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) ListRecent(ctx context.Context) ([]NoticeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, RecentNoticesKey).Result(); err == nil {
			var resp []NoticeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses the stampede after an invalidation.
	v, err, _ := s.sf.Do(RecentNoticesKey, func() (interface{}, error) {
		notices, err := s.repo.FindRecent(ctx, recentLimit)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(notices)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, RecentNoticesKey, jsonData, 5*time.Minute)
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("list recent notices failed", zap.Error(err))
		return nil, err
	}

	return v.([]NoticeResponse), nil
}

func (s *service) Create(ctx context.Context, req CreateNoticeRequest) (NoticeResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return NoticeResponse{}, errInvalidDate
	}

	notice := &Notice{
		Title:   req.Title,
		Content: req.Content,
		Date:    date,
	}

	if err := s.repo.Create(ctx, notice); err != nil {
		s.logger.Error("create notice persist failed", zap.Error(err))
		return NoticeResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, RecentNoticesKey).Err(); err != nil {
			s.logger.Error("failed to invalidate recent notices cache",
				zap.Error(err),
				zap.String("key", RecentNoticesKey),
			)
		}
	}

	s.logger.Info("create notice success", zap.Uint("notice_id", notice.ID))

	return mapToResponse(*notice), nil
}
