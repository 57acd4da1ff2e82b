package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/employee"
	"go-payroll/internal/wechat"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// dummyHash keeps Login constant-effort when the employee code does not
// exist: bcrypt runs either way, so timing does not reveal which half of
// the credential pair was wrong.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, employeeCode, password string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	WechatLogin(ctx context.Context, code string) (TokenPair, error)
	BindWechat(ctx context.Context, actorID uint, req BindWechatRequest) error
	Me(ctx context.Context, actorID uint) (employee.EmployeeResponse, error)
}

type service struct {
	employees employee.Repository
	wechat    wechat.Client
	logger    *zap.Logger
}

func NewService(employees employee.Repository, wechatClient wechat.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{employees: employees, wechat: wechatClient, logger: l}
}

func (s *service) Login(ctx context.Context, employeeCode, password string) (TokenPair, error) {
	empl, err := s.employees.FindByCode(ctx, employeeCode)
	if err != nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		s.logger.Debug("login unknown employee code", zap.String("employee_code", employeeCode))
		return TokenPair{}, autherrors.ErrInvalidCredentials
	}

	if !empl.CheckPassword(password) {
		s.logger.Debug("login wrong password", zap.String("employee_code", employeeCode))
		return TokenPair{}, autherrors.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(empl)
	if err != nil {
		return TokenPair{}, err
	}

	s.logger.Info("login success",
		zap.Uint("employee_id", empl.ID),
		zap.String("employee_code", empl.EmployeeCode),
	)
	return pair, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return TokenPair{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPair{}, autherrors.ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return TokenPair{}, autherrors.ErrInvalidRefreshToken
	}

	employeeID, ok := claims["employee_id"].(float64)
	if !ok || employeeID <= 0 {
		return TokenPair{}, autherrors.ErrInvalidToken
	}

	// Re-read the employee so a role change or deletion since issuance
	// is reflected in the new pair.
	empl, err := s.employees.FindByID(ctx, uint(employeeID))
	if err != nil {
		return TokenPair{}, autherrors.ErrInvalidRefreshToken
	}

	pair, err := s.issueTokens(empl)
	if err != nil {
		return TokenPair{}, err
	}

	s.logger.Info("token refreshed", zap.Uint("employee_id", empl.ID))
	return pair, nil
}

func (s *service) WechatLogin(ctx context.Context, code string) (TokenPair, error) {
	session, err := s.wechat.CodeToSession(ctx, code)
	if err != nil {
		s.logger.Warn("wechat code2session failed", zap.Error(err))
		return TokenPair{}, autherrors.ErrInvalidCredentials
	}

	empl, err := s.employees.FindByOpenID(ctx, session.OpenID)
	if err != nil {
		s.logger.Debug("wechat openid not linked")
		return TokenPair{}, autherrors.ErrAccountNotLinked
	}

	pair, err := s.issueTokens(empl)
	if err != nil {
		return TokenPair{}, err
	}

	s.logger.Info("wechat login success", zap.Uint("employee_id", empl.ID))
	return pair, nil
}

func (s *service) BindWechat(ctx context.Context, actorID uint, req BindWechatRequest) error {
	session, err := s.wechat.CodeToSession(ctx, req.Code)
	if err != nil {
		s.logger.Warn("bind wechat code2session failed", zap.Error(err))
		return autherrors.ErrInvalidCredentials
	}

	empl, err := s.employees.FindByID(ctx, actorID)
	if err != nil {
		return autherrors.ErrInvalidToken
	}

	empl.WechatOpenID = &session.OpenID
	if avatar, ok := req.UserInfo["avatarUrl"].(string); ok && avatar != "" {
		empl.AvatarURL = avatar
	}

	if err := s.employees.Update(ctx, empl); err != nil {
		s.logger.Error("bind wechat persist failed", zap.Error(err))
		return err
	}

	s.logger.Info("wechat bound", zap.Uint("employee_id", actorID))
	return nil
}

func (s *service) Me(ctx context.Context, actorID uint) (employee.EmployeeResponse, error) {
	empl, err := s.employees.FindByID(ctx, actorID)
	if err != nil {
		return employee.EmployeeResponse{}, autherrors.ErrInvalidToken
	}
	return employee.ToResponse(*empl), nil
}

func (s *service) issueTokens(empl *employee.Employee) (TokenPair, error) {
	access, err := generateToken(empl, "access", accessTokenTTL)
	if err != nil {
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}

	refresh, err := generateToken(empl, "refresh", refreshTokenTTL)
	if err != nil {
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenPair{
		Token:        access,
		RefreshToken: refresh,
		Employee:     employee.ToResponse(*empl),
	}, nil
}

func generateToken(empl *employee.Employee, typ string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"employee_id":   empl.ID,
		"employee_code": empl.EmployeeCode,
		"role":          string(empl.Role),
		"typ":           typ,
		"exp":           time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
