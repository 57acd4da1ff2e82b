package auth

import (
	"errors"
	"net/http"

	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide employee code and password", err.Error())
		return
	}

	pair, err := h.service.Login(c.Request.Context(), req.EmployeeCode, req.Password)
	if err != nil {
		// One message for unknown code and wrong password alike.
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, autherrors.ErrInvalidCredentials.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Login success", pair)
}

func (h *Handler) WechatLogin(c *gin.Context) {
	var req WechatLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid parameters", err.Error())
		return
	}

	pair, err := h.service.WechatLogin(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, autherrors.ErrAccountNotLinked) {
			// 200 with success=false: the mini-program treats this as a
			// prompt to log in with code and password first.
			response.Error(c, http.StatusOK, autherrors.ErrAccountNotLinked.Message, nil)
			return
		}
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Login success", pair)
}

func (h *Handler) BindWechat(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req BindWechatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid parameters", err.Error())
		return
	}

	if err := h.service.BindWechat(c.Request.Context(), actor.EmployeeID, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "WeChat account linked", nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Refresh token is required", nil)
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed", pair)
}

func (h *Handler) Me(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	resp, err := h.service.Me(c.Request.Context(), actor.EmployeeID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", resp)
}
