package wechat

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// Session is what the code2session exchange yields for a login code.
type Session struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid"`
	ErrCode    int    `json:"errcode"`
	ErrMsg     string `json:"errmsg"`
}

// Client exchanges a WeChat login code for an identity. The real exchange
// is an external collaborator; everything else in this codebase depends
// only on this interface.
//
//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=mock
type Client interface {
	CodeToSession(ctx context.Context, code string) (Session, error)
}

const sessionURL = "https://api.weixin.qq.com/sns/jscode2session"

type restyClient struct {
	http   *resty.Client
	appID  string
	secret string
}

// NewClient builds the production client. WECHAT_APPID / WECHAT_SECRET
// come from the environment.
func NewClient() Client {
	return &restyClient{
		http:   resty.New().SetTimeout(5 * time.Second),
		appID:  os.Getenv("WECHAT_APPID"),
		secret: os.Getenv("WECHAT_SECRET"),
	}
}

func (c *restyClient) CodeToSession(ctx context.Context, code string) (Session, error) {
	var session Session

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"appid":      c.appID,
			"secret":     c.secret,
			"js_code":    code,
			"grant_type": "authorization_code",
		}).
		SetResult(&session).
		Get(sessionURL)
	if err != nil {
		return Session{}, err
	}
	if resp.IsError() {
		return Session{}, fmt.Errorf("wechat code2session: status %d", resp.StatusCode())
	}
	if session.ErrCode != 0 {
		return Session{}, fmt.Errorf("wechat code2session: %d %s", session.ErrCode, session.ErrMsg)
	}
	if session.OpenID == "" {
		return Session{}, fmt.Errorf("wechat code2session: empty openid")
	}

	return session, nil
}
