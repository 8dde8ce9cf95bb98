package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"couponscan/internal/models"
	"couponscan/internal/utils"
	"couponscan/pkg/logger"

	"gopkg.in/resty.v1"
)

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Token     TokenSource
}

type restyClient struct {
	http   *resty.Client
	token  TokenSource
	logger *logger.Logger
}

func NewClient(opts Options, log *logger.Logger) Client {
	c := resty.New().
		SetHostURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}

	return &restyClient{http: c, token: opts.Token, logger: log}
}

func (c *restyClient) request(ctx context.Context, authenticated bool) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if authenticated && c.token != nil {
		if token := c.token(ctx); token != "" {
			req.SetAuthToken(token)
		}
	}
	return req
}

// do runs the request and turns transport failures and non-2xx answers into
// errors. The body of a 2xx response is returned.
func (c *restyClient) do(req *resty.Request, method, path string) ([]byte, error) {
	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.WithError(err).WithField("endpoint", path).Warn("Backend request failed")
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	c.logger.LogAPIRequest(method, path, resp.StatusCode(), time.Since(start))

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		var body models.ErrorBody
		_ = json.Unmarshal(resp.Body(), &body)
		return nil, &StatusError{Code: resp.StatusCode(), Message: body.Message}
	}
	return resp.Body(), nil
}

func decode(body []byte, dest interface{}) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func (c *restyClient) Login(ctx context.Context, in *models.LoginRequest) (*models.LoginResponse, error) {
	body, err := c.do(c.request(ctx, false).SetHeader("Content-Type", "application/json").SetBody(in), resty.MethodPost, utils.PathLogin)
	if err != nil {
		return nil, err
	}

	var out models.LoginResponse
	if err := decode(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restyClient) Register(ctx context.Context, in *models.RegisterRequest) error {
	_, err := c.do(c.request(ctx, false).SetHeader("Content-Type", "application/json").SetBody(in), resty.MethodPost, utils.PathRegister)
	return err
}

func (c *restyClient) CheckCoupon(ctx context.Context, code string) (*models.CouponCheckResponse, error) {
	body, err := c.do(c.request(ctx, true), resty.MethodGet, utils.PathCouponCheck+url.PathEscape(code))
	if err != nil {
		return nil, err
	}

	var out models.CouponCheckResponse
	if err := decode(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restyClient) CreateRedemption(ctx context.Context, record *models.RedemptionRecord) error {
	_, err := c.do(c.request(ctx, true).SetHeader("Content-Type", "application/json").SetBody(record), resty.MethodPost, utils.PathRedemption)
	return err
}

func (c *restyClient) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	body, err := c.do(c.request(ctx, true).SetFileReader(utils.UploadFormField, filename, r), resty.MethodPost, utils.PathUploadImage)
	if err != nil {
		return "", err
	}

	link := strings.TrimSpace(string(body))
	if link == "" {
		return "", fmt.Errorf("%w: empty upload url", ErrDecode)
	}
	return link, nil
}
