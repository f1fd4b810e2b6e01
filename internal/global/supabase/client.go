// Package supabase 是 PostgREST 接口的精简客户端
// 只实现打卡数据需要的几种调用：过滤查询、插入、按唯一键合并写入、删除
package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"wakeup-punch-system/internal/global/httpclient"
)

const (
	// CodeNoRows 单行查询没有命中
	CodeNoRows = "PGRST116"
	// CodeUniqueViolation postgres 唯一约束冲突
	CodeUniqueViolation = "23505"

	singleObject = "application/vnd.pgrst.object+json"
)

// APIError PostgREST 的错误响应体
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase %d %s: %s", e.Status, e.Code, e.Message)
}

// IsCode 判断 err 是否为指定 code 的 PostgREST 错误
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

type Client struct {
	rest *resty.Client
}

func New(projectURL, apiKey string) *Client {
	rest := httpclient.New(10*time.Second).
		SetBaseURL(strings.TrimRight(projectURL, "/")+"/rest/v1").
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &Client{rest: rest}
}

// Query PostgREST 的过滤条件，同一列可以出现多次（例如日期区间）
type Query struct {
	values url.Values
}

func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

func (q *Query) filter(column, op, value string) *Query {
	q.values.Add(column, op+"."+value)
	return q
}

func (q *Query) Eq(column, value string) *Query  { return q.filter(column, "eq", value) }
func (q *Query) Gte(column, value string) *Query { return q.filter(column, "gte", value) }
func (q *Query) Lt(column, value string) *Query  { return q.filter(column, "lt", value) }

// Order 例如 Order("date.asc")
func (q *Query) Order(order string) *Query {
	q.values.Set("order", order)
	return q
}

func (q *Query) Values() url.Values {
	if q == nil {
		return url.Values{}
	}
	return q.values
}

func (c *Client) request(ctx context.Context, q *Query) *resty.Request {
	return c.rest.R().SetContext(ctx).SetQueryParamsFromValues(q.Values())
}

func (c *Client) do(req *resty.Request, method, table string) (*resty.Response, error) {
	apiErr := &APIError{}
	resp, err := req.SetError(apiErr).Execute(method, "/"+url.PathEscape(table))
	if err != nil {
		return nil, errors.Wrapf(err, "supabase %s %s", method, table)
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		if apiErr.Message == "" {
			apiErr.Message = resp.Status()
		}
		return resp, errors.WithStack(apiErr)
	}
	return resp, nil
}

// Select 结果写入 out（切片指针）
func (c *Client) Select(ctx context.Context, table string, q *Query, out any) error {
	_, err := c.do(c.request(ctx, q).SetResult(out), http.MethodGet, table)
	return err
}

// SelectOne 只取一行，没有命中时返回 false
func (c *Client) SelectOne(ctx context.Context, table string, q *Query, out any) (bool, error) {
	req := c.request(ctx, q).SetHeader("Accept", singleObject).SetResult(out)
	if _, err := c.do(req, http.MethodGet, table); err != nil {
		if IsCode(err, CodeNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Insert 插入一行并把写入后的行写回 out
func (c *Client) Insert(ctx context.Context, table string, body, out any) error {
	req := c.request(ctx, nil).
		SetHeader("Prefer", "return=representation").
		SetHeader("Accept", singleObject).
		SetBody(body).
		SetResult(out)
	_, err := c.do(req, http.MethodPost, table)
	return err
}

// Upsert 按 onConflict 指定的唯一键合并写入，body 中没有的列保持原值
func (c *Client) Upsert(ctx context.Context, table, onConflict string, body, out any) error {
	req := c.rest.R().SetContext(ctx).
		SetQueryParam("on_conflict", onConflict).
		SetHeader("Prefer", "resolution=merge-duplicates,return=representation").
		SetHeader("Accept", singleObject).
		SetBody(body).
		SetResult(out)
	_, err := c.do(req, http.MethodPost, table)
	return err
}

// Delete 返回删除的行数
func (c *Client) Delete(ctx context.Context, table string, q *Query) (int64, error) {
	var rows []map[string]any
	req := c.request(ctx, q).
		SetHeader("Prefer", "return=representation").
		SetResult(&rows)
	if _, err := c.do(req, http.MethodDelete, table); err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}
