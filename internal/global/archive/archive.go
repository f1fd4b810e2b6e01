// Package archive 把导出的报表上传到 S3 兼容的对象存储，并返回预签名下载地址
package archive

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"wakeup-punch-system/config"
)

// Object 已归档的文件
type Object struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Archive 导出模块依赖的归档能力
type Archive interface {
	Put(ctx context.Context, filename, contentType string, body io.Reader) (*Object, error)
}

type S3 struct {
	bucket   string
	prefix   string
	expires  time.Duration
	uploader *manager.Uploader
	presign  *s3.PresignClient
	now      func() time.Time
}

// New Bucket 为空时返回 nil, nil，导出文件直接回给客户端
func New(ctx context.Context, c config.S3) (*S3, error) {
	if c.Bucket == "" {
		return nil, nil
	}
	region := c.Region
	if region == "" {
		region = "us-east-1"
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if c.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretAccessKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "加载 S3 配置失败")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = c.UsePathStyle
	})
	expires := time.Duration(c.PresignMinutes) * time.Minute
	if expires <= 0 {
		expires = time.Hour
	}
	return &S3{
		bucket:   c.Bucket,
		prefix:   strings.Trim(c.Prefix, "/"),
		expires:  expires,
		uploader: manager.NewUploader(client),
		presign:  s3.NewPresignClient(client),
		now:      time.Now,
	}, nil
}

func (a *S3) key(filename string) string {
	name := fmt.Sprintf("%d-%s", a.now().UnixNano(), path.Base(filename))
	return strings.TrimLeft(path.Join(a.prefix, name), "/")
}

// Put 上传后生成有效期为 presign_minutes 的下载地址
func (a *S3) Put(ctx context.Context, filename, contentType string, body io.Reader) (*Object, error) {
	key := a.key(filename)
	_, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(a.bucket),
		Key:                aws.String(key),
		Body:               body,
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", path.Base(filename))),
	})
	if err != nil {
		return nil, errors.Wrap(err, "上传归档文件失败")
	}

	req, err := a.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(a.expires))
	if err != nil {
		return nil, errors.Wrap(err, "生成下载地址失败")
	}
	return &Object{Key: key, URL: req.URL, ExpiresAt: a.now().Add(a.expires)}, nil
}
