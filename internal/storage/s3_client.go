package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const transcriptPrefix = "transcripts"

type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

// ObjectPutter is the subset of *s3.Client used here.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Client struct {
	cfg S3Config
	s3  ObjectPutter
}

func NewClient(ctx context.Context, cfg S3Config) (*Client, error) {
	if cfg.Region == "" || cfg.Bucket == "" {
		return nil, errors.New("s3 region and bucket are required")
	}

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewClientWithAPI(cfg, s3Client), nil
}

// NewClientWithAPI wires an already-built S3 API, e.g. a fake in tests.
func NewClientWithAPI(cfg S3Config, api ObjectPutter) *Client {
	return &Client{cfg: cfg, s3: api}
}

// TranscriptKey builds transcripts/<index>/<uuid>-<file>. Directory parts of
// fileName are dropped so a client cannot choose the prefix.
func TranscriptKey(indexName, fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload.docx"
	}
	index := path.Base(strings.Trim(indexName, "/"))
	if index == "." || index == ".." || index == "/" {
		index = "unassigned"
	}
	return path.Join(transcriptPrefix, index, uuid.NewString()+"-"+base)
}

// PutTranscript stores the raw uploaded document and returns its object key.
func (c *Client) PutTranscript(ctx context.Context, indexName, fileName, contentType string, content []byte) (string, error) {
	if c == nil {
		return "", errors.New("s3 client not initialized")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := TranscriptKey(indexName, fileName)
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(content))),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return key, nil
}
