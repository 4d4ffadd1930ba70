// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage provides the S3-compatible object store used for category
images.

It wraps the AWS SDK v2 with path-style addressing so the same code talks to
AWS S3, Cloudflare R2 and MinIO. Objects are written with a public-read ACL
and referenced by their public URL.
*/
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Options configures a [Client].
type Options struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

// Client stores objects in a single bucket.
type Client struct {
	s3      *s3.Client
	bucket  string
	baseURL string
}

// New creates a storage client.
//
// It returns (nil, nil) when the bucket or the credentials are missing, so
// the API can start without uploads.
func New(options Options) (*Client, error) {
	if options.Bucket == "" || options.AccessKey == "" || options.SecretKey == "" {
		return nil, nil
	}

	endpoint := strings.TrimRight(options.Endpoint, "/")

	s3Options := s3.Options{
		Region:       options.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(options.AccessKey, options.SecretKey, ""),
		UsePathStyle: true,
	}
	if endpoint != "" {
		s3Options.BaseEndpoint = aws.String(endpoint)
	}

	baseURL := strings.TrimRight(options.PublicURL, "/")
	switch {
	case baseURL != "":
	case endpoint != "":
		baseURL = endpoint + "/" + options.Bucket
	default:
		baseURL = fmt.Sprintf("https://s3.%s.amazonaws.com/%s", options.Region, options.Bucket)
	}

	return &Client{
		s3:      s3.New(s3Options),
		bucket:  options.Bucket,
		baseURL: baseURL,
	}, nil
}

// Put uploads an object with a public-read ACL and returns its public URL.
func (client *Client) Put(context context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(client.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	}

	if _, err := client.s3.PutObject(context, input); err != nil {
		return "", fmt.Errorf("storage: upload %s/%s: %w", client.bucket, key, err)
	}
	return client.FileURL(key), nil
}

// Remove deletes the object behind a public URL. URLs that do not belong to
// this bucket are ignored.
func (client *Client) Remove(context context.Context, url string) error {
	key, ok := client.KeyFromURL(url)
	if !ok {
		return nil
	}

	_, err := client.s3.DeleteObject(context, &s3.DeleteObjectInput{
		Bucket: aws.String(client.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s/%s: %w", client.bucket, key, err)
	}
	return nil
}

// FileURL returns the public URL of key.
func (client *Client) FileURL(key string) string {
	return client.baseURL + "/" + key
}

// KeyFromURL extracts the object key from a URL produced by [Client.FileURL].
func (client *Client) KeyFromURL(url string) (string, bool) {
	prefix := client.baseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}
