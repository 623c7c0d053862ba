// SPDX-License-Identifier: MIT

package matrixio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pierrec/lz4/v4"
)

const s3Scheme = "s3://"

// S3Options describes an S3-compatible endpoint.
type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Secure    bool
}

// Options configures Open and Load.
type Options struct {
	S3     S3Options
	Client *minio.Client
}

// Option mutates Options.
type Option func(*Options)

// WithS3 sets the endpoint used to build a client for s3:// sources.
func WithS3(o S3Options) Option {
	return func(opts *Options) { opts.S3 = o }
}

// WithClient injects a ready minio client; it takes precedence over WithS3.
func WithClient(c *minio.Client) Option {
	return func(opts *Options) { opts.Client = c }
}

// Open resolves src to a reader of decompressed matrix text.
// The caller must Close the result.
//
// Errors: ErrInvalidSource for a bad s3:// location or a missing endpoint,
// ErrNotFound when the object does not exist, and os errors for local files.
func Open(ctx context.Context, src string, opts ...Option) (io.ReadCloser, error) {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}

	var (
		raw io.ReadCloser
		err error
	)
	if strings.HasPrefix(src, s3Scheme) {
		raw, err = openObject(ctx, src, o)
	} else {
		raw, err = os.Open(src)
	}
	if err != nil {
		return nil, fmt.Errorf("matrixio.Open: %w", err)
	}

	rc, err := decompress(src, raw)
	if err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("matrixio.Open: %s: %w", src, err)
	}

	return rc, nil
}

// SplitS3 splits "s3://bucket/key" into bucket and key.
func SplitS3(src string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(src, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("%q: missing %s: %w", src, s3Scheme, ErrInvalidSource)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%q: want s3://bucket/key: %w", src, ErrInvalidSource)
	}

	return bucket, key, nil
}

func openObject(ctx context.Context, src string, o Options) (io.ReadCloser, error) {
	bucket, key, err := SplitS3(src)
	if err != nil {
		return nil, err
	}
	client := o.Client
	if client == nil {
		if o.S3.Endpoint == "" {
			return nil, fmt.Errorf("%s: no storage endpoint configured: %w", src, ErrInvalidSource)
		}
		client, err = minio.New(o.S3.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(o.S3.AccessKey, o.S3.SecretKey, ""),
			Secure: o.S3.Secure,
			Region: o.S3.Region,
		})
		if err != nil {
			return nil, err
		}
	}

	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectError(src, err)
	}
	// GetObject is lazy; Stat surfaces a missing key before parsing starts.
	if _, err = obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, objectError(src, err)
	}

	return obj, nil
}

func objectError(src string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NotFound" || resp.Code == "NoSuchBucket" {
		return fmt.Errorf("%s: %w", src, ErrNotFound)
	}

	return fmt.Errorf("%s: %w", src, err)
}

// decompress wraps raw according to the extension of src.
func decompress(src string, raw io.ReadCloser) (io.ReadCloser, error) {
	switch strings.ToLower(path.Ext(src)) {
	case ".gz":
		zr, err := gzip.NewReader(raw)
		if err != nil {
			return nil, err
		}
		return &stack{Reader: zr, closers: []io.Closer{zr, raw}}, nil
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(raw)
		if err != nil {
			return nil, err
		}
		return &stack{Reader: dec, closers: []io.Closer{dec.IOReadCloser(), raw}}, nil
	case ".lz4":
		return &stack{Reader: lz4.NewReader(raw), closers: []io.Closer{raw}}, nil
	default:
		return raw, nil
	}
}

// stack reads from the outermost decoder and closes every layer.
type stack struct {
	io.Reader
	closers []io.Closer
}

func (s *stack) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}
