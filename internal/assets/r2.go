// Package assets uploads scanned album covers to the R2 bucket under the
// same object names the covers package builds URLs for.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"americanclave/internal/covers"
	"americanclave/pkg/utils"
)

// Putter is the one S3 call the uploader needs; *s3.Client satisfies it.
type Putter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader writes cover images into one bucket.
type Uploader struct {
	client Putter
	bucket string
	covers covers.Builder
}

// NewUploader wraps an existing client.
func NewUploader(client Putter, bucket string, b covers.Builder) *Uploader {
	return &Uploader{client: client, bucket: bucket, covers: b}
}

// NewR2Uploader builds an S3 client for the R2 endpoint using the static
// credentials from cfg.
func NewR2Uploader(ctx context.Context, cfg utils.R2) (*Uploader, error) {
	if err := cfg.UploadReady(); err != nil {
		return nil, err
	}
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String(cfg.Endpoint)
	})
	return NewUploader(client, cfg.Bucket, covers.NewBuilder(cfg.PublicURL)), nil
}

// Uploaded is one stored cover.
type Uploaded struct {
	Position string
	Key      string
	URL      string
}

// UploadFile stores the JPEG at path as the cover of catalogRaw at position.
func (u *Uploader) UploadFile(ctx context.Context, catalogRaw, position, path string) (Uploaded, error) {
	f, err := os.Open(path)
	if err != nil {
		return Uploaded{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	key := covers.FileName(catalogRaw, position)
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         f,
		ContentType:  aws.String("image/jpeg"),
		CacheControl: aws.String("public, max-age=86400"),
	})
	if err != nil {
		return Uploaded{}, fmt.Errorf("put %s: %w", key, err)
	}
	return Uploaded{Position: position, Key: key, URL: u.covers.CoverURL(catalogRaw, position)}, nil
}

// UploadDir uploads every standard position found in dir as
// "{position}.jpg" (front.jpg, inside&back.jpg, 1.jpg ...). Missing
// positions are skipped; the first failing upload stops the run.
func (u *Uploader) UploadDir(ctx context.Context, catalogRaw, dir string) ([]Uploaded, error) {
	if _, ok := covers.ExtractCanonicalCatno(catalogRaw); !ok {
		return nil, fmt.Errorf("catalog %q has no digits to derive a cover key from", catalogRaw)
	}
	var out []Uploaded
	for _, pos := range covers.StandardPositions {
		path := filepath.Join(dir, pos+".jpg")
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return out, fmt.Errorf("stat %s: %w", path, err)
		}
		up, err := u.UploadFile(ctx, catalogRaw, pos, path)
		if err != nil {
			return out, err
		}
		log.Printf("[assets] uploaded %s", up.Key)
		out = append(out, up)
	}
	return out, nil
}
