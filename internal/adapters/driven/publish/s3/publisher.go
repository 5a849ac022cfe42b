// Package s3 uploads finished reports to an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
)

// Ensure Publisher implements the interface.
var _ driven.ReportPublisher = (*Publisher)(nil)

// xlsxContentType is the MIME type of Office Open XML workbooks.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PutObjectAPI is the slice of the S3 client the publisher needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads report workbooks under <prefix><date>/<session>.xlsx.
type Publisher struct {
	client PutObjectAPI
	bucket string
	region string
	prefix string
}

// NewPublisher loads the default AWS credential chain for the configured region.
// Returns domain.ErrPublisherUnavailable when no bucket is configured.
func NewPublisher(ctx context.Context, settings domain.PublishSettings) (*Publisher, error) {
	if !settings.IsConfigured() {
		return nil, domain.ErrPublisherUnavailable
	}

	region := settings.Region
	if region == "" {
		region = domain.DefaultPublishRegion
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return NewPublisherWithClient(s3.NewFromConfig(cfg), settings.Bucket, region, settings.Prefix), nil
}

// NewPublisherWithClient creates a publisher around an existing client.
func NewPublisherWithClient(client PutObjectAPI, bucket, region, prefix string) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
	}
}

// Publish uploads the file at filePath and returns its HTTPS URL.
func (p *Publisher) Publish(ctx context.Context, report *domain.Report, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read report file: %w", err)
	}

	key := p.Key(report, filePath)
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(xlsxContentType),
		Metadata: map[string]string{
			"session-id":  report.SessionID,
			"report-date": report.Date,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3://%s/%s: %w", p.bucket, key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.bucket, p.region, key), nil
}

// Key returns the object key for a report.
func (p *Publisher) Key(report *domain.Report, filePath string) string {
	ext := filepath.Ext(filePath)
	if ext == "" {
		ext = ".xlsx"
	}
	date := report.Date
	if date == "" {
		date = "undated"
	}
	return p.prefix + path.Join(date, report.SessionID+ext)
}
