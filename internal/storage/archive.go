package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/furqanmax/Simple-POS/internal/config"
)

// Archive uploads generated invoice PDFs to an S3-compatible bucket so that
// finalized paperwork survives the workstation. Disabled archives are valid:
// every method becomes a no-op and invoices stay local only.
type Archive struct {
	client *s3.Client
	bucket string
}

// NewArchive builds the S3 client from config. Returns a disabled archive
// (nil client) when archiving is switched off or misconfigured.
func NewArchive(cfg *appconfig.Config) *Archive {
	if !cfg.Archive.Enabled {
		return &Archive{}
	}
	if cfg.Archive.AccessKey == "" || cfg.Archive.SecretKey == "" || cfg.Archive.Bucket == "" {
		log.Println("[Archive] Archiving enabled but credentials or bucket missing, running without archive")
		return &Archive{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Archive.AccessKey,
			cfg.Archive.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Archive.Region),
	)
	if err != nil {
		log.Printf("[Archive] Failed to configure S3 client: %v", err)
		return &Archive{}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Archive.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Archive.Endpoint)
		}
	})

	log.Printf("[Archive] Invoice archive enabled, bucket %s", cfg.Archive.Bucket)
	return &Archive{client: client, bucket: cfg.Archive.Bucket}
}

// Enabled reports whether uploads actually go anywhere.
func (a *Archive) Enabled() bool {
	return a.client != nil
}

// StoreInvoice uploads one rendered invoice PDF under invoices/<year>/<name>.
func (a *Archive) StoreInvoice(ctx context.Context, filename string, pdf []byte) error {
	if a.client == nil {
		return nil
	}
	key := fmt.Sprintf("invoices/%d/%s", time.Now().Year(), filename)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("failed to archive invoice %s: %w", filename, err)
	}
	return nil
}

// FetchInvoice downloads a previously archived invoice PDF.
func (a *Archive) FetchInvoice(ctx context.Context, year int, filename string) ([]byte, error) {
	if a.client == nil {
		return nil, fmt.Errorf("archive disabled")
	}
	key := fmt.Sprintf("invoices/%d/%s", year, filename)
	result, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch archived invoice %s: %w", filename, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived invoice %s: %w", filename, err)
	}
	return data, nil
}
