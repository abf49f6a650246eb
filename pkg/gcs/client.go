package gcs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/storage/v1"
)

const defaultPublicHost = "https://storage.googleapis.com"

// Client wraps the Google Cloud Storage JSON API for a single bucket.
type Client struct {
	service       *storage.Service
	bucket        string
	publicBaseURL string
}

// NewClientFromCredentialsFile creates a client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string, cfg Config) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, cfg)
}

// NewClientFromCredentialsJSON creates a client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, cfg Config) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, storage.DevstorageReadWriteScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	svc, err := storage.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}
	return newClient(svc, cfg)
}

// NewClientFromDefaultCredentials creates a client using Application Default Credentials.
func NewClientFromDefaultCredentials(ctx context.Context, cfg Config) (*Client, error) {
	svc, err := storage.NewService(ctx, option.WithScopes(storage.DevstorageReadWriteScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}
	return newClient(svc, cfg)
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, cfg Config) (*Client, error) {
	svc, err := storage.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}
	return newClient(svc, cfg)
}

func newClient(svc *storage.Service, cfg Config) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("gcs: bucket is required")
	}
	base := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if base == "" {
		base = defaultPublicHost + "/" + cfg.Bucket
	}
	return &Client{service: svc, bucket: cfg.Bucket, publicBaseURL: base}, nil
}

// ObjectURL returns the public URL of the named object.
func (c *Client) ObjectURL(name string) string {
	return c.publicBaseURL + "/" + name
}

// Upload streams req.Body into the bucket under req.Name.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (Object, error) {
	obj := &storage.Object{
		Name:        req.Name,
		ContentType: req.ContentType,
	}

	created, err := c.service.Objects.Insert(c.bucket, obj).
		Media(req.Body, googleapi.ContentType(req.ContentType)).
		Context(ctx).
		Do()
	if err != nil {
		return Object{}, fmt.Errorf("failed to upload object %s: %w", req.Name, err)
	}

	return c.toObject(created), nil
}

// Delete removes the named object. Returns ErrObjectNotFound when it is already gone.
func (c *Client) Delete(ctx context.Context, name string) error {
	err := c.service.Objects.Delete(c.bucket, name).Context(ctx).Do()
	if err == nil {
		return nil
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return ErrObjectNotFound
	}
	return fmt.Errorf("failed to delete object %s: %w", name, err)
}

// List returns every object whose name starts with prefix.
func (c *Client) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	err := c.service.Objects.List(c.bucket).Prefix(prefix).Pages(ctx, func(page *storage.Objects) error {
		for _, o := range page.Items {
			objects = append(objects, c.toObject(o))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	return objects, nil
}

func (c *Client) toObject(o *storage.Object) Object {
	updated, _ := time.Parse(time.RFC3339, o.Updated)
	return Object{
		Name:       o.Name,
		URL:        c.ObjectURL(o.Name),
		Size:       int64(o.Size),
		Generation: o.Generation,
		Updated:    updated,
	}
}
