package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/infrastructure/database"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase/interfaces"
)

const defaultUploadExpiry = 15 * time.Minute

var ErrMissingImagesBucket = errors.New("missing VEHICLE_IMAGES_BUCKET")

// S3ObjectStore issues presigned upload slots for vehicle images/documents
// and removes objects when a vehicle is deleted. The engine only ever
// handles object keys; bytes go straight from the browser to S3.
//
// Env vars:
//   - VEHICLE_IMAGES_BUCKET (required)
//   - VEHICLE_IMAGES_PUBLIC_BASE_URL (optional; default virtual-hosted URL)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000 for local stacks)

type S3ObjectStore struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	publicURL string
}

var _ interfaces.IObjectStore = (*S3ObjectStore)(nil)

func NewS3ObjectStore(ctx context.Context) (*S3ObjectStore, error) {
	bucket := strings.TrimSpace(os.Getenv("VEHICLE_IMAGES_BUCKET"))
	if bucket == "" {
		return nil, ErrMissingImagesBucket
	}

	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}

	var client *s3.Client
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		client = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(cfg)
	}

	publicURL := strings.TrimRight(os.Getenv("VEHICLE_IMAGES_PUBLIC_BASE_URL"), "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
	}

	return &S3ObjectStore{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		publicURL: publicURL,
	}, nil
}

func (s *S3ObjectStore) RequestUploadSlot(ctx context.Context, vehicleID, imageType, fileName, mimeType string) (interfaces.UploadSlot, error) {
	imageType = strings.TrimSpace(imageType)
	if imageType == "" {
		imageType = "gallery"
	}

	key := fmt.Sprintf("vehicles/%s/%s/%s%s", vehicleID, imageType, uuid.NewString(), path.Ext(fileName))

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(mimeType),
	}, s3.WithPresignExpires(defaultUploadExpiry))
	if err != nil {
		return interfaces.UploadSlot{}, err
	}

	log.Printf("[storage][s3] upload slot issued vehicle_id=%s key=%s", vehicleID, key)
	return interfaces.UploadSlot{
		UploadURL: req.URL,
		PublicURL: s.publicURL + "/" + (&url.URL{Path: key}).EscapedPath(),
		Key:       key,
	}, nil
}

func (s *S3ObjectStore) DeleteObjects(ctx context.Context, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	objects := make([]s3types.ObjectIdentifier, 0, len(keys))
	for _, k := range keys {
		objects = append(objects, s3types.ObjectIdentifier{Key: aws.String(k)})
	}

	out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &s3types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return keys, err
	}

	var failed []string
	for _, e := range out.Errors {
		if e.Key != nil {
			failed = append(failed, *e.Key)
		}
	}
	if len(failed) > 0 {
		log.Printf("[storage][s3] partial delete bucket=%s failed=%d of %d", s.bucket, len(failed), len(keys))
	}
	return failed, nil
}
