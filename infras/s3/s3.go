package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"pmsbridge/config"
	"pmsbridge/infras/otel"
	"pmsbridge/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

// ObjectPutter is the subset of the S3 client the archive writes through.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archive stores raw inbound webhook bodies.
type Archive interface {
	Enabled() bool
	StorePayload(ctx context.Context, receivedAt time.Time, body []byte) (key string, err error)
}

type archiveImpl struct {
	client ObjectPutter
	bucket string
	prefix string
	otel   otel.Otel
}

func (svc *archiveImpl) Enabled() bool {
	return svc.client != nil
}

// StorePayload writes body to {prefix}/{YYYY/MM/DD}/{uuid}.json.
func (svc *archiveImpl) StorePayload(ctx context.Context, receivedAt time.Time, body []byte) (key string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".StorePayload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if svc.client == nil {
		return constant.Empty, nil
	}

	key = ObjectKey(svc.prefix, receivedAt, uuid.NewString())

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	reader := bytes.NewReader(body)

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(constant.ContentTypeJSON),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to archive webhook payload")

		return constant.Empty, fmt.Errorf("failed to upload payload to S3: %w", err)
	}

	return key, nil
}

func ObjectKey(prefix string, receivedAt time.Time, id string) string {
	return path.Join(prefix, receivedAt.UTC().Format(constant.ArchiveDatePrefix), id+".json")
}

func NewArchive(client ObjectPutter, bucket, prefix string, ot otel.Otel) Archive {
	return &archiveImpl{
		client: client,
		bucket: bucket,
		prefix: prefix,
		otel:   ot,
	}
}

// New builds the archive from configuration. A disabled archive accepts and drops payloads.
func New(config *config.Config, ot otel.Otel) Archive {
	if !config.External.S3.Enable {
		return NewArchive(nil, constant.Empty, constant.Empty, ot)
	}

	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	region := config.External.S3.Region
	if region == "" {
		region = "auto"
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.External.S3.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
			o.UsePathStyle = true
		}
		o.Region = region
	})

	return NewArchive(client, config.External.S3.BucketName, config.External.S3.Prefix, ot)
}
