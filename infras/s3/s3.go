package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
)

const (
	otelAttrFileName  = "file_name"
	otelAttrBucket    = "bucket"
	otelAttrDirectory = "directory"

	defaultRegion = "auto"
)

// Object is a stored file as listed from the bucket.
type Object struct {
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

type S3 interface {
	UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
	ListFiles(ctx context.Context, bucketName, directory string) ([]Object, error)
}

type s3Impl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFileBytes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName = svc.bucket(bucketName)

	scope.SetAttributes(map[string]any{
		otelAttrFileName: fileName,
		otelAttrBucket:   bucketName,
	})

	objectKey := path.Join(directory, fileName)
	fileReader := bytes.NewReader(fileData)

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(objectKey),
		Body:          fileReader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileReader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return svc.publicURL(objectKey), nil
}

func (svc *s3Impl) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName = svc.bucket(bucketName)

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectName,
		otelAttrBucket:   bucketName,
	})

	objectKey := path.Join(directory, objectName)

	_, err = svc.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// ListFiles returns every object under directory, following continuation tokens.
func (svc *s3Impl) ListFiles(ctx context.Context, bucketName, directory string) (res []Object, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".ListFiles")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName = svc.bucket(bucketName)

	scope.SetAttributes(map[string]any{
		otelAttrDirectory: directory,
		otelAttrBucket:    bucketName,
	})

	prefix := strings.TrimSuffix(directory, "/")
	if prefix != "" {
		prefix += "/"
	}

	paginator := s3.NewListObjectsV2Paginator(svc.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to list files from S3")

			return nil, fmt.Errorf("failed to list files from S3: %w", err)
		}

		for _, item := range page.Contents {
			key := aws.ToString(item.Key)

			res = append(res, Object{
				Key:          key,
				URL:          svc.publicURL(key),
				Size:         aws.ToInt64(item.Size),
				LastModified: aws.ToTime(item.LastModified),
			})
		}
	}

	return res, nil
}

func (svc *s3Impl) bucket(bucketName string) string {
	if bucketName == "" {
		return svc.Config.External.S3.BucketName
	}

	return bucketName
}

func (svc *s3Impl) publicURL(objectKey string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(svc.Config.External.S3.PublicDomain, "/"), objectKey)
}

func New(config *config.Config, otel otel.Otel) S3 {
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
		region = defaultRegion
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.External.S3.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		}
		o.UsePathStyle = true
		o.Region = region
	})

	return &s3Impl{
		Client: s3Client,
		Config: config,
		otel:   otel,
	}
}
