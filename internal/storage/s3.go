package storage

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// Uploader stores inline image payloads on an external object store and
// hands back the public URL that gets persisted in their place.
type Uploader interface {
	UploadDataURI(uri string) (string, error)
	Delete(url string) error
}

type S3Client struct {
	s3      *s3.S3
	bucket  string
	baseURL string
}

func NewS3Client(region, bucket string) (*S3Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	return &S3Client{
		s3:      s3.New(sess),
		bucket:  bucket,
		baseURL: fmt.Sprintf("https://%s.s3.amazonaws.com/", bucket),
	}, nil
}

func (c *S3Client) UploadDataURI(uri string) (string, error) {
	mediaType, data, err := DecodeDataURI(uri)
	if err != nil {
		return "", err
	}

	key := "img/" + uuid.NewString() + extForMediaType(mediaType)
	_, err = c.s3.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(mediaType),
	})
	if err != nil {
		return "", err
	}

	return c.baseURL + key, nil
}

// Delete removes a previously uploaded object. URLs outside this bucket
// are left alone.
func (c *S3Client) Delete(url string) error {
	key, ok := strings.CutPrefix(url, c.baseURL)
	if !ok {
		return nil
	}
	_, err := c.s3.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	return err
}
