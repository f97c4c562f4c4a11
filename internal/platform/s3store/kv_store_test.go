package s3store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/phrazzld/flashdeck/internal/testutils/kvtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 is an in-memory bucket keyed by object key.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	keys    []string
	err     error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(append([]byte(nil), data...)))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Key)
	f.objects[key] = data
	f.keys = append(f.keys, key)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestKVStoreContract(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) store.KVStore {
		return NewKVStore(newFakeS3(), "flashcards", "")
	})
}

func TestKVStorePrefix(t *testing.T) {
	fake := newFakeS3()
	s := NewKVStore(fake, "flashcards", "devices/phone")

	require.NoError(t, s.Set(context.Background(), "flashcards:users", []byte(`[]`)))
	assert.Equal(t, []string{"devices/phone/flashcards:users"}, fake.keys)
}

func TestKVStoreBackendFailure(t *testing.T) {
	fake := newFakeS3()
	fake.err = &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}
	s := NewKVStore(fake, "flashcards", "")
	ctx := context.Background()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrStorage)
	assert.ErrorIs(t, s.Set(ctx, "k", []byte("v")), store.ErrStorage)
	assert.ErrorIs(t, s.Remove(ctx, "k"), store.ErrStorage)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&types.NoSuchKey{}))
	assert.True(t, isNotFound(&smithy.GenericAPIError{Code: "NotFound"}))
	assert.False(t, isNotFound(&smithy.GenericAPIError{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("boom")))
}

func TestNewClient(t *testing.T) {
	orig := loadDefaultConfig
	defer func() { loadDefaultConfig = orig }()

	var gotOpts int
	loadDefaultConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		gotOpts = len(optFns)
		return aws.Config{Region: "us-east-1"}, nil
	}

	client, err := NewClient(context.Background(), Config{
		Bucket:          "flashcards",
		Region:          "us-east-1",
		Endpoint:        "http://127.0.0.1:9000",
		AccessKeyID:     "admin",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, 2, gotOpts)

	loadDefaultConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no region")
	}
	_, err = NewClient(context.Background(), Config{})
	assert.Error(t, err)
}
