package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	pkgerrors "github.com/pkg/errors"
)

func TestSanitizeKey(t *testing.T) {
	cases := map[string]string{
		"posts/a.webp":      "posts/a.webp",
		"/posts/a.webp":     "posts/a.webp",
		"./posts//a.webp":   "posts/a.webp",
		"posts\\x\\a.webp":  "posts/x/a.webp",
		"posts/../a.webp":   "a.webp",
	}
	for in, want := range cases {
		got, err := sanitizeKey(in)
		if err != nil {
			t.Fatalf("sanitizeKey(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("sanitizeKey(%q) = %q, want %q", in, got, want)
		}
	}
	for _, bad := range []string{"", "  ", "../etc/passwd", "..", "."} {
		if _, err := sanitizeKey(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestFileStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	url, err := store.Save(context.Background(), "posts/img.webp", []byte("data"), "image/webp")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if url != "/uploads/posts/img.webp" {
		t.Fatalf("unexpected url %q", url)
	}
	got, err := os.ReadFile(filepath.Join(dir, "posts", "img.webp"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(got) != "data" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestFileStoreSave_RespectsCanceledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Save(ctx, "a.webp", []byte("x"), ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewImageKey(t *testing.T) {
	key := NewImageKey("/posts/")
	if !strings.HasPrefix(key, "posts/") || !strings.HasSuffix(key, ".webp") {
		t.Fatalf("unexpected key %q", key)
	}
	if NewImageKey("posts") == NewImageKey("posts") {
		t.Fatal("keys should be unique")
	}
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3StoreSave(t *testing.T) {
	fake := &fakePutter{}
	store := &S3Store{client: fake, bucket: "asafs-media", region: "eu-west-3"}

	url, err := store.Save(context.Background(), "/posts/img.webp", []byte("webp"), "image/webp")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if url != "https://asafs-media.s3.eu-west-3.amazonaws.com/posts/img.webp" {
		t.Fatalf("unexpected url %q", url)
	}
	if aws.ToString(fake.input.Bucket) != "asafs-media" || aws.ToString(fake.input.Key) != "posts/img.webp" {
		t.Fatalf("unexpected input bucket=%q key=%q", aws.ToString(fake.input.Bucket), aws.ToString(fake.input.Key))
	}
	if aws.ToString(fake.input.ContentType) != "image/webp" || string(fake.body) != "webp" {
		t.Fatal("content type or body not forwarded")
	}
}

func TestS3StoreSave_WrapsErrors(t *testing.T) {
	boom := errors.New("access denied")
	store := &S3Store{client: &fakePutter{err: boom}, bucket: "b", region: "r"}
	_, err := store.Save(context.Background(), "k.webp", nil, "")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	var st interface{ StackTrace() pkgerrors.StackTrace }
	if !errors.As(err, &st) || len(st.StackTrace()) == 0 {
		t.Fatalf("expected a stack on %v", err)
	}
}
