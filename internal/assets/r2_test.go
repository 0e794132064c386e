package assets

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"americanclave/internal/covers"
	"americanclave/pkg/utils"
)

type fakePutter struct {
	objects map[string][]byte
	types   map[string]string
	err     error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
		f.types = map[string]string{}
	}
	f.objects[*in.Bucket+"/"+*in.Key] = body
	f.types[*in.Key] = *in.ContentType
	return &s3.PutObjectOutput{}, nil
}

func writeScans(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("jpeg:"+n), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestUploadDir(t *testing.T) {
	fake := &fakePutter{}
	u := NewUploader(fake, "covers", covers.NewBuilder("https://r2.example"))
	dir := writeScans(t, "front.jpg", "inside&back.jpg", "3.jpg", "notes.txt")

	got, err := u.UploadDir(context.Background(), "AMCL 1004", dir)
	if err != nil {
		t.Fatalf("UploadDir: %v", err)
	}
	want := []Uploaded{
		{Position: "front", Key: "1004_front_cropped.jpg", URL: "https://r2.example/1004_front_cropped.jpg"},
		{Position: "inside&back", Key: "1004_inside&back_cropped.jpg", URL: "https://r2.example/1004_inside&back_cropped.jpg"},
		{Position: "3", Key: "1004_3_cropped.jpg", URL: "https://r2.example/1004_3_cropped.jpg"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("UploadDir =\n%+v\nwant\n%+v", got, want)
	}
	if string(fake.objects["covers/1004_front_cropped.jpg"]) != "jpeg:front.jpg" {
		t.Errorf("front body = %q", fake.objects["covers/1004_front_cropped.jpg"])
	}
	if fake.types["1004_3_cropped.jpg"] != "image/jpeg" {
		t.Errorf("content type = %q", fake.types["1004_3_cropped.jpg"])
	}
}

func TestUploadDirRejectsUnkeyableCatalog(t *testing.T) {
	u := NewUploader(&fakePutter{}, "covers", covers.NewBuilder("https://r2.example"))
	if _, err := u.UploadDir(context.Background(), "SPECIAL EDITION", t.TempDir()); err == nil {
		t.Fatal("want error for catalog without digits")
	}
}

func TestUploadDirStopsOnError(t *testing.T) {
	boom := errors.New("denied")
	u := NewUploader(&fakePutter{err: boom}, "covers", covers.NewBuilder("https://r2.example"))
	dir := writeScans(t, "front.jpg", "back.jpg")

	got, err := u.UploadDir(context.Background(), "SJR LP36", dir)
	if !errors.Is(err, boom) || len(got) != 0 {
		t.Fatalf("got %v, %v; want wrapped denial", got, err)
	}
}

func TestNewR2UploaderNeedsCredentials(t *testing.T) {
	if _, err := NewR2Uploader(context.Background(), utils.R2{Bucket: "covers"}); err == nil {
		t.Fatal("want error for missing upload settings")
	}
}
