package file

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: map[string][]byte{}}
}

func (s *fakeStorage) Upload(_ context.Context, file io.Reader, path string, _ string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.files[path] = data
	return path, nil
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) GetURL(_ context.Context, path string) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func (s *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

func TestUploadAttendancePhoto(t *testing.T) {
	storage := newFakeStorage()
	svc := NewFileService(storage)
	date := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)

	path, err := svc.UploadAttendancePhoto(context.Background(), "emp-1", date, strings.NewReader("jpeg-bytes"), "selfie.JPG", "check-in")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("attendance", "emp-1", "2026-03-02"), filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "check-in-"))
	assert.Equal(t, ".jpg", filepath.Ext(path))
	assert.Equal(t, []byte("jpeg-bytes"), storage.files[path])
}

func TestUploadAttendancePhotoRejectsExtension(t *testing.T) {
	svc := NewFileService(newFakeStorage())
	date := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)

	_, err := svc.UploadAttendancePhoto(context.Background(), "emp-1", date, strings.NewReader("x"), "document.pdf", "check-in")
	assert.Error(t, err)
}

func TestGetFileURL(t *testing.T) {
	storage := newFakeStorage()
	svc := NewFileService(storage)
	date := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)

	path, err := svc.UploadAttendancePhoto(context.Background(), "emp-1", date, strings.NewReader("png-bytes"), "selfie.png", "check-out")
	require.NoError(t, err)

	url, err := svc.GetFileURL(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/"+path, url)

	// A path that was never stored resolves to no URL.
	_, err = svc.GetFileURL(context.Background(), "attendance/emp-1/2026-03-02/missing.jpg")
	assert.Error(t, err)
}
