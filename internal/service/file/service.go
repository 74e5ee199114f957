package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

// avatarContentTypes doubles as the upload allow-list.
var avatarContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

const avatarURLExpiry = 15 * time.Minute

type FileService interface {
	// UploadAvatar stores an avatar image and returns its storage path
	UploadAvatar(ctx context.Context, userID string, file io.Reader, filename string) (string, error)

	// DeleteAvatar removes a stored avatar; an empty path is a no-op
	DeleteAvatar(ctx context.Context, path string) error

	// OpenAvatar streams a stored avatar with its content type
	OpenAvatar(ctx context.Context, path string) (io.ReadCloser, string, error)

	// AvatarURL resolves the public URL of a stored avatar
	AvatarURL(ctx context.Context, path string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadAvatar uploads a user avatar image
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := avatarContentTypes[ext]
	if !ok {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	// Generate unique filename
	newFilename := fmt.Sprintf("%s-%s%s", userID, uuid.New().String(), ext)
	path := filepath.Join("avatars", userID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return uploadedPath, nil
}

// DeleteAvatar removes the stored object behind a previously uploaded
// avatar. Called when an avatar is replaced or its user is deleted.
func (s *fileServiceImpl) DeleteAvatar(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := s.storage.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete avatar: %w", err)
	}
	return nil
}

// OpenAvatar opens a stored avatar for streaming to a client
func (s *fileServiceImpl) OpenAvatar(ctx context.Context, path string) (io.ReadCloser, string, error) {
	reader, err := s.storage.Download(ctx, path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open avatar: %w", err)
	}

	contentType, ok := avatarContentTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		contentType = "application/octet-stream"
	}
	return reader, contentType, nil
}

// AvatarURL generates the URL a client can fetch the avatar from
func (s *fileServiceImpl) AvatarURL(ctx context.Context, path string) (string, error) {
	url, err := s.storage.GetURL(ctx, path, avatarURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to resolve avatar url: %w", err)
	}
	return url, nil
}
