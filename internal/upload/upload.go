package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// MaxFileSize caps uploads at 4MB.
const MaxFileSize = 4 << 20

var (
	ErrNoFile       = errors.New("no file")
	ErrBadType      = errors.New("Only png/jpg/webp")
	ErrFileTooLarge = errors.New("File too large (max 4MB)")
)

// extensions by sniffed content type, not by whatever the client
// declared in the multipart headers.
var extByType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

type Saver struct {
	dir string
}

func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Saver{dir: dir}, nil
}

func (s *Saver) Dir() string {
	return s.dir
}

// Save validates size and sniffed MIME type, writes the file under a
// generated name and returns its relative path.
func (s *Saver) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	sniff = sniff[:n]

	contentType := http.DetectContentType(sniff)
	ext, ok := extByType[contentType]
	if !ok {
		return "", ErrBadType
	}

	name := "p_" + uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.Write(sniff); err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, io.LimitReader(file, MaxFileSize)); err != nil {
		return "", err
	}

	return "uploads/" + name, nil
}
