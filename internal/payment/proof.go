package payment

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
)

const MaxProofSize = 5 << 20 // 5 MB

var (
	ErrProofTooLarge = errors.New("ukuran file maksimal 5 MB")
	ErrProofBadType  = errors.New("format file harus JPG, PNG, atau PDF")
)

var allowedProofTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

var allowedProofExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// ProofFile is an uploaded proof-of-payment, validated before any network
// call is made.
type ProofFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader
}

func (p ProofFile) Validate() error {
	if p.Size > MaxProofSize {
		return ErrProofTooLarge
	}

	if p.ContentType != "" {
		if !allowedProofTypes[p.ContentType] {
			return ErrProofBadType
		}
		return nil
	}

	// Some clients omit the content type; fall back to the extension.
	ext := strings.ToLower(filepath.Ext(p.Filename))
	if !allowedProofExtensions[ext] {
		return ErrProofBadType
	}
	return nil
}
