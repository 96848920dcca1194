package upload

import (
	"context"
	"io"

	"github.com/newtype0092/uploadcare-go/uctypes"
)

// Direct performs a single-request upload of the entire source as a
// multipart form POST. The source is released on every exit path once the
// call finishes, success or not; sources that do not implement io.Closer
// are left untouched.
func (u *Uploader) Direct(
	ctx context.Context,
	source io.Reader,
	config *uctypes.UploadConfig,
) (*uctypes.UploadResult, error) {
	if closer, ok := source.(io.Closer); ok {
		defer closer.Close()
	}

	fields := u.authFields()
	fields[fieldStore] = string(config.Store)

	body, err := u.postForm(ctx, "directUpload", "base/", fields, &filePart{
		filename:    config.Filename,
		contentType: config.ContentType,
		data:        source,
	})
	if err != nil {
		return nil, err
	}

	id, err := u.decodeKey("directUpload", body, keyFile)
	if err != nil {
		return nil, err
	}
	return &uctypes.UploadResult{FileID: id}, nil
}
