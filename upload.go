package ucare

import (
	"context"
	"io"
	"mime"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	ucerrors "github.com/newtype0092/uploadcare-go/errors"
	"github.com/newtype0092/uploadcare-go/internal/operations/upload"
	"github.com/newtype0092/uploadcare-go/internal/pool"
	"github.com/newtype0092/uploadcare-go/internal/validation"
	"github.com/newtype0092/uploadcare-go/uctypes"
)

// Upload sends the source to the upload API and returns the server-assigned
// file identifier. Files of 10 MiB and above go through the sequential
// multipart protocol; smaller files are sent in a single request. The choice
// is made once, from the byte size at submission time.
//
// The source must support rewinding to the start; it is read sequentially
// from the beginning, once for the size probe and once for the transfer.
// A source that implements io.Closer is closed by the direct path on every
// exit path; the multipart path leaves it open since it persists across
// phases. The source must not be shared with concurrent uploads.
//
// Returns:
//   - *UploadResult: carries the stable file identifier
//   - error: an *errors.Error distinguishing invalid input, transport
//     failure, and malformed server response; no retries are attempted
//
// Example:
//
//	file, err := os.Open("photo.jpg")
//	if err != nil {
//	    return err
//	}
//	result, err := client.Upload(ctx, file,
//	    ucare.WithFilename("photo.jpg"),
//	    ucare.WithStore(uctypes.StoreYes),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.FileID)
func (c *Client) Upload(
	ctx context.Context,
	source io.ReadSeeker,
	opts ...uctypes.UploadOption,
) (*uctypes.UploadResult, error) {
	if isNilSource(source) {
		return nil, ucerrors.NewError("upload", ucerrors.ErrInvalidInput).
			WithMessage("source cannot be nil")
	}

	// Apply upload options
	config := &uctypes.UploadConfig{
		Store: c.cfg.DefaultStore,
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.Store == "" {
		config.Store = uctypes.StoreAuto
	}
	if err := validation.ValidateStoreDirective("upload", config.Store); err != nil {
		return nil, err
	}
	if config.Filename == "" {
		config.Filename = uuid.NewString()
	}

	// Determine content type if not explicitly set
	if config.ContentType == "" {
		config.ContentType = c.detectContentType(source, config.Filename)
	}

	size, err := probeSize(source)
	if err != nil {
		return nil, ucerrors.NewError("upload", ucerrors.ErrInvalidInput).
			WithMessage(err.Error())
	}

	uploader := upload.New(c.transport, c.codec, c.uploaderConfig())
	if upload.DecideStrategy(size) == upload.StrategyMultipart {
		return uploader.Multipart(ctx, source, size, config)
	}
	return uploader.Direct(ctx, source, config)
}

// UploadFile uploads a file from the local filesystem.
//
// This is a convenience method that handles file opening, filename
// defaulting, and content type detection.
//
// Example:
//
//	result, err := client.UploadFile(ctx, "/path/to/report.pdf")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.FileID)
func (c *Client) UploadFile(
	ctx context.Context,
	path string,
	opts ...uctypes.UploadOption,
) (*uctypes.UploadResult, error) {
	if path == "" {
		return nil, ucerrors.NewError("uploadFile", ucerrors.ErrInvalidInput).
			WithMessage("path cannot be empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ucerrors.NewError("uploadFile", err)
	}
	// The direct path closes the file itself; closing twice is harmless.
	defer file.Close()

	merged := append([]uctypes.UploadOption{WithFilename(filepath.Base(path))}, opts...)
	return c.Upload(ctx, file, merged...)
}

// isNilSource catches both a nil interface and a typed nil inside it, such
// as a nil *os.File, before any method on the source is called.
func isNilSource(source io.ReadSeeker) bool {
	if source == nil {
		return true
	}
	v := reflect.ValueOf(source)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// probeSize measures the source length by seeking to the end and rewinding,
// leaving the source positioned at the start.
func probeSize(source io.ReadSeeker) (int64, error) {
	size, err := source.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := source.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return size, nil
}

// detectContentType determines the content type by sniffing the first bytes
// of the source, falling back to extension-based lookup.
func (c *Client) detectContentType(source io.ReadSeeker, filename string) string {
	// Read first 512 bytes for content detection, rewinding after.
	buf := pool.GetSniffBuffer()
	defer pool.PutSniffBuffer(buf)
	n, _ := source.Read(buf)
	if _, err := source.Seek(0, io.SeekStart); err == nil && n > 0 {
		if mt := mimetype.Detect(buf[:n]); mt != nil {
			return mt.String()
		}
	}
	return detectContentTypeFromExtension(filename)
}

// detectContentTypeFromExtension detects content type from a file extension.
func detectContentTypeFromExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	return DefaultContentType
}
