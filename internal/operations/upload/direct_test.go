package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ucerrors "github.com/newtype0092/uploadcare-go/errors"
	"github.com/newtype0092/uploadcare-go/internal/codec"
	"github.com/newtype0092/uploadcare-go/internal/testutil"
	"github.com/newtype0092/uploadcare-go/internal/transport"
	"github.com/newtype0092/uploadcare-go/uctypes"
)

func newTestUploader(tr transport.Transport) *Uploader {
	return New(tr, codec.JSON{}, &Config{
		PublicKey: "demopublickey",
		BaseURL:   "https://upload.example.com/",
	})
}

// closeTracker wraps a reader and records whether Close was called.
type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

// formFile is the decoded file entry of a recorded multipart form body.
type formFile struct {
	name        string
	contentType string
	data        []byte
}

// parseForm decodes a recorded multipart form exchange into its fields and
// file entry.
func parseForm(t *testing.T, ex testutil.Exchange) (map[string]string, *formFile) {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(ex.Headers.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(bytes.NewReader(ex.Body), params["boundary"])
	fields := make(map[string]string)
	var file *formFile
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FileName() != "" {
			file = &formFile{
				name:        part.FileName(),
				contentType: part.Header.Get("Content-Type"),
				data:        data,
			}
			continue
		}
		fields[part.FormName()] = string(data)
	}
	return fields, file
}

func TestDirect(t *testing.T) {
	tests := []struct {
		name        string
		response    *http.Response
		sendErr     error
		wantFileID  string
		wantErr     error
		errContains string
	}{
		{
			name:       "successful upload",
			response:   testutil.JSONResponse(http.StatusOK, `{"file": "abc-123"}`),
			wantFileID: "abc-123",
		},
		{
			name:        "transport failure",
			sendErr:     errors.New("connection refused"),
			wantErr:     ucerrors.ErrTransport,
			errContains: "connection refused",
		},
		{
			name:        "http error status",
			response:    testutil.JSONResponse(http.StatusForbidden, `{"detail": "pub_key is invalid"}`),
			wantErr:     ucerrors.ErrTransport,
			errContains: "unexpected status",
		},
		{
			name:        "response missing file key",
			response:    testutil.JSONResponse(http.StatusOK, `{"uuid": "abc-123"}`),
			wantErr:     ucerrors.ErrMalformedResponse,
			errContains: `missing key "file"`,
		},
		{
			name:        "response not json",
			response:    testutil.JSONResponse(http.StatusOK, `<html>not json</html>`),
			wantErr:     ucerrors.ErrMalformedResponse,
			errContains: "",
		},
		{
			name:        "file key not a string",
			response:    testutil.JSONResponse(http.StatusOK, `{"file": 42}`),
			wantErr:     ucerrors.ErrMalformedResponse,
			errContains: "not a file identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &testutil.RecordingTransport{}
			if tt.response != nil {
				rt.Responses = []*http.Response{tt.response}
			}
			if tt.sendErr != nil {
				rt.Errs = map[int]error{0: tt.sendErr}
			}

			source := &closeTracker{Reader: strings.NewReader("file content")}
			result, err := newTestUploader(rt).Direct(context.Background(), source, &uctypes.UploadConfig{
				Filename:    "report.txt",
				ContentType: "text/plain",
				Store:       uctypes.StoreAuto,
			})

			// The source is released on every exit path, not only success.
			assert.True(t, source.closed, "source must be closed")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFileID, result.FileID)
		})
	}
}

func TestDirect_RequestShape(t *testing.T) {
	rt := &testutil.RecordingTransport{
		Responses: []*http.Response{testutil.JSONResponse(http.StatusOK, `{"file": "abc-123"}`)},
	}
	source := strings.NewReader("hello, upload")

	_, err := newTestUploader(rt).Direct(context.Background(), source, &uctypes.UploadConfig{
		Filename:    "hello.txt",
		ContentType: "text/plain",
		Store:       uctypes.StoreYes,
	})
	require.NoError(t, err)

	require.Len(t, rt.Exchanges, 1)
	ex := rt.Exchanges[0]
	assert.Equal(t, http.MethodPost, ex.Method)
	assert.Equal(t, "https://upload.example.com/base/", ex.URL)

	fields, file := parseForm(t, ex)
	assert.Equal(t, "demopublickey", fields["UPLOADCARE_PUB_KEY"])
	assert.Equal(t, "1", fields["UPLOADCARE_STORE"])
	require.NotNil(t, file)
	assert.Equal(t, "hello.txt", file.name)
	assert.Equal(t, "text/plain", file.contentType)
	assert.Equal(t, "hello, upload", string(file.data))
}

func TestDirect_SignedUpload(t *testing.T) {
	rt := &testutil.RecordingTransport{
		Responses: []*http.Response{testutil.JSONResponse(http.StatusOK, `{"file": "abc-123"}`)},
	}
	uploader := New(rt, codec.JSON{}, &Config{
		PublicKey:       "demopublickey",
		BaseURL:         "https://upload.example.com/",
		SecureSignature: "deadbeef",
		SecureExpire:    "1700000000",
	})

	_, err := uploader.Direct(context.Background(), strings.NewReader("x"), &uctypes.UploadConfig{
		Filename:    "x.bin",
		ContentType: "application/octet-stream",
		Store:       uctypes.StoreAuto,
	})
	require.NoError(t, err)

	fields, _ := parseForm(t, rt.Exchanges[0])
	assert.Equal(t, "deadbeef", fields["signature"])
	assert.Equal(t, "1700000000", fields["expire"])
}
