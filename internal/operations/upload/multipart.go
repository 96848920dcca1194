package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	ucerrors "github.com/newtype0092/uploadcare-go/errors"
	"github.com/newtype0092/uploadcare-go/internal/pool"
	"github.com/newtype0092/uploadcare-go/uctypes"
)

// Multipart orchestrates the three-phase multipart protocol: start the
// session, transfer parts sequentially to the signed targets, complete.
// The phases are strictly ordered with no backtracking; any failure aborts
// the whole upload and the caller must retry from the start phase.
func (u *Uploader) Multipart(
	ctx context.Context,
	source io.Reader,
	size int64,
	config *uctypes.UploadConfig,
) (*uctypes.UploadResult, error) {
	session, err := u.startSession(ctx, size, config)
	if err != nil {
		return nil, err
	}
	if err := u.transferParts(ctx, source, session); err != nil {
		return nil, err
	}
	return u.completeSession(ctx, session.ID)
}

// startSession opens a multipart session. The server allocates storage and
// issues the time-limited signed part URLs before any file bytes are sent.
func (u *Uploader) startSession(
	ctx context.Context,
	size int64,
	config *uctypes.UploadConfig,
) (*uctypes.MultipartSession, error) {
	fields := u.authFields()
	fields[fieldFilename] = config.Filename
	fields[fieldSize] = strconv.FormatInt(size, 10)
	fields[fieldContentType] = config.ContentType
	fields[fieldStore] = string(config.Store)

	body, err := u.postForm(ctx, "multipartStart", "multipart/start/", fields, nil)
	if err != nil {
		return nil, err
	}

	var session uctypes.MultipartSession
	if err := u.codec.Decode(body, &session); err != nil {
		return nil, ucerrors.NewMalformedResponseError("multipartStart", err)
	}
	if session.ID == "" || len(session.Parts) == 0 {
		return nil, ucerrors.NewMalformedResponseError("multipartStart", ucerrors.ErrEmptySession)
	}
	return &session, nil
}

// transferParts PUTs one chunk of up to PartSize bytes to each signed target,
// in session order. The server-returned target sequence drives iteration; it
// is never recomputed, reordered, or parallelized locally. A read that yields
// no further bytes before the sequence is exhausted stops the transfer
// without error, leaving the remaining targets untouched.
func (u *Uploader) transferParts(
	ctx context.Context,
	source io.Reader,
	session *uctypes.MultipartSession,
) error {
	chunk := pool.GetPartBuffer()
	defer pool.PutPartBuffer(chunk)
	for index, target := range session.Parts {
		n, err := readChunk(source, chunk)
		if err != nil {
			return ucerrors.NewInvalidInputError("uploadPart", err).WithFileID(session.ID)
		}
		if n == 0 {
			break
		}
		if err := u.putPart(ctx, string(target), chunk[:n]); err != nil {
			return err.WithMessage(fmt.Sprintf("part %d of %d", index+1, len(session.Parts))).
				WithFileID(session.ID)
		}
		if n < PartSize {
			break
		}
	}
	return nil
}

// readChunk fills buf from r, treating a short final read as valid: it
// returns however many bytes were available without an error.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	return n, err
}

// putPart PUTs raw chunk bytes to one signed target. No headers or fields
// are attached beyond what the signed URL itself encodes.
func (u *Uploader) putPart(ctx context.Context, url string, chunk []byte) *ucerrors.Error {
	resp, err := u.transport.Send(ctx, http.MethodPut, url, bytes.NewReader(chunk), nil)
	if err != nil {
		return ucerrors.NewTransportError("uploadPart", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ucerrors.NewTransportError("uploadPart", url, fmt.Errorf("unexpected status %s", resp.Status))
	}
	return nil
}

// completeSession closes the session and extracts the final file identifier.
func (u *Uploader) completeSession(ctx context.Context, sessionID string) (*uctypes.UploadResult, error) {
	fields := u.authFields()
	fields[fieldUUID] = sessionID

	body, err := u.postForm(ctx, "multipartComplete", "multipart/complete/", fields, nil)
	if err != nil {
		return nil, err
	}

	id, err := u.decodeKey("multipartComplete", body, keyUUID)
	if err != nil {
		return nil, err
	}
	return &uctypes.UploadResult{FileID: id}, nil
}
