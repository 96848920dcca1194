package upload

import (
	"fmt"

	ucerrors "github.com/newtype0092/uploadcare-go/errors"
)

// decodeKey decodes a response body into a generic mapping and extracts the
// string value under the given key. The direct path reads "file", the
// completion phase reads "uuid"; the typed session decode of the start
// phase lives in startSession.
func (u *Uploader) decodeKey(op string, body []byte, key string) (string, error) {
	payload, err := u.codec.DecodeMap(body)
	if err != nil {
		return "", ucerrors.NewMalformedResponseError(op, err)
	}
	value, ok := payload[key]
	if !ok {
		return "", ucerrors.NewMalformedResponseError(op, fmt.Errorf("response is missing key %q", key))
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", ucerrors.NewMalformedResponseError(op, fmt.Errorf("key %q is not a file identifier", key))
	}
	return id, nil
}
