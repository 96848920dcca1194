// Package ucare provides a high-level Go client for the Uploadcare APIs.
// It covers file ingestion through the upload API and resource management
// through the REST API behind one configured client value.
//
// The core of the module is upload orchestration: per file, the client
// decides from the byte size whether to send the content in a single
// request or to run the three-phase multipart protocol (start, sequential
// part transfer over signed URLs, complete), and decodes the response into
// a stable file identifier.
//
// Key features:
//   - Size-based routing between direct and multipart upload
//   - Strictly sequential, memory-bounded part transfer
//   - Content type detection with extension fallback
//   - File, group, webhook, and project resources over the REST API
//   - Comprehensive error handling with operation and target context
//
// Example usage:
//
//	client, err := ucare.New("demopublickey")
//	if err != nil {
//	    return err
//	}
//
//	result, err := client.UploadFile(ctx, "/path/to/video.mp4")
//	if err != nil {
//	    return err
//	}
//	fmt.Println("uploaded:", result.FileID)
package ucare
