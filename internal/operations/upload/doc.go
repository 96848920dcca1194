// Package upload implements the file ingestion paths of the upload API.
// This includes direct single-request uploads for small files and the
// three-phase multipart protocol (start, per-part transfer, complete)
// for large files.
//
// Strategy selection is a pure function of the byte size at submission
// time; exactly one of the two paths executes per upload. Part transfer
// is strictly sequential in session order, bounding client memory to a
// single part buffer at a time.
package upload
