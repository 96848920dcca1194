package upload

// Fixed protocol constants shared by strategy selection and part transfer.
// MultipartThreshold must stay at or above PartSize for the protocol to
// make sense.
const (
	// PartSize is the number of bytes carried by each multipart chunk
	PartSize = 5_242_880

	// MultipartThreshold is the byte size at or above which the multipart
	// path applies
	MultipartThreshold = 10_485_760
)

// Strategy selects which upload path handles a file.
type Strategy int

// Available upload strategies
const (
	// StrategyDirect transfers the whole file in a single request
	StrategyDirect Strategy = iota

	// StrategyMultipart splits the file into fixed-size parts uploaded
	// through separately signed URLs
	StrategyMultipart
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	if s == StrategyMultipart {
		return "multipart"
	}
	return "direct"
}

// DecideStrategy selects the upload strategy for a file of the given size.
// Pure and deterministic; evaluated once per upload at submission time.
func DecideStrategy(size int64) Strategy {
	if size >= MultipartThreshold {
		return StrategyMultipart
	}
	return StrategyDirect
}

// PartRange is one planned chunk of a multipart transfer.
type PartRange struct {
	// Offset is the byte position of the chunk within the file
	Offset int64

	// Size is the chunk length; only the final chunk may be shorter
	// than PartSize
	Size int64
}

// PlanParts computes the ordered part boundaries for a file of the given
// size. The plan is advisory: the transfer phase iterates whatever target
// sequence the server returns, which may disagree with the local count.
func PlanParts(size int64) []PartRange {
	if size <= 0 {
		return nil
	}
	count := (size + PartSize - 1) / PartSize
	parts := make([]PartRange, 0, count)
	for offset := int64(0); offset < size; offset += PartSize {
		length := size - offset
		if length > PartSize {
			length = PartSize
		}
		parts = append(parts, PartRange{Offset: offset, Size: length})
	}
	return parts
}
