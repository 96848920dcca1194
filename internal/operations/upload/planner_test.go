package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideStrategy(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want Strategy
	}{
		{
			name: "empty file",
			size: 0,
			want: StrategyDirect,
		},
		{
			name: "small file",
			size: 1024,
			want: StrategyDirect,
		},
		{
			name: "one byte below threshold",
			size: 10_485_759,
			want: StrategyDirect,
		},
		{
			name: "exactly at threshold",
			size: 10_485_760,
			want: StrategyMultipart,
		},
		{
			name: "one byte above threshold",
			size: 10_485_761,
			want: StrategyMultipart,
		},
		{
			name: "large file",
			size: 5 << 30,
			want: StrategyMultipart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideStrategy(tt.size))
		})
	}
}

func TestDecideStrategy_Deterministic(t *testing.T) {
	// Same size, same answer, every time.
	for i := 0; i < 3; i++ {
		assert.Equal(t, StrategyMultipart, DecideStrategy(MultipartThreshold))
		assert.Equal(t, StrategyDirect, DecideStrategy(MultipartThreshold-1))
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "direct", StrategyDirect.String())
	assert.Equal(t, "multipart", StrategyMultipart.String())
}

func TestPlanParts(t *testing.T) {
	tests := []struct {
		name      string
		size      int64
		wantCount int
		wantLast  int64
	}{
		{
			name:      "single short part",
			size:      1000,
			wantCount: 1,
			wantLast:  1000,
		},
		{
			name:      "exactly one part",
			size:      PartSize,
			wantCount: 1,
			wantLast:  PartSize,
		},
		{
			name:      "exact multiple",
			size:      3 * PartSize,
			wantCount: 3,
			wantLast:  PartSize,
		},
		{
			name:      "trailing remainder",
			size:      2*PartSize + 1,
			wantCount: 3,
			wantLast:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := PlanParts(tt.size)
			require.Len(t, parts, tt.wantCount)

			var offset int64
			for i, part := range parts {
				assert.Equal(t, offset, part.Offset, "part %d offset", i)
				if i < len(parts)-1 {
					assert.Equal(t, int64(PartSize), part.Size, "part %d size", i)
				}
				offset += part.Size
			}
			assert.Equal(t, tt.wantLast, parts[len(parts)-1].Size)
			assert.Equal(t, tt.size, offset, "parts must cover the whole file")
		})
	}
}

func TestPlanParts_Empty(t *testing.T) {
	assert.Nil(t, PlanParts(0))
	assert.Nil(t, PlanParts(-1))
}

func TestThresholdCoversPartSize(t *testing.T) {
	// The protocol only makes sense when every multipart upload spans
	// more than one full part.
	require.GreaterOrEqual(t, int64(MultipartThreshold), int64(PartSize))
}
