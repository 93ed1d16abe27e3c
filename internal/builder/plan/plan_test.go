package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glentner/1trc/internal/builder/common"
)

func TestPartitions(t *testing.T) {
	type testCase struct {
		name      string
		totalRows uint64
		fileCount int
		wantRows  []uint64
		wantErr   bool
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		partitions, err := Partitions(tc.totalRows, tc.fileCount)
		if tc.wantErr {
			require.Error(t, err)

			var reqErr *common.InvalidRequestError
			require.ErrorAs(t, err, &reqErr)

			return
		}

		require.NoError(t, err)
		require.Len(t, partitions, tc.fileCount)

		var total uint64

		for i, p := range partitions {
			require.Equal(t, i, p.Index)
			require.Equal(t, tc.wantRows[i], p.Rows)

			total += p.Rows
		}

		require.Equal(t, tc.totalRows, total)
	}

	testCases := []testCase{
		{name: "even split", totalRows: 9, fileCount: 3, wantRows: []uint64{3, 3, 3}},
		{name: "remainder goes first", totalRows: 10, fileCount: 3, wantRows: []uint64{4, 3, 3}},
		{name: "single file", totalRows: 7, fileCount: 1, wantRows: []uint64{7}},
		{name: "more files than rows", totalRows: 2, fileCount: 4, wantRows: []uint64{1, 1, 0, 0}},
		{name: "zero rows", totalRows: 0, fileCount: 3, wantRows: []uint64{0, 0, 0}},
		{name: "zero files", totalRows: 10, fileCount: 0, wantErr: true},
		{name: "negative files", totalRows: 10, fileCount: -1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testFunc(t, tc)
		})
	}
}
