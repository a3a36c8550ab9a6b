package netio_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/builder"
	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/netio"
)

const diamondInput = `4 5 0 0
0 1 10
0 2 5
1 2 3
1 3 4
2 3 9
`

func TestRead(t *testing.T) {
	s, err := netio.Read(strings.NewReader(diamondInput))
	require.NoError(t, err)
	require.Equal(t, 4, s.Nodes)
	require.Len(t, s.Edges, 5)
	require.Equal(t, core.EdgeSpec{U: 1, V: 3, Capacity: 4}, s.Edges[3])
}

func TestRead_IgnoresLayoutAndTrailingData(t *testing.T) {
	in := "2 1\n17 42   0\t1\n\n 7 trailing"
	s, err := netio.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []core.EdgeSpec{{U: 0, V: 1, Capacity: 7}}, s.Edges)
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{"empty", "", func(t *testing.T, err error) {
			require.ErrorIs(t, err, netio.ErrUnexpectedEOF)
		}},
		{"short header", "4 5 0", func(t *testing.T, err error) {
			require.ErrorIs(t, err, netio.ErrUnexpectedEOF)
		}},
		{"missing edge", "3 2 0 0\n0 1 4\n", func(t *testing.T, err error) {
			require.ErrorIs(t, err, netio.ErrUnexpectedEOF)
		}},
		{"truncated triple", "3 1 0 0\n0 1", func(t *testing.T, err error) {
			require.ErrorIs(t, err, netio.ErrUnexpectedEOF)
		}},
		{"bad token", "3 1 0 0\n0 x 4", func(t *testing.T, err error) {
			var pe *netio.ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			require.Equal(t, "x", pe.Token)
			require.Equal(t, 5, pe.Index)
		}},
		{"negative m", "3 -1 0 0", func(t *testing.T, err error) {
			require.ErrorContains(t, err, "negative edge count")
		}},
		{"huge node count", "1000000000000 0 0 0", func(t *testing.T, err error) {
			require.ErrorIs(t, err, netio.ErrTooManyNodes)
		}},
		{"too few nodes", "1 0 0 0", func(t *testing.T, err error) {
			require.ErrorIs(t, err, core.ErrTooFewNodes)
		}},
		{"node out of range", "3 1 0 0\n0 3 1", func(t *testing.T, err error) {
			require.ErrorIs(t, err, core.ErrNodeOutOfRange)
		}},
		{"negative capacity", "3 1 0 0\n0 2 -1", func(t *testing.T, err error) {
			var ee core.EdgeError
			require.True(t, errors.As(err, &ee), "got %v", err)
			require.Equal(t, 0, ee.Index)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := netio.Read(strings.NewReader(tc.input))
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestWriteSpec_ReadBack(t *testing.T) {
	s, err := builder.BuildSpec(12,
		[]builder.BuilderOption{builder.WithSeed(4), builder.WithUniformCapacity(0, 9)},
		builder.RandomSparse(12, 0.4),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, netio.WriteSpec(&buf, s))
	require.True(t, strings.HasPrefix(buf.String(), "12 "))

	got, err := netio.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, s.Nodes, got.Nodes)
	require.Equal(t, s.Edges, got.Edges)

	require.ErrorIs(t, netio.WriteSpec(&buf, nil), core.ErrNilSpec)
}

func TestWriteFlow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, netio.WriteFlow(&buf, 12))
	require.Equal(t, "f = 12\n", buf.String())
}
