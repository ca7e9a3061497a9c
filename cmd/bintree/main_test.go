package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/bintree"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCompleteTree(t *testing.T) {
	for n := 0; n <= 20; n++ {
		tree := completeTree(n)
		require.Equal(t, n, tree.Size())
		require.NoError(t, tree.Check())
		levels := tree.LevelOrder()
		for i, x := range levels {
			require.Equal(t, i+1, x)
		}
	}
}

func TestExampleText(t *testing.T) {
	out, err := run(t, "example", "--order", "in")
	require.NoError(t, err)
	require.Equal(t, "size 5, height 2\nin-order: 2 1 3 4 5\nmake(make(make(2), 1, make(3)), 4, make(5))\n", out)
}

func TestCompleteLevelOrder(t *testing.T) {
	out, err := run(t, "complete", "7", "--order", "level")
	require.NoError(t, err)
	require.Contains(t, out, "level-order: 1 2 3 4 5 6 7\n")
	require.Contains(t, out, "size 7, height 2")
}

func TestCompleteLargeUsesGrouping(t *testing.T) {
	out, err := run(t, "complete", "1500", "--order", "post")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "size 1,500, height 10\n"), out)
}

func TestFormats(t *testing.T) {
	out, err := run(t, "example", "--format", "dot")
	require.NoError(t, err)
	require.Contains(t, out, "digraph")

	out, err = run(t, "example", "--format", "html")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, `<ul class="bintree">`), out)

	out, err = run(t, "example", "--format", "diagram", "--width", "40")
	require.NoError(t, err)
	require.Equal(t, "┌── 5\n4\n│   ┌── 3\n└── 1\n    └── 2\n", out)
}

func TestInvalidArguments(t *testing.T) {
	_, err := run(t, "complete", "-3")
	require.Error(t, err)

	_, err = run(t, "complete", "many")
	require.Error(t, err)

	_, err = run(t, "example", "--format", "yaml")
	require.True(t, errors.Is(err, bintree.ErrIllegalArguments))

	_, err = run(t, "example", "--order", "zigzag")
	require.True(t, errors.Is(err, bintree.ErrIllegalArguments))
}

func TestOrderValidatedForEveryFormat(t *testing.T) {
	for _, format := range []string{"text", "dot", "html", "diagram"} {
		_, err := run(t, "example", "--format", format, "--order", "zigzag", "--width", "40")
		require.ErrorIs(t, err, bintree.ErrIllegalArguments, format)
	}
}
