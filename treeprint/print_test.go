package treeprint

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

func TestFprintDiagram(t *testing.T) {
	saved := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer func() {
		teardown()
		gtrace.CoreTracer = saved
	}()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := bintree.Make(bintree.Make(bintree.Leaf(2), 1, bintree.Leaf(3)), 4, bintree.Leaf(5))
	var sb strings.Builder
	if err := Fprint(&sb, tree, nil); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	want := strings.Join([]string{
		"┌── 5",
		"4",
		"│   ┌── 3",
		"└── 1",
		"    └── 2",
		"",
	}, "\n")
	if got := sb.String(); got != want {
		t.Errorf("diagram is\n%s\nwant\n%s", got, want)
	}
}

func TestFprintDeepRightSpine(t *testing.T) {
	tree := bintree.MakeRight("a", bintree.MakeRight("b", bintree.MakeLeft(bintree.Leaf("d"), "c")))
	var sb strings.Builder
	if err := Fprint(&sb, tree, &Config{}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	want := strings.Join([]string{
		"    ┌── c",
		"    │   └── d",
		"┌── b",
		"a",
		"",
	}, "\n")
	if got := sb.String(); got != want {
		t.Errorf("diagram is\n%s\nwant\n%s", got, want)
	}
}

func TestFprintTruncatesLabels(t *testing.T) {
	var sb strings.Builder
	tree := bintree.MakeLeft(bintree.Leaf("abcdefgh"), "0123456789")
	if err := Fprint(&sb, tree, &Config{LineWidth: 8}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	want := "0123456…\n└── abc…\n"
	if got := sb.String(); got != want {
		t.Errorf("truncated diagram = %q, want %q", got, want)
	}
}

func TestFprintEmptyTree(t *testing.T) {
	var sb strings.Builder
	if err := Fprint(&sb, bintree.Empty[int](), nil); err != nil || sb.Len() != 0 {
		t.Errorf("empty tree: output %q, err %v", sb.String(), err)
	}
	if err := Fprint[int](nil, bintree.Leaf(1), nil); !errors.Is(err, bintree.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil writer, got %v", err)
	}
}

func TestFprintTruncatesNumericLabels(t *testing.T) {
	var sb strings.Builder
	tree := bintree.MakeLeft(bintree.Leaf("98765"), "1234567890")
	if err := Fprint(&sb, tree, &Config{LineWidth: 8}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if want := "1234567…\n└── 987…\n"; sb.String() != want {
		t.Errorf("truncated digits = %q, want %q", sb.String(), want)
	}
	sb.Reset()
	numbers := bintree.Make(bintree.Leaf(12345), 100, bintree.Leaf(7))
	if err := Fprint(&sb, numbers, &Config{LineWidth: 8}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if want := "┌── 7\n100\n└── 123…\n"; sb.String() != want {
		t.Errorf("truncated numbers = %q, want %q", sb.String(), want)
	}
}

func TestLabelWidth(t *testing.T) {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &printer{config: Config{Context: uax11.LatinContext}}
	for _, tc := range []struct {
		s string
		w int
	}{
		{"", 0},
		{"0123456789", 10},
		{"#*", 2},
		{"abc…", 4},
		{"└── ", 4},
	} {
		if got := p.width(tc.s); got != tc.w {
			t.Errorf("width(%q) = %d, want %d", tc.s, got, tc.w)
		}
	}
}
