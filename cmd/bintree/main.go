// Command bintree builds binary trees and prints their traversals, their
// reconstruction form, or a diagram in one of several output formats.
//
//	bintree complete 12 --order level --format diagram
//	bintree example --format dot | dot -Tsvg > example.svg
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/bintree/html"
	"github.com/npillmayer/bintree/treeprint"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

const maxComplete = 1 << 20

type options struct {
	order  string
	format string
	width  int
	trace  bool
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "bintree",
		Short: "Build binary trees and print them",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.trace && gtrace.CoreTracer != nil {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.order, "order", "pre", "traversal order (pre|in|post|level)")
	root.PersistentFlags().StringVar(&opts.format, "format", "text", "output format (text|dot|html|diagram)")
	root.PersistentFlags().IntVar(&opts.width, "width", 0, "maximum line width for diagrams; 0 asks the terminal")
	root.PersistentFlags().BoolVar(&opts.trace, "trace", false, "enable debug tracing")
	root.AddCommand(newCompleteCmd(opts), newExampleCmd(opts))
	return root
}

func newCompleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "complete N",
		Short: "Build a complete tree holding 1…N in level order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid node count %q: %w", args[0], err)
			}
			if n < 0 || n > maxComplete {
				return fmt.Errorf("node count must be within 0…%d: %w", maxComplete, bintree.ErrIllegalArguments)
			}
			return output(cmd.OutOrStdout(), completeTree(n), opts)
		},
	}
}

func newExampleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print the reference tree make(make(make(2), 1, make(3)), 4, make(5))",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := bintree.Make(bintree.Make(bintree.Leaf(2), 1, bintree.Leaf(3)), 4, bintree.Leaf(5))
			return output(cmd.OutOrStdout(), tree, opts)
		},
	}
}

// completeTree creates nodes from n down to 1, so children always exist
// before their parent.
func completeTree(n int) *bintree.Tree[int] {
	subtrees := make([]*bintree.Tree[int], n+2)
	for i := n; i >= 1; i-- {
		var left, right *bintree.Tree[int]
		if 2*i <= n {
			left = subtrees[2*i]
		}
		if 2*i+1 <= n {
			right = subtrees[2*i+1]
		}
		subtrees[i] = bintree.Make(left, i, right)
	}
	if n == 0 {
		return bintree.Empty[int]()
	}
	return subtrees[1]
}

func output(w io.Writer, tree *bintree.Tree[int], opts *options) error {
	order, err := bintree.ParseOrder(opts.order)
	if err != nil {
		return err
	}
	switch opts.format {
	case "text":
		fmt.Fprintf(w, "size %s, height %d\n", humanize.Comma(int64(tree.Size())), tree.Height())
		c, err := tree.NewCursor(order)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:", order)
		for c.HasMore() {
			x, err := c.Next()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, " %d", x)
		}
		fmt.Fprintf(w, "\n%s\n", tree)
		return nil
	case "dot":
		return bintree.Tree2Dot(tree, w)
	case "html":
		if err := html.Render(w, tree); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case "diagram":
		config := &treeprint.Config{LineWidth: opts.width}
		if opts.width == 0 {
			config = treeprint.ConfigFromTerminal()
		}
		return treeprint.Fprint(w, tree, config)
	}
	return fmt.Errorf("unknown output format %q: %w", opts.format, bintree.ErrIllegalArguments)
}
