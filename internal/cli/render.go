package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graytree/pkg/cache"
	"github.com/matzehuels/graytree/pkg/config"
	"github.com/matzehuels/graytree/pkg/errors"
	"github.com/matzehuels/graytree/pkg/observability"
	"github.com/matzehuels/graytree/pkg/render"
	"github.com/matzehuels/graytree/pkg/render/nodelink"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"

	// pngScale renders PNGs at twice the SVG resolution.
	pngScale = 2.0

	// stdoutPath as --output writes the artifact to standard output.
	stdoutPath = "-"

	// artifactKeyType labels artifact events for the cache hooks.
	artifactKeyType = "artifact"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path, "-" for stdout
	format   string // output format: "dot", "svg", "pdf", "png"
	detailed bool   // add node depths to the labels
	noCache  bool   // bypass the artifact cache
}

// renderCommand creates the render command for generating node-link diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <expr>",
		Short: "Render a tree as a node-link diagram",
		Long: `Render a tree as a node-link diagram with Graphviz.

Formats:
  dot   Graphviz source
  svg   vector image
  pdf   requires rsvg-convert (librsvg)
  png   requires rsvg-convert (librsvg)

Rendered images are cached by content; use --no-cache to bypass the cache.`,
		Example: `  graytree render '1{2{4,5},3{_,6}}' -f svg -o tree.svg
  graytree render '1{2,3}' -f dot -o -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.Config.Format
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: dot, svg, pdf, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default tree.<format>, - for stdout)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node depths in labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(config.Formats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdout io.Writer, expr string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	if !slices.Contains(config.Formats, opts.format) {
		return errors.New(errors.ErrCodeInvalidFormat, "format %q: must be one of %s", opts.format, strings.Join(config.Formats, ", "))
	}
	if (opts.format == formatPDF || opts.format == formatPNG) && !render.Available() {
		return errors.New(errors.ErrCodeUnsupported, "%s export requires rsvg-convert (librsvg)", opts.format)
	}
	if opts.output == "" {
		opts.output = "tree." + opts.format
	}
	if opts.output != stdoutPath {
		if err := errors.ValidateOutputPath(opts.output, opts.format); err != nil {
			return err
		}
	}

	root, err := parseArgs([]string{expr})
	if err != nil {
		return err
	}
	nodeCount := root.Len()
	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: opts.detailed})
	logger.Debug("generated DOT", "nodes", nodeCount, "bytes", len(dot))

	prog := newProgress(logger)
	data, cached, err := c.renderArtifact(ctx, dot, nodeCount, opts)
	if err != nil {
		prog.fail("Render failed", err)
		return err
	}

	if opts.output == stdoutPath {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done("Rendered " + opts.output)
	printSuccess("Rendered %s", opts.format)
	printFile(opts.output)
	printStats(nodeCount, len(data), cached)
	return nil
}

// renderArtifact returns the bytes of the requested format, from the cache when
// possible. DOT output bypasses both Graphviz and the cache.
func (c *CLI) renderArtifact(ctx context.Context, dot string, nodeCount int, opts renderOpts) ([]byte, bool, error) {
	if opts.format == formatDOT {
		return []byte(dot), false, nil
	}

	store, err := c.newCache(ctx, opts.noCache)
	if err != nil {
		return nil, false, err
	}
	defer store.Close()

	key := newKeyer().ArtifactKey(cache.Hash([]byte(dot)), artifactKeyOpts(opts))
	hooks := observability.Cache()
	if data, ok, err := store.Get(ctx, key); err != nil {
		loggerFromContext(ctx).Warn("cache read failed", "err", err)
	} else if ok {
		hooks.OnCacheHit(ctx, artifactKeyType)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, artifactKeyType)

	spinner := newSpinnerWithContext(ctx, "Rendering "+opts.format+"...")
	spinner.Start()
	data, err := renderFormat(ctx, dot, nodeCount, opts.format)
	spinner.Stop()
	if err != nil {
		if spinner.Cancelled() {
			return nil, false, ctx.Err()
		}
		return nil, false, err
	}

	if err := store.Set(ctx, key, data, c.Config.Cache.TTL.Duration); err != nil {
		loggerFromContext(ctx).Warn("cache write failed", "err", err)
	} else {
		hooks.OnCacheSet(ctx, artifactKeyType, len(data))
	}
	return data, false, nil
}

func artifactKeyOpts(opts renderOpts) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: opts.format, Detailed: opts.detailed}
	if opts.format == formatPNG {
		k.Scale = pngScale
	}
	return k
}

// renderFormat runs Graphviz and, for PDF and PNG, rsvg-convert.
func renderFormat(ctx context.Context, dot string, nodeCount int, format string) (data []byte, err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format, nodeCount)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, format, time.Since(start), err) }()

	switch format {
	case formatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case formatPDF:
		return nodelink.RenderPDF(ctx, dot)
	case formatPNG:
		return nodelink.RenderPNG(ctx, dot, pngScale)
	}
	return nil, errors.New(errors.ErrCodeInternal, "no renderer for %q", format)
}
