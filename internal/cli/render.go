package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitrine-dev/vitrine/pkg/display"
	"github.com/vitrine-dev/vitrine/pkg/engine"
	"github.com/vitrine-dev/vitrine/pkg/errors"
	"github.com/vitrine-dev/vitrine/pkg/mime"
	"github.com/vitrine-dev/vitrine/pkg/objects"
	"github.com/vitrine-dev/vitrine/pkg/publish"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output directory; empty writes to stdout
	kinds   string   // comma-separated kinds; empty renders all known kinds
	refresh bool     // bypass the cache and re-render
	radius  float64  // circle radius
	sigma   float64  // gaussian standard deviation
	size    int      // gaussian image size in pixels
	text    string   // banner text
	name    string   // graph name
	nodes   []string // graph node names
	edges   []string // graph edges as from:to pairs
}

// newRenderCmd creates the render command.
//
// The object argument selects one of the built-in objects (banner, circle,
// gaussian, graph). Without --output the representations are written to
// stdout; with --output each kind lands in its own file.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <object>",
		Short: "Render an object to its rich representations",
		Long: `Render one of the built-in objects (` + strings.Join(objects.Names(), ", ") + `)
to every requested kind. Cached payloads are reused for objects with a
stable content fingerprint; pass --refresh to re-render.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: objects.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: stdout)")
	cmd.Flags().StringVarP(&opts.kinds, "kind", "k", "", "kind(s) to render, comma-separated (default: all)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and re-render")
	addObjectFlags(cmd, &opts)

	return cmd
}

// addObjectFlags registers the object parameter flags shared by render and
// view.
func addObjectFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().Float64Var(&opts.radius, "radius", 0, "circle radius")
	cmd.Flags().Float64Var(&opts.sigma, "sigma", 0, "gaussian standard deviation")
	cmd.Flags().IntVar(&opts.size, "size", 0, "gaussian image size in pixels")
	cmd.Flags().StringVar(&opts.text, "text", "", "banner text")
	cmd.Flags().StringVar(&opts.name, "name", "", "graph name")
	cmd.Flags().StringSliceVar(&opts.nodes, "node", nil, "graph node (repeatable)")
	cmd.Flags().StringSliceVar(&opts.edges, "edge", nil, "graph edge as from:to (repeatable)")
}

// parseKinds splits the --kind flag into a kind slice.
// Validity is checked by the engine's option validation.
func parseKinds(s string) []mime.Kind {
	if s == "" {
		return nil
	}
	var kinds []mime.Kind
	for _, part := range strings.Split(s, ",") {
		kinds = append(kinds, mime.Kind(strings.TrimSpace(part)))
	}
	return kinds
}

// parseEdges converts from:to pairs into graph edges.
func parseEdges(pairs []string) ([]objects.GraphEdge, error) {
	var edges []objects.GraphEdge
	for _, pair := range pairs {
		from, to, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid edge %q (want from:to)", pair)
		}
		edges = append(edges, objects.GraphEdge{From: from, To: to})
	}
	return edges, nil
}

// buildParams assembles constructor parameters from the flags.
func buildParams(opts *renderOpts) (objects.Params, error) {
	edges, err := parseEdges(opts.edges)
	if err != nil {
		return objects.Params{}, err
	}
	return objects.Params{
		Radius: opts.radius,
		Sigma:  opts.sigma,
		Size:   opts.size,
		Text:   opts.text,
		Name:   opts.name,
		Nodes:  opts.nodes,
		Edges:  edges,
	}, nil
}

// runRender builds the object, renders the requested kinds, and publishes
// the results to stdout or the output directory.
func runRender(ctx context.Context, objectName string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	params, err := buildParams(opts)
	if err != nil {
		return err
	}
	obj, err := objects.Build(objectName, params)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	runner := engine.NewRunner(c, nil, nil, logger)
	runner.TTL = cfg.Cache.TTL.Std()
	engineOpts := engine.Options{
		Kinds:   parseKinds(opts.kinds),
		Refresh: opts.refresh,
		Logger:  logger,
	}

	pub, paths := newSink(opts.output, objectName)

	// Self-displaying objects control their own output.
	if _, ok := obj.(display.Displayer); ok {
		logger.Debugf("Object %s displays itself", display.TypeName(obj))
		if err := runner.Display(ctx, obj, pub, engineOpts); err != nil {
			return err
		}
		printSuccess("Displayed %s", objectName)
		printPaths(paths)
		return nil
	}

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, obj, engineOpts)
	if err != nil {
		return err
	}
	if result.Stats.KindCount == 0 {
		return errors.New(errors.ErrCodeNoRenderer, "no representation available for %s", objectName)
	}
	prog.done(fmt.Sprintf("Rendered %d representations", result.Stats.KindCount))

	for _, rep := range result.Bundle.Representations() {
		if err := pub.Publish(ctx, rep); err != nil {
			return fmt.Errorf("publish %s: %w", rep.Kind, err)
		}
	}

	printSuccess("Rendered %s", objectName)
	printStats(result.Stats.KindCount, result.CacheInfo.Hits)
	printPaths(paths)
	return nil
}

// newSink builds the publisher for the render command. With an output
// directory each kind lands in its own file and the paths are reported;
// otherwise everything goes to stdout.
func newSink(dir, base string) (publish.Publisher, *publish.DirPublisher) {
	if dir == "" {
		return publish.NewWriter(os.Stdout), nil
	}
	d := publish.NewDir(dir, base)
	return d, d
}

// printPaths reports the files written by a directory sink.
func printPaths(d *publish.DirPublisher) {
	if d == nil {
		return
	}
	for _, path := range d.Written() {
		printFile(path)
	}
}
