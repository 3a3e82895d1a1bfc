package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/overlay/pkg/buildinfo"
	"github.com/matzehuels/overlay/pkg/cache"
	errs "github.com/matzehuels/overlay/pkg/errors"
	"github.com/matzehuels/overlay/pkg/gog"
	pkgio "github.com/matzehuels/overlay/pkg/io"
)

// stdinPath selects standard input as the source.
const stdinPath = "-"

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output  string // output file path (stdout if empty)
	noCache bool   // bypass the parse cache
}

// parseResult is a parsed source ready for output.
type parseResult struct {
	doc    *pkgio.Document
	cached bool
}

// parseCommand creates the parse command.
func (c *CLI) parseCommand() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a GOG file into JSON",
		Long: `Parse a GOG file into JSON shapes and diagnostics.

Blocks that cannot form a valid shape are dropped and logged as warnings.
Results are cached by file content, comment character and build.

Examples:
  overlay parse range.gog                  # JSON to stdout
  overlay parse range.gog -o range.json    # JSON to a file
  cat range.gog | overlay parse -          # Read from stdin
  overlay parse --comment-char ';' a.gog   # Alternate comment character`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the parse cache")

	return cmd
}

func (c *CLI) runParse(ctx context.Context, path string, opts parseOpts) error {
	logger := loggerFromContext(ctx)

	res, err := c.parseSource(ctx, path, opts.noCache)
	if err != nil {
		return err
	}

	out, err := openOutput(path, opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := pkgio.WriteJSON(res.doc, out); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Wrote %d shapes to %s", len(res.doc.Shapes), opts.output)
	}
	return nil
}

// parseSource reads path (or stdin for "-") and parses it, consulting the
// cache first.
func (c *CLI) parseSource(ctx context.Context, path string, noCache bool) (*parseResult, error) {
	logger := loggerFromContext(ctx)

	data, err := readSource(path)
	if err != nil {
		return nil, err
	}

	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	store = cache.Instrument(store, "parse")

	key := cache.NewDefaultKeyer().ParseKey(cache.Hash(data), cache.ParseKeyOpts{
		CommentChar: c.Config.CommentChar,
		Version:     buildinfo.CacheVersion(),
	})

	if cached, ok, err := store.Get(ctx, key); err != nil {
		logger.Warnf("Cache read failed: %v", err)
	} else if ok {
		doc, err := pkgio.ReadJSON(bytes.NewReader(cached))
		if err == nil {
			logger.Infof("Loaded %d shapes from cache (%d dropped blocks)", len(doc.Shapes), len(doc.Diagnostics))
			return &parseResult{doc: doc, cached: true}, nil
		}
		logger.Debugf("Ignoring unreadable cache entry: %v", err)
	}

	p := gog.NewParser()
	if err := p.SetCommentChar(c.Config.CommentRune()); err != nil {
		return nil, err
	}
	collector := &gog.Collector{Next: parseLogger{logger: logger, source: displayName(path)}}
	p.SetHooks(collector)

	prog := newProgress(logger)
	shapes, err := p.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Parsed %d shapes, dropped %d blocks", len(shapes), len(collector.Diagnostics)))

	doc := pkgio.NewDocument(shapes, collector.Diagnostics)

	var buf bytes.Buffer
	if err := pkgio.WriteJSON(doc, &buf); err == nil {
		if err := store.Set(ctx, key, buf.Bytes(), c.Config.Cache.TTL.Duration); err != nil {
			logger.Warnf("Cache write failed: %v", err)
		}
	}
	return &parseResult{doc: doc}, nil
}

// readSource returns the contents of path, or of stdin for "-".
func readSource(path string) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeReadFailed, err, "read stdin")
		}
		return data, nil
	}
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "source %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeReadFailed, err, "read %s", path)
	}
	return data, nil
}

func displayName(path string) string {
	if path == stdinPath {
		return "stdin"
	}
	return path
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Writing over the source file is refused.
func openOutput(source, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	if path == source {
		return nil, errs.New(errs.ErrCodeInvalidPath, "output would overwrite the source file %s", path)
	}
	return os.Create(path)
}
