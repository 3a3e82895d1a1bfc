package gog

import (
	"bufio"
	"fmt"
	"io"
	"time"

	errs "github.com/matzehuels/overlay/pkg/errors"
	"github.com/matzehuels/overlay/pkg/observability"
)

// maxLineBytes bounds a single physical line.
const maxLineBytes = 1 << 20

// Parser converts source text into shapes.
//
// A Parser holds only its configuration, so it may be reused sequentially.
// It must not be used by concurrent Parse calls while SetCommentChar or
// SetHooks is being called.
type Parser struct {
	comment rune
	hooks   observability.ParseHooks
}

// NewParser returns a parser that uses '#' comments and reports events to
// the global observability hooks.
func NewParser() *Parser {
	return &Parser{comment: DefaultCommentChar}
}

// CommentChar returns the current comment character.
func (p *Parser) CommentChar() rune { return p.comment }

// SetCommentChar changes the comment character used by later parses.
func (p *Parser) SetCommentChar(c rune) error {
	if err := errs.ValidateCommentChar(string(c)); err != nil {
		return err
	}
	p.comment = c
	return nil
}

// SetHooks routes this parser's events to h instead of the global hooks.
// A nil h restores the global hooks.
func (p *Parser) SetHooks(h observability.ParseHooks) { p.hooks = h }

func (p *Parser) eventHooks() observability.ParseHooks {
	if p.hooks != nil {
		return p.hooks
	}
	return observability.Parse()
}

// Parse reads r to the end and returns the shapes of every valid block in
// the order the blocks were closed.
//
// Malformed input never produces an error: invalid blocks are dropped and
// reported as diagnostics through the parser's hooks. The returned error is
// non-nil only when r fails, in which case the shapes finalized before the
// failure are returned with it.
func (p *Parser) Parse(r io.Reader) ([]*Shape, error) {
	return p.Append(nil, r)
}

// Append is like Parse but appends to dst.
func (p *Parser) Append(dst []*Shape, r io.Reader) ([]*Shape, error) {
	start := time.Now()
	m := &machine{hooks: p.eventHooks(), out: dst}
	before := len(dst)

	br := bufio.NewReaderSize(r, 64*1024)
	n := 0
	var err error
	for {
		text, long, rerr := readLine(br)
		if rerr != nil {
			if rerr != io.EOF {
				err = errs.Wrap(errs.ErrCodeReadFailed, rerr, "read line %d", n+1)
			}
			break
		}
		n++
		if long {
			m.diag(n, errs.New(errs.ErrCodeInvalidField, "line longer than %d bytes ignored", maxLineBytes))
			continue
		}
		l, ok := NormalizeLine(text, p.comment)
		if !ok {
			continue
		}
		l.Number = n
		m.handle(l)
	}

	if m.blk != nil {
		m.diag(m.blk.line, errs.New(errs.ErrCodeStructure, "block has no end"))
		m.blk = nil
	}

	m.hooks.OnParseComplete(len(m.out)-before, m.diags, time.Since(start), err)
	return m.out, err
}

// readLine returns the next line without its terminator. A line longer than
// maxLineBytes is consumed whole and reported as long with empty text.
func readLine(br *bufio.Reader) (string, bool, error) {
	var (
		buf  []byte
		long bool
	)
	for {
		chunk, more, err := br.ReadLine()
		if err != nil {
			if err == io.EOF && (len(buf) > 0 || long) {
				return string(buf), long, nil
			}
			return "", false, err
		}
		if !long && len(buf)+len(chunk) <= maxLineBytes {
			buf = append(buf, chunk...)
		} else {
			long, buf = true, nil
		}
		if !more {
			return string(buf), long, nil
		}
	}
}

// =============================================================================
// Block state machine
// =============================================================================

// machine is the per-call state: OUTSIDE when blk is nil, OPEN_UNTYPED
// when blk.kind is KindUnknown, OPEN_TYPED otherwise.
type machine struct {
	hooks observability.ParseHooks
	out   []*Shape
	blk   *block
	diags int
}

func (m *machine) diag(line int, err error) {
	m.diags++
	m.hooks.OnDiagnostic(line, err)
}

func (m *machine) handle(l Line) {
	switch l.Keyword {
	case "start":
		m.open(l)
		return
	case "end":
		m.close(l)
		return
	}

	if kind, ok := LookupKind(l.Keyword); ok {
		m.bind(kind, l)
		return
	}

	h, ok := fieldHandlers[l.Keyword]
	if !ok {
		m.diag(l.Number, errs.New(errs.ErrCodeUnknownKeyword, "unknown keyword %q", l.Keyword))
		return
	}
	if m.blk == nil {
		m.diag(l.Number, errs.New(errs.ErrCodeStructure, "%q outside of a block", l.Keyword))
		return
	}
	if err := h(m.blk, l); err != nil {
		m.diag(l.Number, errs.Wrap(errs.ErrCodeInvalidField, err, "field ignored"))
	}
}

func (m *machine) open(l Line) {
	if m.blk != nil {
		m.diag(l.Number, errs.New(errs.ErrCodeStructure,
			"start inside block started at line %d, block discarded", m.blk.line))
		m.blk = nil
		return
	}
	m.blk = newBlock(l.Number)
}

// bind assigns the block's kind. A second type keyword makes the block
// ambiguous, except that another annotation in an annotation block starts
// a sibling annotation carrying the style established so far.
func (m *machine) bind(kind Kind, l Line) {
	b := m.blk
	if b == nil {
		m.diag(l.Number, errs.New(errs.ErrCodeStructure, "%q outside of a block", l.Keyword))
		return
	}

	switch {
	case b.kind == KindUnknown:
		b.kind = kind
	case b.kind == KindAnnotation && kind == KindAnnotation && b.conflict == 0:
		next := newShapeContext(l.Number)
		inheritAnnotationStyle(b.shapes, next)
		b.shapes = append(b.shapes, next)
	default:
		if b.conflict == 0 {
			b.conflict = l.Number
		}
		return
	}

	if kind == KindAnnotation && l.Args != "" {
		ctx := b.current()
		ctx.text = l.Args
		ctx.hasText = true
	}
}

func (m *machine) close(l Line) {
	b := m.blk
	if b == nil {
		m.diag(l.Number, errs.New(errs.ErrCodeStructure, "end without start"))
		return
	}
	m.blk = nil

	switch {
	case b.conflict != 0:
		m.diag(b.line, errs.New(errs.ErrCodeStructure,
			"block has more than one shape type (second at line %d)", b.conflict))
		return
	case b.kind == KindUnknown:
		m.diag(b.line, errs.New(errs.ErrCodeStructure, "block has no shape type"))
		return
	}

	shapes, problems := b.finalize()
	for _, d := range problems {
		m.diag(d.Line, d.Err)
	}
	if len(shapes) > 0 {
		m.out = append(m.out, shapes...)
		m.hooks.OnShape(b.line, b.kind.String(), len(shapes))
	}
}

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic describes input that did not produce a shape.
type Diagnostic struct {
	Line int
	Err  error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %v", d.Line, d.Err)
}

func (d Diagnostic) Unwrap() error { return d.Err }

// Collector is a ParseHooks implementation that records diagnostics and
// totals. Set Next to forward every event to another hook set.
type Collector struct {
	Next observability.ParseHooks

	Shapes      int
	Diagnostics []Diagnostic
	Duration    time.Duration
}

func (c *Collector) OnShape(line int, kind string, count int) {
	if c.Next != nil {
		c.Next.OnShape(line, kind, count)
	}
}

func (c *Collector) OnDiagnostic(line int, err error) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Line: line, Err: err})
	if c.Next != nil {
		c.Next.OnDiagnostic(line, err)
	}
}

func (c *Collector) OnParseComplete(shapes, diagnostics int, d time.Duration, err error) {
	c.Shapes += shapes
	c.Duration += d
	if c.Next != nil {
		c.Next.OnParseComplete(shapes, diagnostics, d, err)
	}
}

var _ observability.ParseHooks = (*Collector)(nil)
