// Package printer writes styled, human-facing status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"

	"github.com/colonyops/kvdoc/internal/core/styles"
)

type ctxKey struct{}

// Printer prefixes messages with a colored marker.
type Printer struct {
	w io.Writer
}

// New returns a Printer that writes to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(marker lipgloss.Style, icon, msg string) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", marker.Render(icon), msg)
}

// Printf writes an unstyled formatted line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextPrimaryStyle, "•", fmt.Sprintf(format, args...))
}

func (p *Printer) Success(msg string) {
	p.line(styles.TextSuccessStyle, "✓", msg)
}

func (p *Printer) Successf(format string, args ...any) {
	p.Success(fmt.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.TextWarningStyle, "!", fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.TextErrorStyle, "✗", fmt.Sprintf(format, args...))
}
