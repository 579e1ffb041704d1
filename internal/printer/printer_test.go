package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Infof("loaded %d types", 2)
	p.Successf("saved %s", "a.json")
	p.Warnf("skipped %d", 1)
	p.Errorf("bad %q", "x")
	p.Printf("plain %s", "text")

	assert.Equal(t,
		"• loaded 2 types\n"+
			"✓ saved a.json\n"+
			"! skipped 1\n"+
			"✗ bad \"x\"\n"+
			"plain text\n",
		ansi.Strip(buf.String()))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))

	assert.NotNil(t, Ctx(context.Background()), "falls back to stderr printer")
}
