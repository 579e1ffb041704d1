package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextFields(t *testing.T) {
	base := WithFile(context.Background(), "/tmp/data.json")
	child := WithType(WithOperation(base, "save"), "colors")

	assert.Equal(t, "/tmp/data.json", GetFile(child))
	assert.Equal(t, "save", GetOperation(child))
	assert.Equal(t, "colors", GetType(child))

	assert.Empty(t, GetOperation(base), "parent is not changed by a child")
	assert.Empty(t, GetType(base))
}

func TestContextFields_Empty(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetFile(ctx))
	assert.Empty(t, GetOperation(ctx))
	assert.Empty(t, GetType(ctx))
}
