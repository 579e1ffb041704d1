package logging

import "context"

type fieldsKey struct{}

// fields is the set of log fields carried by a context. It is copied on
// every With call so parent contexts never observe a child's values.
type fields struct {
	file    string
	op      string
	docType string
}

func fromContext(ctx context.Context) fields {
	if ctx == nil {
		return fields{}
	}
	f, _ := ctx.Value(fieldsKey{}).(fields)
	return f
}

func with(ctx context.Context, set func(*fields)) context.Context {
	f := fromContext(ctx)
	set(&f)
	return context.WithValue(ctx, fieldsKey{}, f)
}

// WithFile tags ctx with the document path.
func WithFile(ctx context.Context, path string) context.Context {
	return with(ctx, func(f *fields) { f.file = path })
}

// WithOperation tags ctx with the running editor operation.
func WithOperation(ctx context.Context, op string) context.Context {
	return with(ctx, func(f *fields) { f.op = op })
}

// WithType tags ctx with the document type being edited.
func WithType(ctx context.Context, name string) context.Context {
	return with(ctx, func(f *fields) { f.docType = name })
}

// GetFile returns the document path of ctx, or "".
func GetFile(ctx context.Context) string { return fromContext(ctx).file }

// GetOperation returns the operation of ctx, or "".
func GetOperation(ctx context.Context) string { return fromContext(ctx).op }

// GetType returns the document type of ctx, or "".
func GetType(ctx context.Context) string { return fromContext(ctx).docType }
