package logging

import "github.com/rs/zerolog"

// ContextHook copies the fields set by WithFile, WithOperation and WithType
// onto every event logged with that context.
type ContextHook struct{}

// Run implements zerolog.Hook.
func (ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	f := fromContext(e.GetCtx())
	for _, kv := range [...][2]string{
		{"file", f.file},
		{"op", f.op},
		{"type", f.docType},
	} {
		if kv[1] != "" {
			e.Str(kv[0], kv[1])
		}
	}
}
