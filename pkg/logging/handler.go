package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
)

// defaultTimeFormat is the timestamp layout used when none is configured.
const defaultTimeFormat = "2006-01-02 15:04:05"

// HandlerOptions configures a Handler. The zero value is usable.
type HandlerOptions struct {
	// Level is the minimum record level that will be logged.
	// Defaults to slog.LevelInfo.
	Level slog.Leveler

	// ProjectRoot overrides project-root auto-detection. Source paths are
	// relativized against it when rendering the location field.
	ProjectRoot string

	// TimeFormat overrides the timestamp layout.
	TimeFormat string

	// Clock supplies timestamps for records that carry none.
	Clock clockwork.Clock
}

// Handler is a slog.Handler that writes lines of the form
//
//	LEVEL    TIMESTAMP RELATIVE.PATH.TYPENAME.FUNCTION.LINE: MESSAGE key=value ...
//
// The level is left-aligned in eight columns. The location field is the
// record's source file relativized against the project root,
// dot-separated, without the .go extension; the TYPENAME segment appears
// only when the emitting function is a method and is derived from the
// runtime function symbol, best-effort.
//
// Formatting is total: any failure while deriving the location degrades to
// a less specific field rather than reaching the caller.
type Handler struct {
	opts        HandlerOptions
	projectRoot string
	attrs       []slog.Attr
	groups      []string
	mu          *sync.Mutex
	w           io.Writer
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler creates a Handler writing to w. The project root is resolved
// once here and reused for every record, so the directory walk is not
// repeated per log line.
func NewHandler(w io.Writer, opts *HandlerOptions) *Handler {
	h := &Handler{w: w, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	if h.opts.TimeFormat == "" {
		h.opts.TimeFormat = defaultTimeFormat
	}
	if h.opts.Clock == nil {
		h.opts.Clock = clockwork.NewRealClock()
	}
	h.projectRoot = h.opts.ProjectRoot
	if h.projectRoot == "" {
		h.projectRoot = FindProjectRoot()
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	t := r.Time
	if t.IsZero() {
		t = h.opts.Clock.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %s %s: %s",
		r.Level.String(), t.Format(h.opts.TimeFormat), h.location(r.PC), r.Message)

	for _, a := range h.attrs {
		appendAttr(&b, "", a)
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := io.WriteString(h.w, b.String()); err != nil {
		return fmt.Errorf("contextual handler: %w", err)
	}
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := h.clone()
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.groups = append(h2.groups, name)
	return h2
}

func (h *Handler) clone() *Handler {
	h2 := *h
	h2.attrs = slices.Clone(h.attrs)
	h2.groups = slices.Clone(h.groups)
	return &h2
}

// location renders the dotted source-location field for the record's
// program counter. Each derivation step falls back rather than failing.
func (h *Handler) location(pc uintptr) string {
	if pc == 0 {
		return "unknown"
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()

	funcName, typeName := splitFunction(frame.Function)

	segments := make([]string, 0, 4)
	if path := h.relativePath(frame.File); path != "" {
		segments = append(segments, path)
	}
	if typeName != "" {
		segments = append(segments, typeName)
	}
	if funcName != "" {
		segments = append(segments, funcName)
	}
	if frame.Line > 0 {
		segments = append(segments, strconv.Itoa(frame.Line))
	}
	if len(segments) == 0 {
		return "unknown"
	}
	return strings.Join(segments, ".")
}

// relativePath turns an absolute source path into a dotted namespace
// relative to the project root, without the .go extension. Files outside
// the root fall back to their bare stem.
func (h *Handler) relativePath(file string) string {
	if file == "" {
		return ""
	}
	if h.projectRoot != "" {
		rel, err := filepath.Rel(h.projectRoot, file)
		if err == nil && !strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel) {
			rel = strings.TrimSuffix(rel, ".go")
			return strings.ReplaceAll(rel, string(filepath.Separator), ".")
		}
	}
	return strings.TrimSuffix(filepath.Base(file), ".go")
}

// closurePattern matches the synthetic names the runtime gives function
// literals, such as func1.
var closurePattern = regexp.MustCompile(`^func\d+$`)

// splitFunction derives the function and receiver type names from a
// runtime symbol such as "pkg/config.(*EnvProvider).GetKey". Plain
// functions and closures yield an empty type name.
func splitFunction(symbol string) (funcName, typeName string) {
	if symbol == "" {
		return "", ""
	}
	if i := strings.LastIndex(symbol, "/"); i >= 0 {
		symbol = symbol[i+1:]
	}

	parts := strings.Split(symbol, ".")
	funcName = parts[len(parts)-1]
	if len(parts) < 3 || closurePattern.MatchString(funcName) {
		return funcName, ""
	}

	recv := parts[len(parts)-2]
	if strings.HasPrefix(recv, "(*") && strings.HasSuffix(recv, ")") {
		return funcName, recv[2 : len(recv)-1]
	}
	if recv == "" || closurePattern.MatchString(recv) {
		return funcName, ""
	}
	return funcName, recv
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s=%s", key, a.Value.String())
}
