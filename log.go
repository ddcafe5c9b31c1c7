package ubjson

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("ubjson")

var stderrFormat = logging.MustStringFormatter(
	`%{color}ubjson %{level:.4s}%{color:reset} ▶ %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, stderrFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "ubjson")
	logging.SetBackend(leveled)

	if lvl, err := logging.LogLevel(os.Getenv("UBJSON_LOG_LEVEL")); err == nil {
		leveled.SetLevel(lvl, "ubjson")
	}
}

// Configure installs a leveled stderr backend at the given level,
// overriding whatever UBJSON_LOG_LEVEL set at package init. Embedding
// applications that want to raise or silence ubjson's own diagnostics —
// distinct from a legitimate PolicyViolation versus a malformed-input
// ParseError during an incident — call this directly instead of setting
// the environment variable.
func Configure(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, stderrFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "ubjson")
	logging.SetBackend(leveled)
}
