package orbitalmech

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// diagLogger receives domain violation and solver convergence reports.
// Correctness never depends on these reports: the NaN sentinel carried by the
// return values is the contract, the log is observational only.
var diagLogger kitlog.Logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))

// SetDiagnosticLogger replaces the logger used for domain violation reports.
// Pass nil to silence diagnostics entirely.
func SetDiagnosticLogger(l kitlog.Logger) {
	diagLogger = l
}

// diag reports a domain violation or solver issue for the named operation.
func diag(op string, keyvals ...interface{}) {
	if diagLogger == nil || !omConfig().Diagnostics {
		return
	}
	_ = diagLogger.Log(append([]interface{}{"op", op}, keyvals...)...)
}
