package writers

import (
	"encoding/json"
	"io"

	"cellsign/internal/engine"
	"cellsign/internal/jsonlutil"
	"cellsign/internal/output"
)

func encodeEvidence(enc *json.Encoder, e engine.Evidence) error {
	return enc.Encode(output.ToAPIEvidence(e))
}

// writeEvidenceJSONL streams one evidence row per line. Without evidence it
// writes nothing.
func writeEvidenceJSONL(w io.Writer, res engine.Result, opt Options) error {
	return jsonlutil.WriteAll[engine.Evidence](w, res.Evidence, opt.BufSize, encodeEvidence, IsBrokenPipe)
}
