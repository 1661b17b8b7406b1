package backup

import (
	_ "embed"
	"encoding/json"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/jurnalguru/jurnal/internal/journal"
)

//go:embed schema.cue
var schemaCUE string

var (
	schemaOnce sync.Once
	schemaVal  cue.Value
)

// backupSchema compiles the embedded schema once per process.
func backupSchema() cue.Value {
	schemaOnce.Do(func() {
		ctx := cuecontext.New()
		schemaVal = ctx.CompileString(schemaCUE, cue.Filename("schema.cue")).
			LookupPath(cue.ParsePath("#Backup"))
		if err := schemaVal.Err(); err != nil {
			// The schema is embedded; failing to compile it is a bug.
			panic("backup: compile schema: " + err.Error())
		}
	})
	return schemaVal
}

// ValidateSnapshot checks a candidate backup document and decodes it.
//
// A candidate is valid iff it is well-formed JSON that structurally
// carries the entries sequence (possibly empty) and both profile
// objects, per the embedded CUE schema. Anything else fails with
// *ValidationError and no attempt at partial recovery.
//
// The decoded snapshot is returned with entry invariants re-established
// (hours ascending and duplicate-free, nil sequences made empty).
func ValidateSnapshot(raw []byte) (journal.Backup, error) {
	expr, err := cuejson.Extract("backup.json", raw)
	if err != nil {
		return journal.Backup{}, &ValidationError{Err: err}
	}

	schema := backupSchema()
	doc := schema.Context().BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return journal.Backup{}, &ValidationError{Err: err}
	}

	unified := schema.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return journal.Backup{}, &ValidationError{Err: err}
	}

	var b journal.Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return journal.Backup{}, &ValidationError{Err: err}
	}

	if b.Entries == nil {
		b.Entries = []journal.Entry{}
	}
	for i := range b.Entries {
		b.Entries[i].Normalize()
	}

	return b, nil
}
