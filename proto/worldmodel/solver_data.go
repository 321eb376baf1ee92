package worldmodel

import (
	"github.com/grail-owl/grailnet/model"
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// SolverDataBatch is the body of a solver's solver_data message:
// create_uris: u8 | num: u32 | [type_alias: u32, time: i64,
// sized_utf16(target_uri), sized_bytes(payload)]* (§4.E.4). CreateURIs
// requests automatic URI creation if a target is unknown to the world
// model.
type SolverDataBatch struct {
	CreateURIs bool
	Entries    []model.SolutionData
}

// EncodeSolverData returns the wire bytes for batch.
func EncodeSolverData(batch SolverDataBatch) []byte {
	return envelope.Encode(uint8(SolverData), func(w *wire.Writer) {
		w.AppendUint8(boolToUint8(batch.CreateURIs))
		w.AppendUint32(uint32(len(batch.Entries)))
		for _, e := range batch.Entries {
			w.AppendUint32(e.TypeAlias)
			w.AppendInt64(int64(e.Time))
			w.AppendSizedUTF16String(e.Target)
			w.AppendSizedBytes(e.Data)
		}
	})
}

// DecodeSolverData parses a solver_data frame. ok is false iff the decode
// gate fails.
func DecodeSolverData(frame []byte) (batch SolverDataBatch, ok bool) {
	r, ok := envelope.Open(frame, uint8(SolverData))
	if !ok {
		return SolverDataBatch{}, false
	}

	batch.CreateURIs = r.ReadUint8() != 0
	num := r.ReadUint32()
	if r.OutOfRange() {
		return SolverDataBatch{}, false
	}
	batch.Entries = make([]model.SolutionData, 0, r.SafeCount(num, 20))
	for i := uint32(0); i < num && !r.OutOfRange(); i++ {
		var e model.SolutionData
		e.TypeAlias = r.ReadUint32()
		e.Time = model.GrailTime(r.ReadInt64())
		e.Target = r.ReadSizedUTF16String()
		e.Data = r.ReadSizedBytes()
		batch.Entries = append(batch.Entries, e)
	}
	if r.OutOfRange() {
		return SolverDataBatch{}, false
	}
	return batch, true
}
