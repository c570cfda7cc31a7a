package domain

import "time"

// EventKind discriminates provenance log entries.
type EventKind string

const (
	EventUploaded      EventKind = "uploaded"
	EventAccessGranted EventKind = "access_granted"
	EventAccessRevoked EventKind = "access_revoked"
)

// Event is one immutable entry in the provenance log. Seq is assigned by the
// event store in emission order, starting at 1; EmittedAt is the clock value
// of the transition that produced the event. Fields beyond the common header
// are populated per kind: uploaded events carry the full record payload,
// access events carry the grantee.
type Event struct {
	Seq       uint64
	Kind      EventKind
	FileHash  FileHash
	EmittedAt time.Time

	Uploader         Principal
	StoragePointer   string
	Signature        []byte
	HasLocationLock  bool
	LockLatMicro     int32
	LockLonMicro     int32
	LockRadiusMeters uint32

	Grantee Principal
}

// NewUploadedEvent builds the event emitted when a record is created.
func NewUploadedEvent(rec FileRecord) Event {
	return Event{
		Kind:             EventUploaded,
		FileHash:         rec.FileHash,
		EmittedAt:        rec.Timestamp,
		Uploader:         rec.Uploader,
		StoragePointer:   rec.StoragePointer,
		Signature:        rec.Signature,
		HasLocationLock:  rec.HasLocationLock,
		LockLatMicro:     rec.LockLatMicro,
		LockLonMicro:     rec.LockLonMicro,
		LockRadiusMeters: rec.LockRadiusMeters,
	}
}

// NewAccessGrantedEvent builds the event emitted when access is granted.
func NewAccessGrantedEvent(hash FileHash, grantee Principal, at time.Time) Event {
	return Event{Kind: EventAccessGranted, FileHash: hash, Grantee: grantee, EmittedAt: at}
}

// NewAccessRevokedEvent builds the event emitted when access is revoked.
func NewAccessRevokedEvent(hash FileHash, grantee Principal, at time.Time) Event {
	return Event{Kind: EventAccessRevoked, FileHash: hash, Grantee: grantee, EmittedAt: at}
}

// Clone returns a copy of the event with its own signature buffer.
func (e Event) Clone() Event {
	c := e
	if e.Signature != nil {
		c.Signature = make([]byte, len(e.Signature))
		copy(c.Signature, e.Signature)
	}
	return c
}
