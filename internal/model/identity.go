package model

// Identity is the caller's claimed id and optional display handle.
// It is resolved from request metadata without any verification, so it
// marks a trust boundary, not a security guarantee. A nil *Identity
// means the request carried no caller id at all.
type Identity struct {
	ID     string
	Handle string
}
