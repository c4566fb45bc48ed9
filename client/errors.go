package client

import "errors"

// Domain errors for the client package.
var (
	// ErrUnknownKind is returned when an ingestion call names an entity
	// kind the client has no registry for.
	ErrUnknownKind = errors.New("client: unknown entity kind")

	// ErrKindMismatch is returned when an ingested entity's type does not
	// match the kind it was delivered under.
	ErrKindMismatch = errors.New("client: entity type does not match kind")

	// ErrNoDispatcher is returned by RestPing when the client was built
	// without a REST dispatcher.
	ErrNoDispatcher = errors.New("client: no REST dispatcher configured")
)
