package lifecycle

// Status represents the current state of the client's connection to the
// service. A normal startup traverses the startup-phase statuses in
// declaration order, ending at StatusConnected.
type Status int

const (
	// StatusInitializing - the client is setting up supporting systems.
	StatusInitializing Status = iota
	// StatusInitialized - supporting systems are ready, login can begin.
	StatusInitialized
	// StatusLoggingIn - the client is validating its token.
	StatusLoggingIn
	// StatusConnectingToGateway - the websocket connection is being dialled.
	StatusConnectingToGateway
	// StatusIdentifyingSession - the websocket is open and authentication
	// is being sent.
	StatusIdentifyingSession
	// StatusAwaitingConfirmation - authentication sent, waiting for the
	// gateway to confirm the session.
	StatusAwaitingConfirmation
	// StatusLoadingState - the session is confirmed and the entity caches
	// are being populated. Usually the longest startup phase.
	StatusLoadingState
	// StatusConnected - startup complete; events are flowing.
	StatusConnected

	// StatusDisconnected - the gateway connection dropped. An in-between
	// state; reconnection or shutdown follows.
	StatusDisconnected
	// StatusReconnectQueued - the session is queued for reconnection.
	StatusReconnectQueued
	// StatusWaitingToReconnect - a reconnect attempt failed; the session
	// is backing off before the next try.
	StatusWaitingToReconnect
	// StatusReconnecting - the session is re-establishing the connection
	// and will cycle back through the startup sequence.
	StatusReconnecting
	// StatusShuttingDown - a shutdown was requested and teardown is in
	// progress.
	StatusShuttingDown
	// StatusShutdown - terminal; the client can no longer be used.
	StatusShutdown
	// StatusFailedLogin - terminal; the service rejected the credentials.
	StatusFailedLogin
)

// startupPhase classifies each status as startup-phase or not. Keeping the
// classification in a table keeps Status itself a plain closed enum.
var startupPhase = map[Status]bool{
	StatusInitializing:         true,
	StatusInitialized:          true,
	StatusLoggingIn:            true,
	StatusConnectingToGateway:  true,
	StatusIdentifyingSession:   true,
	StatusAwaitingConfirmation: true,
	StatusLoadingState:         true,
	StatusConnected:            true,
}

// IsStartup reports whether the status is part of the initial connection
// sequence. Only startup-phase statuses are valid wait targets: transient
// failure and teardown states are not guaranteed to be observed before the
// gate moves on.
func (s Status) IsStartup() bool {
	return startupPhase[s]
}

// String returns the status name for logging.
func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusInitialized:
		return "initialized"
	case StatusLoggingIn:
		return "logging_in"
	case StatusConnectingToGateway:
		return "connecting_to_gateway"
	case StatusIdentifyingSession:
		return "identifying_session"
	case StatusAwaitingConfirmation:
		return "awaiting_confirmation"
	case StatusLoadingState:
		return "loading_state"
	case StatusConnected:
		return "connected"
	case StatusDisconnected:
		return "disconnected"
	case StatusReconnectQueued:
		return "reconnect_queued"
	case StatusWaitingToReconnect:
		return "waiting_to_reconnect"
	case StatusReconnecting:
		return "reconnecting"
	case StatusShuttingDown:
		return "shutting_down"
	case StatusShutdown:
		return "shutdown"
	case StatusFailedLogin:
		return "failed_login"
	default:
		return "unknown"
	}
}
