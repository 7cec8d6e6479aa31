package x448

// NewTestStream exposes the deterministic test byte source to x448_test.
var NewTestStream = newTestStream
