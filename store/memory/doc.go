// Package memory provides an in-memory statesman.TransitionLog backed by
// an RWMutex-guarded map. Nothing survives a restart; it exists for tests
// and local development where spinning up a real backend is overkill.
package memory
