package device

import "fmt"

// System returns the platform audio backend. Platform integrations are
// built and shipped separately from this module, so the in-tree backend
// reports every operation as unsupported.
func System() Backend {
	return unsupportedBackend{}
}

type unsupportedBackend struct{}

func (unsupportedBackend) List() ([]Info, error) {
	return nil, fmt.Errorf("%w on this platform", ErrNoBackend)
}

func (unsupportedBackend) Default() (Endpoint, error) {
	return nil, fmt.Errorf("%w on this platform", ErrNoBackend)
}

func (unsupportedBackend) Open(id string) (Endpoint, error) {
	return nil, fmt.Errorf("%w on this platform", ErrNoBackend)
}
