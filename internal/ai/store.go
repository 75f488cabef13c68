package ai

import "fmt"

// NetworkStore keeps encoded networks by name. storage.Store implements it.
type NetworkStore interface {
	LoadNetwork(name string) ([]byte, error)
	SaveNetwork(name string, weights []byte) error
}

// LoadNetwork decodes the network stored under name. Store errors are
// returned unchanged, so callers can test for not-found with errors.Is.
func LoadNetwork(s NetworkStore, name string) (*Network, error) {
	data, err := s.LoadNetwork(name)
	if err != nil {
		return nil, err
	}
	n, err := UnmarshalNetwork(data)
	if err != nil {
		return nil, fmt.Errorf("ai: network %q: %w", name, err)
	}
	return n, nil
}

// SaveNetwork encodes n and stores it under name.
func SaveNetwork(s NetworkStore, name string, n *Network) error {
	data, err := n.MarshalBinary()
	if err != nil {
		return fmt.Errorf("ai: encode network %q: %w", name, err)
	}
	return s.SaveNetwork(name, data)
}
