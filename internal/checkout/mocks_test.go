package checkout

import "context"

// MockProvider implements Provider for testing
type MockProvider struct {
	URL string
	Err error

	Calls     int
	Submitted *Submission // Captures the submission passed to CreateSession
}

func (m *MockProvider) CreateSession(_ context.Context, sub Submission) (string, error) {
	m.Calls++
	m.Submitted = &sub
	if m.Err != nil {
		return "", m.Err
	}
	return m.URL, nil
}
