package mock

import (
	"context"

	"github.com/vidseo/publish-ms-go/internal/port"
)

// Publisher implements port.Publisher for tests.
type Publisher struct {
	Out port.PublishOutput
	Err error

	// captured input
	In port.PublishInput

	Called bool
}

func (m *Publisher) Publish(ctx context.Context, in port.PublishInput) (port.PublishOutput, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return port.PublishOutput{}, m.Err
	}
	return m.Out, nil
}
