package mock

import (
	"context"

	"github.com/vidseo/publish-ms-go/internal/model"
	"github.com/vidseo/publish-ms-go/internal/port"
)

// MetadataGenerator implements port.MetadataGenerator for tests.
type MetadataGenerator struct {
	Out model.MetadataBundle
	Err error

	// captured input
	In port.GenerateMetadataInput

	Called bool
}

func (m *MetadataGenerator) Generate(ctx context.Context, in port.GenerateMetadataInput) (model.MetadataBundle, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return model.MetadataBundle{}, m.Err
	}
	return m.Out, nil
}
