package extract

import (
	"testing"

	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineExtractor(t *testing.T) {
	ex := &PipelineExtractor{}

	t.Run("explicit bounds", func(t *testing.T) {
		record, err := ex.Extract(Line{Text: "pipeline Foo [0.15, 0.65]", Number: 2})
		require.NoError(t, err)
		p := record.(*model.Pipeline)
		assert.Equal(t, "Foo", p.Name)
		assert.Equal(t, 0.15, p.Maturity1)
		assert.Equal(t, 0.65, p.Maturity2)
		assert.False(t, p.Hidden)
	})

	t.Run("block opener without bounds", func(t *testing.T) {
		record, err := ex.Extract(Line{Text: "pipeline Kettle {", Number: 2})
		require.NoError(t, err)
		p := record.(*model.Pipeline)
		assert.Equal(t, "Kettle", p.Name)
		assert.True(t, p.Hidden)
	})

	t.Run("malformed bounds", func(t *testing.T) {
		record, err := ex.Extract(Line{Text: "pipeline Foo [x, 0.65]", Number: 2})
		require.Error(t, err)
		assert.Nil(t, record)
	})

	t.Run("single bound", func(t *testing.T) {
		record, err := ex.Extract(Line{Text: "pipeline Foo [0.65]", Number: 2})
		require.Error(t, err)
		assert.Nil(t, record)
	})
}

func TestPipelineComponentExtractor(t *testing.T) {
	ex := &PipelineComponentExtractor{}

	t.Run("member line", func(t *testing.T) {
		record, err := ex.Extract(Line{Text: "  component Campfire Kettle [0.50]", Number: 4, Parent: "Kettle"})
		require.NoError(t, err)
		assert.Equal(t, &model.PipelineComponent{
			Name:     "Campfire Kettle",
			Pipeline: "Kettle",
			Line:     4,
			Maturity: 0.5,
			Label:    model.Label{X: 10, Y: -20},
		}, record)
	})

	t.Run("top level component is ignored", func(t *testing.T) {
		record, err := ex.Extract(Line{Text: "component Kettle [0.4, 0.5]", Number: 1})
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("member without maturity", func(t *testing.T) {
		record, err := ex.Extract(Line{Text: "component Campfire Kettle", Number: 4, Parent: "Kettle"})
		require.Error(t, err)
		assert.Nil(t, record)
	})
}
