package extract

import (
	"testing"

	"github.com/specialistvlad/wardleygo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotationExtractor(t *testing.T) {
	ex := &AnnotationExtractor{}

	t.Run("multiple occurrences", func(t *testing.T) {
		record, err := ex.Extract(Line{Text: "annotation 1 [[0.43,0.49],[0.08,0.79]] Standardising power allows Kettles to evolve faster", Number: 5})
		require.NoError(t, err)
		assert.Equal(t, &model.Annotation{
			Number:      1,
			Occurrences: []model.Point{{Visibility: 0.43, Maturity: 0.49}, {Visibility: 0.08, Maturity: 0.79}},
			Text:        "Standardising power allows Kettles to evolve faster",
			Line:        5,
		}, record)
	})

	t.Run("single occurrence", func(t *testing.T) {
		record, err := ex.Extract(Line{Text: "annotation 2 [0.48, 0.85] Hot water is obvious", Number: 6})
		require.NoError(t, err)
		a := record.(*model.Annotation)
		assert.Equal(t, 2, a.Number)
		assert.Equal(t, []model.Point{{Visibility: 0.48, Maturity: 0.85}}, a.Occurrences)
		assert.Equal(t, "Hot water is obvious", a.Text)
	})

	t.Run("malformed", func(t *testing.T) {
		record, err := ex.Extract(Line{Text: "annotation 3 [[0.4,0.5],[0.1 text", Number: 7})
		require.Error(t, err)
		assert.Nil(t, record)
	})

	t.Run("annotations position is not an annotation", func(t *testing.T) {
		record, err := ex.Extract(Line{Text: "annotations [0.72, 0.03]", Number: 8})
		require.NoError(t, err)
		assert.Nil(t, record)
	})
}

func TestNoteExtractor(t *testing.T) {
	ex := &NoteExtractor{}

	record, err := ex.Extract(Line{Text: "note +a generic note appeared [0.23, 0.33]", Number: 9})
	require.NoError(t, err)
	assert.Equal(t, &model.Note{Text: "+a generic note appeared", Visibility: 0.23, Maturity: 0.33, Line: 9}, record)

	record, err = ex.Extract(Line{Text: "note see [link] here [0.2, 0.3]", Number: 10})
	require.NoError(t, err)
	assert.Equal(t, "see [link] here", record.(*model.Note).Text)

	record, err = ex.Extract(Line{Text: "note nowhere", Number: 11})
	require.Error(t, err)
	assert.Nil(t, record)
}

func TestMethodExtractor(t *testing.T) {
	ex := &MethodExtractor{}

	for _, method := range []string{model.MethodBuild, model.MethodBuy, model.MethodOutsource} {
		t.Run(method, func(t *testing.T) {
			record, err := ex.Extract(Line{Text: method + " Kettle", Number: 12})
			require.NoError(t, err)
			assert.Equal(t, &model.Method{Name: "Kettle", Method: method, Line: 12}, record)
		})
	}

	record, err := ex.Extract(Line{Text: "build", Number: 13})
	require.Error(t, err)
	assert.Nil(t, record)

	record, err = ex.Extract(Line{Text: "build system->Compiler", Number: 14})
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestAttitudeExtractor(t *testing.T) {
	ex := &AttitudeExtractor{}

	record, err := ex.Extract(Line{Text: "pioneers [0.9, 0.1, 0.8, 0.3]", Number: 14})
	require.NoError(t, err)
	assert.Equal(t, &model.Attitude{
		Attitude: model.AttitudePioneers, Visibility: 0.9, Maturity: 0.1, Visibility2: 0.8, Maturity2: 0.3, Line: 14,
	}, record)

	record, err = ex.Extract(Line{Text: "settlers [0.9, 0.1]", Number: 15})
	require.Error(t, err, "legacy two coordinate form must be migrated first")
	assert.Nil(t, record)
}

func TestAcceleratorExtractor(t *testing.T) {
	ex := &AcceleratorExtractor{}

	record, err := ex.Extract(Line{Text: "deaccelerator Regulation [0.3, 0.6]", Number: 16})
	require.NoError(t, err)
	assert.Equal(t, &model.Accelerator{Name: "Regulation", Visibility: 0.3, Maturity: 0.6, Deaccelerator: true, Line: 16}, record)
}

func TestURLExtractor(t *testing.T) {
	ex := &URLExtractor{}

	record, err := ex.Extract(Line{Text: "url submapUrl [https://example.com/map/123]", Number: 17})
	require.NoError(t, err)
	assert.Equal(t, &model.URL{Name: "submapUrl", URL: "https://example.com/map/123", Line: 17}, record)

	record, err = ex.Extract(Line{Text: "url submapUrl https://example.com", Number: 18})
	require.Error(t, err)
	assert.Nil(t, record)
}

func TestSettingsExtractors(t *testing.T) {
	t.Run("title", func(t *testing.T) {
		record, err := (&TitleExtractor{}).Extract(Line{Text: "title My Map", Number: 1})
		require.NoError(t, err)
		assert.Equal(t, &Title{Text: "My Map", Line: 1}, record)
	})

	t.Run("evolution labels keep literal order", func(t *testing.T) {
		record, err := (&EvolutionExtractor{}).Extract(Line{Text: "evolution Novel->Emerging->Good->Best", Number: 2})
		require.NoError(t, err)
		evo := record.(*Evolution)
		require.Len(t, evo.Labels, 4)
		var got []string
		for _, l := range evo.Labels {
			got = append(got, l.Line1)
		}
		assert.Equal(t, []string{"Novel", "Emerging", "Good", "Best"}, got)
	})

	t.Run("evolution second caption line", func(t *testing.T) {
		record, err := (&EvolutionExtractor{}).Extract(Line{Text: "evolution Genesis->Custom->Product&(+rental)->Commodity&(+utility)", Number: 2})
		require.NoError(t, err)
		evo := record.(*Evolution)
		assert.Equal(t, model.EvolutionLabel{Line1: "Product", Line2: "(+rental)"}, evo.Labels[2])
	})

	t.Run("short evolution keeps defaults for missing stages", func(t *testing.T) {
		record, err := (&EvolutionExtractor{}).Extract(Line{Text: "evolution Novel->Emerging", Number: 2})
		require.Error(t, err)
		evo := record.(*Evolution)
		assert.Equal(t, "Emerging", evo.Labels[1].Line1)
		assert.Equal(t, "Product", evo.Labels[2].Line1)
	})

	t.Run("style and size", func(t *testing.T) {
		ex := &PresentationExtractor{}
		record, err := ex.Extract(Line{Text: "style wardley", Number: 3})
		require.NoError(t, err)
		assert.Equal(t, &Style{Name: "wardley", Line: 3}, record)

		record, err = ex.Extract(Line{Text: "size [1000, 800]", Number: 4})
		require.NoError(t, err)
		assert.Equal(t, &Size{Size: model.Size{Width: 1000, Height: 800}, Line: 4}, record)
	})

	t.Run("y-axis", func(t *testing.T) {
		record, err := (&PresentationExtractor{}).Extract(Line{Text: "y-axis Value->Seen->Hidden", Number: 5})
		require.NoError(t, err)
		assert.Equal(t, &YAxis{YAxis: model.YAxis{Label: "Value", Max: "Seen", Min: "Hidden"}, Line: 5}, record)
	})
}
