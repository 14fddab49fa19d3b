package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfusionMatrixLabelForm(t *testing.T) {
	classes := []string{"cat", "dog"}
	actual := []string{"cat", "dog", "cat"}
	predicted := []string{"cat", "cat", "dog"}

	cm, err := ConfusionMatrix(classes, actual, predicted)
	require.NoError(t, err)

	r, c := cm.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.Equal(t, 1.0, cm.At(0, 0))
	assert.Equal(t, 1.0, cm.At(0, 1))
	assert.Equal(t, 1.0, cm.At(1, 0))
	assert.Equal(t, 0.0, cm.At(1, 1))
}

func TestConfusionMatrixSingleClass(t *testing.T) {
	cm, err := ConfusionMatrix([]string{"cat"}, []string{"cat", "cat", "cat"}, []string{"cat", "cat", "cat"})
	require.NoError(t, err)

	r, c := cm.Dims()
	require.Equal(t, 1, r)
	require.Equal(t, 1, c)
	assert.Equal(t, 3.0, cm.At(0, 0))
}

func TestConfusionMatrixUnknownActualLabel(t *testing.T) {
	_, err := ConfusionMatrix([]string{"cat", "dog"}, []string{"bird"}, []string{"cat"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bird")
}

func TestConfusionMatrixLengthMismatch(t *testing.T) {
	_, err := ConfusionMatrix([]string{"cat"}, []string{"cat", "cat"}, []string{"cat"})
	assert.Error(t, err)
}

func TestResolvePredictionsLabelForm(t *testing.T) {
	got, err := ResolvePredictions([]string{"cat", "dog"}, []string{"cat", "cat", "dog"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cat", "dog"}, got)
}

func TestResolvePredictionsIndexForm(t *testing.T) {
	got, err := ResolvePredictions([]string{"cat", "dog"}, []int{0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cat", "dog"}, got)
}

func TestResolvePredictionsIndexFormAsStrings(t *testing.T) {
	got, err := ResolvePredictions([]string{"cat", "dog"}, []string{"0", "0", "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cat", "dog"}, got)
}

func TestResolvePredictionsFloatIndices(t *testing.T) {
	got, err := ResolvePredictions([]string{"cat", "dog"}, []float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "cat"}, got)
}

func TestResolvePredictionsIndexOutOfRange(t *testing.T) {
	_, err := ResolvePredictions([]string{"cat", "dog"}, []int{0, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestResolvePredictionsUnknownLabelNotAnIndex(t *testing.T) {
	_, err := ResolvePredictions([]string{"cat", "dog"}, []string{"cat", "bird"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bird")
}

func TestResolvePredictionsFractionalFloat(t *testing.T) {
	_, err := ResolvePredictions([]string{"cat", "dog"}, []float64{0.5})
	assert.Error(t, err)
}

func TestResolvePredictionsUnsupportedType(t *testing.T) {
	_, err := ResolvePredictions([]string{"cat", "dog"}, 42)
	assert.Error(t, err)
}

func TestReportValues(t *testing.T) {
	classes := []string{"cat", "dog"}
	actual := []string{"cat", "dog", "cat"}
	predicted := []string{"cat", "cat", "dog"}

	rep, err := Report(classes, actual, predicted)
	require.NoError(t, err)

	require.Len(t, rep.Classes, 2)
	cat, dog := rep.Classes[0], rep.Classes[1]

	assert.Equal(t, "cat", cat.Label)
	assert.InDelta(t, 0.5, cat.Precision, 1e-12)
	assert.InDelta(t, 0.5, cat.Recall, 1e-12)
	assert.InDelta(t, 0.5, cat.F1, 1e-12)
	assert.Equal(t, 2, cat.Support)

	assert.Equal(t, "dog", dog.Label)
	assert.Equal(t, 0.0, dog.Precision)
	assert.Equal(t, 0.0, dog.Recall)
	assert.Equal(t, 0.0, dog.F1)
	assert.Equal(t, 1, dog.Support)

	assert.InDelta(t, 1.0/3.0, rep.Accuracy, 1e-12)
	assert.InDelta(t, 0.25, rep.Macro.Precision, 1e-12)
	assert.InDelta(t, 1.0/3.0, rep.Weighted.Precision, 1e-12)
	assert.Equal(t, 3, rep.Total)
}

func TestReportEquivalentUnderIndexResolution(t *testing.T) {
	classes := []string{"cat", "dog"}
	actual := []string{"cat", "dog", "cat"}

	fromLabels, err := Report(classes, actual, []string{"cat", "cat", "dog"})
	require.NoError(t, err)

	resolved, err := ResolvePredictions(classes, []int{0, 0, 1})
	require.NoError(t, err)
	fromIndices, err := Report(classes, actual, resolved)
	require.NoError(t, err)

	assert.Equal(t, fromLabels.Format(), fromIndices.Format())
}

func TestReportFormatIdempotent(t *testing.T) {
	classes := []string{"cat", "dog"}
	actual := []string{"cat", "dog", "cat"}
	predicted := []string{"cat", "cat", "dog"}

	first, err := Report(classes, actual, predicted)
	require.NoError(t, err)
	second, err := Report(classes, actual, predicted)
	require.NoError(t, err)

	assert.Equal(t, first.Format(), second.Format())
}

func TestReportFormatColumns(t *testing.T) {
	rep, err := Report([]string{"cat"}, []string{"cat"}, []string{"cat"})
	require.NoError(t, err)

	text := rep.Format()
	assert.Contains(t, text, "precision")
	assert.Contains(t, text, "recall")
	assert.Contains(t, text, "f1-score")
	assert.Contains(t, text, "support")
	assert.Contains(t, text, "accuracy")
	assert.Contains(t, text, "macro avg")
	assert.Contains(t, text, "weighted avg")
}
