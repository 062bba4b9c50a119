package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleColumns() []Column {
	return []Column{
		{Key: "name", Label: "Name"},
		{Key: "score", Label: "Score"},
	}
}

func sampleRows() []Row {
	return []Row{
		{"name": "delta", "score": 2},
		{"name": "alpha", "score": 10},
		{"name": "charlie", "score": 1},
	}
}

func TestTable_SortByStringColumn(t *testing.T) {
	tbl := New(sampleColumns(), sampleRows(), 10)

	tbl.SortBy("name")
	names := pluck(tbl.Page(), "name")
	assert.Equal(t, []interface{}{"alpha", "charlie", "delta"}, names)

	// Second click reverses the direction.
	tbl.SortBy("name")
	names = pluck(tbl.Page(), "name")
	assert.Equal(t, []interface{}{"delta", "charlie", "alpha"}, names)
}

func TestTable_SortByNumericColumnComparesNumerically(t *testing.T) {
	tbl := New(sampleColumns(), sampleRows(), 10)

	tbl.SortBy("score")
	scores := pluck(tbl.Page(), "score")
	// Numeric order, not lexicographic (which would put 10 before 2).
	assert.Equal(t, []interface{}{1, 2, 10}, scores)
}

func TestTable_SortNewColumnResetsToAscending(t *testing.T) {
	tbl := New(sampleColumns(), sampleRows(), 10)

	tbl.SortBy("name")
	tbl.SortBy("name") // descending
	tbl.SortBy("score")

	scores := pluck(tbl.Page(), "score")
	assert.Equal(t, []interface{}{1, 2, 10}, scores)
}

func TestTable_SortTreatsMissingValuesAsEmpty(t *testing.T) {
	tbl := New(sampleColumns(), []Row{
		{"name": "beta"},
		{"name": "alpha", "score": "x"},
	}, 10)

	tbl.SortBy("score")
	names := pluck(tbl.Page(), "name")
	assert.Equal(t, []interface{}{"beta", "alpha"}, names)
}

func TestTable_SortDoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	tbl := New(sampleColumns(), rows, 10)

	tbl.SortBy("name")

	assert.Equal(t, "delta", rows[0]["name"], "input slice order must be preserved")
}

func TestTable_PageCountAndClamp(t *testing.T) {
	rows := make([]Row, 7)
	for i := range rows {
		rows[i] = Row{"name": "r", "score": i}
	}
	tbl := New(sampleColumns(), rows, 3)

	require.Equal(t, 3, tbl.PageCount())

	tbl.SetPage(0)
	assert.Equal(t, 1, tbl.CurrentPage())

	tbl.SetPage(99)
	assert.Equal(t, 3, tbl.CurrentPage())
	assert.Len(t, tbl.Page(), 1)
}

func TestTable_EmptyDatasetRendersPlaceholder(t *testing.T) {
	tbl := New(sampleColumns(), nil, 5)

	assert.Equal(t, 1, tbl.PageCount())
	assert.Equal(t, [][]string{{NoResultsPlaceholder}}, tbl.RenderPage())
}

func TestTable_SetRowsResetsToPageOne(t *testing.T) {
	rows := make([]Row, 9)
	for i := range rows {
		rows[i] = Row{"score": i}
	}
	tbl := New(sampleColumns(), rows, 3)
	tbl.SetPage(3)

	tbl.SetRows(rows[:2])
	assert.Equal(t, 1, tbl.CurrentPage())
}

func TestTable_SelectPassesFullRow(t *testing.T) {
	tbl := New(sampleColumns(), sampleRows(), 10)

	var clicked Row
	tbl.OnSelect(func(row Row) { clicked = row })

	tbl.Select(1)
	require.NotNil(t, clicked)
	assert.Equal(t, "alpha", clicked["name"])

	clicked = nil
	tbl.Select(42)
	assert.Nil(t, clicked, "out-of-range selection is ignored")
}

func pluck(rows []Row, key string) []interface{} {
	out := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		out = append(out, row[key])
	}
	return out
}
