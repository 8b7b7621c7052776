package view

import (
	"github.com/Dicklesworthstone/sysview/internal/model"
	"github.com/Dicklesworthstone/sysview/internal/render"
)

// Column widths shared by every row so that rows line up.
const (
	RowNameWidth      = 15
	RowFieldNameWidth = 9
	RowFieldWidth     = 17
)

// RenderRow renders several fields of one model: the label, then a
// (title, value) pair per item in the given order.
func RenderRow[F comparable, M model.Queriable[F]](name string, m M, items []ViewItem[F]) render.Row {
	var row render.Row
	row.Append(label(name))
	for _, item := range items {
		row.Append(render.Styled(render.FixedWidth(item.Title(), RowFieldNameWidth), render.TitleStyle))
		row.Append(item.Update(render.WithWidth(RowFieldWidth)).Render(m))
	}
	return row
}

// RenderModelsRow renders one field across several named models: the label,
// then a (name, value) pair per entry in the given order.
func RenderModelsRow[F comparable, M model.Queriable[F]](name string, entries []model.Entry[M], item ViewItem[F]) render.Row {
	item = item.Update(render.WithWidth(RowFieldWidth))
	var row render.Row
	row.Append(label(name))
	for _, e := range entries {
		row.Append(render.Styled(render.FixedWidth(e.Name, RowFieldNameWidth), render.TitleStyle))
		row.Append(item.Render(e.Model))
	}
	return row
}

func label(name string) render.Segment {
	return render.Styled(render.FixedWidth(name, RowNameWidth), render.LabelStyle)
}
