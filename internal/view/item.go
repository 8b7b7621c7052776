// Package view builds the system summary rows from a model snapshot and
// keeps them registered in the host's view tree.
package view

import (
	"github.com/Dicklesworthstone/sysview/internal/model"
	"github.com/Dicklesworthstone/sysview/internal/render"
)

// ViewItem binds one field to the config used to render it. It is a plain
// value; copies are independent.
type ViewItem[F comparable] struct {
	Field  F
	Config render.Config
}

// FromDefault builds an item from M's default config for field. M only
// supplies the defaults, so its zero value is used.
//
//	item := FromDefault[model.SystemModel](model.CPU(model.CPUUsagePct))
func FromDefault[M model.Queriable[F], F comparable](field F) ViewItem[F] {
	var m M
	return ViewItem[F]{Field: field, Config: m.DefaultConfig(field)}
}

// Update returns a copy of the item with opts applied to its config.
func (v ViewItem[F]) Update(opts ...render.Option) ViewItem[F] {
	v.Config = v.Config.Apply(opts...)
	return v
}

// Title is the configured display title.
func (v ViewItem[F]) Title() string { return v.Config.Title }

// Render formats the field of m into a segment exactly Config.Width cells wide.
func (v ViewItem[F]) Render(m model.Queriable[F]) render.Segment {
	text := render.FixedWidth(m.Format(v.Field, v.Config), v.Config.Width)
	return render.Styled(text, render.ValueStyle)
}
