package core

// Layer is a slice of the application that sees events before the App and
// gets a turn every update and render.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

// LayerStack holds layers bottom to top. Events go top down, updates and
// renders bottom up.
type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(e *Engine, l Layer) {
	ls.list = append(ls.list, l)
	l.OnAttach(e)
}

func (ls *LayerStack) Pop(e *Engine) (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	l.OnDetach(e)
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

// Dispatch offers ev to each layer from the top and reports whether one
// handled it.
func (ls *LayerStack) Dispatch(e *Engine, ev Event) bool {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if ls.list[i].OnEvent(e, ev) {
			return true
		}
	}
	return false
}

func (ls *LayerStack) update(e *Engine, dt float64) {
	for _, l := range ls.list {
		l.OnUpdate(e, dt)
	}
}

func (ls *LayerStack) render(e *Engine, alpha float64) {
	for _, l := range ls.list {
		l.OnRender(e, alpha)
	}
}

// Clear detaches every layer, top first.
func (ls *LayerStack) Clear(e *Engine) {
	for ls.Len() > 0 {
		ls.Pop(e)
	}
}
