package chem

//ReactionHook is called after every reaction. Returning true removes the hook.
type ReactionHook func(w *World, ev ReactionEvent) bool

type reactionHook struct {
	key string
	f   ReactionHook
}

//AddReactionHook registers f under key. Hooks run in registration order and
//survive resets.
func (w *World) AddReactionHook(f ReactionHook, key string) {
	w.hooks = append(w.hooks, reactionHook{key: key, f: f})
	w.Log.Debugf("[%v] reaction hook added %v", w.Frame(), key)
}

//runReactionHooks calls every hook registered before ev. Hooks added from
//inside a hook are kept and first run on the next reaction.
func (w *World) runReactionHooks(ev ReactionEvent) {
	running := w.hooks
	w.hooks = nil

	var next []reactionHook
	for _, h := range running {
		if h.f(w, ev) {
			w.Log.Debugf("[%v] reaction hook %v expired", w.Frame(), h.key)
			continue
		}
		next = append(next, h)
	}
	w.hooks = append(next, w.hooks...)
}
