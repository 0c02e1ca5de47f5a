package machine

// Builder provides a fluent API for building machines without spelling out
// type arguments on every option.
type Builder[L comparable, S, E any] struct {
	label LabelFunc[S, L]
	opts  []Option[L, S, E]
}

// NewBuilder creates a new machine builder reading labels with label.
func NewBuilder[L comparable, S, E any](label LabelFunc[S, L]) *Builder[L, S, E] {
	return &Builder[L, S, E]{label: label}
}

// On registers the reducer for a status. The first call sets the initial label.
func (b *Builder[L, S, E]) On(label L, r Reducer[S, E]) *Builder[L, S, E] {
	b.opts = append(b.opts, WithStatus(label, r))
	return b
}

// Initial designates the fallback label explicitly.
func (b *Builder[L, S, E]) Initial(label L) *Builder[L, S, E] {
	b.opts = append(b.opts, WithInitial[L, S, E](label))
	return b
}

// Strict enables rejection of unregistered labels.
func (b *Builder[L, S, E]) Strict() *Builder[L, S, E] {
	b.opts = append(b.opts, WithStrict[L, S, E]())
	return b
}

// OnFallback registers a hook called on every lenient fallback.
func (b *Builder[L, S, E]) OnFallback(hook FallbackHook[L]) *Builder[L, S, E] {
	b.opts = append(b.opts, WithFallbackHook[L, S, E](hook))
	return b
}

// Build returns the constructed machine. Registration errors surface here.
func (b *Builder[L, S, E]) Build() (*Machine[L, S, E], error) {
	return New(b.label, b.opts...)
}

// MustBuild works like Build but panics on configuration errors.
func (b *Builder[L, S, E]) MustBuild() *Machine[L, S, E] {
	return MustNew(b.label, b.opts...)
}
