package channels

// Reader pulls a snapshot copy of the current value of T from the registry.
type Reader[T any] interface {
	Read() T
}

// Writer pushes a new value of T into the registry.
type Writer[T any] interface {
	Write(value T)
}

// ChannelKeys is implemented by a block's input/output key descriptors: it
// enumerates the channel names the descriptor binds to.
type ChannelKeys interface {
	ChannelNames() []string
}

// InputKeys binds a block's logical input fields against a Registry to
// produce a strongly-typed Reader.
type InputKeys[T any] interface {
	ChannelKeys
	Bind(r *Registry) (Reader[T], error)
}

// OutputKeys binds a block's logical output fields against a Registry to
// produce a strongly-typed Writer. Register creates the underlying cells
// (or reuses and type-checks existing ones) before Bind is called.
type OutputKeys[T any] interface {
	ChannelKeys
	Register(r *Registry) error
	Bind(r *Registry) (Writer[T], error)
}

// NamedCell is a single-channel Reader/Writer pair backed directly by one
// named cell in the Registry. Most block key descriptors are built by
// composing one NamedCell per logical field.
type NamedCell[T any] struct {
	Name string
	cell *T
}

// BindNamedCell resolves name against the registry and returns a bound
// NamedCell, or an error if the cell is absent or mistyped.
func BindNamedCell[T any](r *Registry, name string) (*NamedCell[T], error) {
	cell, err := Get[T](r, name)
	if err != nil {
		return nil, err
	}
	return &NamedCell[T]{Name: name, cell: cell}, nil
}

// RegisterNamedCell ensures name exists in the registry, creating a
// zero-valued cell if absent.
func RegisterNamedCell[T any](r *Registry, name string) error {
	_, err := Ensure[T](r, name)
	return err
}

// Read returns a snapshot copy of the cell's current value.
func (c *NamedCell[T]) Read() T {
	return *c.cell
}

// Write pushes a new value into the cell.
func (c *NamedCell[T]) Write(value T) {
	*c.cell = value
}

// InputKey is an InputKeys implementation for a block whose entire input is
// one field bound to one channel.
type InputKey[T any] struct {
	Channel string `json:"channel"`
}

// ChannelNames implements ChannelKeys.
func (k InputKey[T]) ChannelNames() []string {
	return []string{k.Channel}
}

// Bind implements InputKeys.
func (k InputKey[T]) Bind(r *Registry) (Reader[T], error) {
	return BindNamedCell[T](r, k.Channel)
}

// OutputKey is an OutputKeys implementation for a block whose entire output
// is one field bound to one channel.
type OutputKey[T any] struct {
	Channel string `json:"channel"`
}

// ChannelNames implements ChannelKeys.
func (k OutputKey[T]) ChannelNames() []string {
	return []string{k.Channel}
}

// Register implements OutputKeys.
func (k OutputKey[T]) Register(r *Registry) error {
	return RegisterNamedCell[T](r, k.Channel)
}

// Bind implements OutputKeys.
func (k OutputKey[T]) Bind(r *Registry) (Writer[T], error) {
	return BindNamedCell[T](r, k.Channel)
}

// emptyCell is a Reader/Writer over struct{}, used by blocks with a unit
// input or output.
type emptyCell struct{}

func (emptyCell) Read() struct{}   { return struct{}{} }
func (emptyCell) Write(_ struct{}) {}

// EmptyInputKeys is the InputKeys for a block with no input channels.
type EmptyInputKeys struct{}

// ChannelNames implements ChannelKeys.
func (EmptyInputKeys) ChannelNames() []string { return nil }

// Bind implements InputKeys.
func (EmptyInputKeys) Bind(*Registry) (Reader[struct{}], error) { return emptyCell{}, nil }

// EmptyOutputKeys is the OutputKeys for a block with no output channels.
type EmptyOutputKeys struct{}

// ChannelNames implements ChannelKeys.
func (EmptyOutputKeys) ChannelNames() []string { return nil }

// Register implements OutputKeys.
func (EmptyOutputKeys) Register(*Registry) error { return nil }

// Bind implements OutputKeys.
func (EmptyOutputKeys) Bind(*Registry) (Writer[struct{}], error) { return emptyCell{}, nil }
