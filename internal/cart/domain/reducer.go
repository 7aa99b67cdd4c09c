package domain

import "fmt"

// Reduce applies a to state and returns the next state. The input state is
// never modified; on error the caller keeps the state it already has.
//
// Items not touched by the action keep their relative order and the touched
// item is appended at the end.
func Reduce(state State, a Action) (State, error) {
	switch act := a.(type) {
	case Add:
		quantity := 1
		if existing, ok := state.Find(act.SKU); ok {
			quantity = existing.Quantity + 1
		}
		items := append(state.without(act.SKU), LineItem{
			SKU:      act.SKU,
			Name:     act.Name,
			Price:    act.Price,
			Quantity: quantity,
		})
		return State{Items: items}, nil

	case Remove:
		return State{Items: state.without(act.SKU)}, nil

	case SetQuantity:
		existing, ok := state.Find(act.SKU)
		if !ok {
			return state, fmt.Errorf("%w: sku %q", ErrItemNotFound, act.SKU)
		}
		existing.Quantity = act.Quantity
		return State{Items: append(state.without(act.SKU), existing)}, nil

	case Submit:
		return NewState(), nil

	default:
		return state, fmt.Errorf("%w: %T", ErrUnrecognizedAction, a)
	}
}
