package rpc

// Map converts every element of list, nil stays nil.
func Map[From, To any](list []From, converter func(From) To) []To {
	if list == nil {
		return nil
	}

	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

// ptr converts a single value, nil stays nil.
func ptr[From, To any](v *From, converter func(From) To) *To {
	if v == nil {
		return nil
	}

	res := converter(*v)
	return &res
}
