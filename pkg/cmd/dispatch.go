package cmd

import (
	"context"

	"github.com/google/uuid"
	"github.com/keshon/slashy/pkg/args"
)

// Dispatch resolves src against the arguments of c and runs the result.
// matched is false when the input fits no path of the tree; c is not run then.
func Dispatch(ctx context.Context, c Command, src args.Source, data interface{}) (matched bool, err error) {
	res, ok := args.Resolve(src, c.Arguments())
	if !ok {
		return false, nil
	}
	inv := &Invocation{
		ID:      uuid.NewString(),
		Handler: res.Handler,
		Args:    res.Args,
		Data:    data,
	}
	return true, c.Run(ctx, inv)
}
