package vault

import (
	"context"
	"fmt"
	"strconv"
)

// FavoriteOperations provides the operations over the caller's server-side
// favorites list.
type FavoriteOperations struct {
	transport *Transport
}

// ListFavorites lists the caller's favorites, in the order served.
func (f *FavoriteOperations) ListFavorites(ctx context.Context) ([]ExtendedObjectVersion, error) {
	var ret []ExtendedObjectVersion
	if _, err := f.transport.Get(ctx, "favorites", &ret); err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return ret, nil
}

// AddToFavorites adds the object to the caller's favorites list and
// returns the object with its favorite metadata.
func (f *FavoriteOperations) AddToFavorites(ctx context.Context, id ObjID) (*ExtendedObjectVersion, error) {
	if err := id.Validate(); err != nil {
		return nil, invalidArgument("id", err)
	}

	var ret ExtendedObjectVersion
	if err := f.transport.Post(ctx, "favorites", id, &ret); err != nil {
		return nil, fmt.Errorf("failed to add %s to favorites: %w", id, err)
	}
	return &ret, nil
}

// RemoveFromFavorites removes the object from the caller's favorites list
// and returns the object with its favorite metadata.
func (f *FavoriteOperations) RemoveFromFavorites(ctx context.Context, id ObjID) (*ExtendedObjectVersion, error) {
	if err := id.Validate(); err != nil {
		return nil, invalidArgument("id", err)
	}

	path := "favorites/" + strconv.Itoa(id.Type) + "/" + strconv.Itoa(id.ID)
	var ret ExtendedObjectVersion
	if err := f.transport.Delete(ctx, path, &ret); err != nil {
		return nil, fmt.Errorf("failed to remove %s from favorites: %w", id, err)
	}
	return &ret, nil
}
