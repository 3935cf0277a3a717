package vault

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ObjectOperations provides the typed operations over object resources.
// Each method issues exactly one HTTP request and blocks until it
// completes or the context is cancelled.
type ObjectOperations struct {
	transport *Transport
}

// latestSegment is the path segment standing in for an explicit version
// number when an operation targets the newest version.
const latestSegment = "latest"

// CreateNewObject creates a new object of the given type and returns the
// version the server created.
func (o *ObjectOperations) CreateNewObject(ctx context.Context, objectTypeID int, info *ObjectCreationInfo) (*ObjectVersion, error) {
	if err := validation.Validate(objectTypeID, validation.Min(0)); err != nil {
		return nil, invalidArgument("objectTypeID", err)
	}
	if info == nil {
		return nil, invalidArgument("info", errors.New("must not be nil"))
	}

	var ret ObjectVersion
	if err := o.transport.Post(ctx, "objects/"+strconv.Itoa(objectTypeID), info, &ret); err != nil {
		return nil, fmt.Errorf("failed to create object: %w", err)
	}
	return &ret, nil
}

// GetLatestObjectVersion fetches the newest version of an object.
func (o *ObjectOperations) GetLatestObjectVersion(ctx context.Context, id ObjID) (*ObjectVersion, error) {
	if err := id.Validate(); err != nil {
		return nil, invalidArgument("id", err)
	}

	var ret ObjectVersion
	if _, err := o.transport.Get(ctx, objectPath(id)+"/"+latestSegment, &ret); err != nil {
		return nil, fmt.Errorf("failed to get latest version of %s: %w", id, err)
	}
	return &ret, nil
}

// SetCheckoutStatus sets the checkout state of the newest version of an
// object and returns the resulting version.
func (o *ObjectOperations) SetCheckoutStatus(ctx context.Context, id ObjID, status CheckoutStatus) (*ObjectVersion, error) {
	return o.setCheckoutStatus(ctx, id, latestSegment, status)
}

// SetVersionCheckoutStatus sets the checkout state of an explicit version.
func (o *ObjectOperations) SetVersionCheckoutStatus(ctx context.Context, ver ObjVer, status CheckoutStatus) (*ObjectVersion, error) {
	if err := validation.Validate(ver.Version, validation.Min(0)); err != nil {
		return nil, invalidArgument("ver", err)
	}
	return o.setCheckoutStatus(ctx, ver.ObjID, strconv.Itoa(ver.Version), status)
}

func (o *ObjectOperations) setCheckoutStatus(ctx context.Context, id ObjID, version string, status CheckoutStatus) (*ObjectVersion, error) {
	if err := id.Validate(); err != nil {
		return nil, invalidArgument("id", err)
	}
	if err := status.Validate(); err != nil {
		return nil, invalidArgument("status", err)
	}

	path := objectPath(id) + "/" + version + "/checkedout"
	var ret ObjectVersion
	if err := o.transport.Put(ctx, path, statusValue{Value: status}, &ret); err != nil {
		return nil, fmt.Errorf("failed to set checkout status of %s: %w", id, err)
	}
	return &ret, nil
}

// CheckOut checks the object out to the calling user. It is equivalent to
// SetCheckoutStatus with CheckedOutToMe.
func (o *ObjectOperations) CheckOut(ctx context.Context, id ObjID) (*ObjectVersion, error) {
	return o.SetCheckoutStatus(ctx, id, CheckedOutToMe)
}

// CheckIn checks the object back in. It is equivalent to SetCheckoutStatus
// with CheckedIn.
func (o *ObjectOperations) CheckIn(ctx context.Context, id ObjID) (*ObjectVersion, error) {
	return o.SetCheckoutStatus(ctx, id, CheckedIn)
}

// UndoCheckout discards the checked-out working version and returns the
// version the object reverted to.
func (o *ObjectOperations) UndoCheckout(ctx context.Context, ver ObjVer) (*ObjectVersion, error) {
	if err := ver.Validate(); err != nil {
		return nil, invalidArgument("ver", err)
	}

	path := objectPath(ver.ObjID) + "/" + strconv.Itoa(ver.Version) + "/checkedout"
	var ret ObjectVersion
	if err := o.transport.Delete(ctx, path, &ret); err != nil {
		return nil, fmt.Errorf("failed to undo checkout of %s: %w", ver, err)
	}
	return &ret, nil
}

// GetCheckoutStatus reads the checkout state of the newest version. The
// returned pointer is nil when the server supplied no value; that outcome
// is distinct from any enum value.
func (o *ObjectOperations) GetCheckoutStatus(ctx context.Context, id ObjID) (*CheckoutStatus, error) {
	return o.getCheckoutStatus(ctx, id, latestSegment)
}

// GetVersionCheckoutStatus reads the checkout state of an explicit version.
func (o *ObjectOperations) GetVersionCheckoutStatus(ctx context.Context, ver ObjVer) (*CheckoutStatus, error) {
	if err := validation.Validate(ver.Version, validation.Min(0)); err != nil {
		return nil, invalidArgument("ver", err)
	}
	return o.getCheckoutStatus(ctx, ver.ObjID, strconv.Itoa(ver.Version))
}

func (o *ObjectOperations) getCheckoutStatus(ctx context.Context, id ObjID, version string) (*CheckoutStatus, error) {
	if err := id.Validate(); err != nil {
		return nil, invalidArgument("id", err)
	}

	var ret statusValue
	found, err := o.transport.Get(ctx, objectPath(id)+"/"+version+"/checkedout", &ret)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout status of %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	status := ret.Value
	return &status, nil
}

// GetDeletedStatus reports whether the object is marked deleted. The
// returned pointer is nil when the server supplied no value.
func (o *ObjectOperations) GetDeletedStatus(ctx context.Context, id ObjID) (*bool, error) {
	if err := id.Validate(); err != nil {
		return nil, invalidArgument("id", err)
	}

	var ret boolValue
	found, err := o.transport.Get(ctx, objectPath(id)+"/deleted", &ret)
	if err != nil {
		return nil, fmt.Errorf("failed to get deleted status of %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	deleted := ret.Value
	return &deleted, nil
}

// DeleteObject marks the object deleted and returns the resulting version.
func (o *ObjectOperations) DeleteObject(ctx context.Context, id ObjID) (*ObjectVersion, error) {
	return o.setDeletedStatus(ctx, id, true)
}

// UndeleteObject clears the deleted mark and returns the resulting version.
func (o *ObjectOperations) UndeleteObject(ctx context.Context, id ObjID) (*ObjectVersion, error) {
	return o.setDeletedStatus(ctx, id, false)
}

func (o *ObjectOperations) setDeletedStatus(ctx context.Context, id ObjID, deleted bool) (*ObjectVersion, error) {
	if err := id.Validate(); err != nil {
		return nil, invalidArgument("id", err)
	}

	var ret ObjectVersion
	if err := o.transport.Put(ctx, objectPath(id)+"/deleted", boolValue{Value: deleted}, &ret); err != nil {
		return nil, fmt.Errorf("failed to set deleted status of %s: %w", id, err)
	}
	return &ret, nil
}

// GetHistory lists the retained versions of an object, newest first as
// served. The server may omit intermediate versions; callers must not
// assume version numbers are contiguous.
func (o *ObjectOperations) GetHistory(ctx context.Context, id ObjID) ([]ObjectVersion, error) {
	if err := id.Validate(); err != nil {
		return nil, invalidArgument("id", err)
	}

	var ret []ObjectVersion
	if _, err := o.transport.Get(ctx, objectPath(id)+"/history", &ret); err != nil {
		return nil, fmt.Errorf("failed to get history of %s: %w", id, err)
	}
	return ret, nil
}

// objectPath builds the resource path prefix for one object.
func objectPath(id ObjID) string {
	return "objects/" + strconv.Itoa(id.Type) + "/" + strconv.Itoa(id.ID)
}
