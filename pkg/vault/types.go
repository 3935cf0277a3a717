package vault

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/mapstructure"
)

// ObjID references an object regardless of version.
type ObjID struct {
	// Type is the server-defined object type ID. Zero is a valid type.
	Type int `json:"type"`

	// ID is the object's ID within its type. IDs start at 1.
	ID int `json:"id"`
}

// Validate checks the identifier minimums: Type >= 0, ID > 0.
func (o ObjID) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Type, validation.Min(0)),
		validation.Field(&o.ID, validation.Required, validation.Min(1)),
	)
}

func (o ObjID) String() string {
	return fmt.Sprintf("(%d-%d)", o.Type, o.ID)
}

// ObjVer references a specific version of an object.
type ObjVer struct {
	ObjID

	// Version is the version number, starting at 0.
	Version int `json:"version"`
}

// Validate checks the ObjID minimums plus Version >= 0.
func (o ObjVer) Validate() error {
	if err := o.ObjID.Validate(); err != nil {
		return err
	}
	return validation.Validate(o.Version, validation.Min(0))
}

func (o ObjVer) String() string {
	return fmt.Sprintf("(%d-%d-%d)", o.Type, o.ID, o.Version)
}

// CheckoutStatus is the server-tracked lock state of an object version.
type CheckoutStatus int

const (
	// CheckedIn means the object is not checked out to anyone.
	CheckedIn CheckoutStatus = 0

	// CheckedOutToMe means the object is checked out to the calling user.
	CheckedOutToMe CheckoutStatus = 1

	// CheckedOut means the object is checked out to another user.
	CheckedOut CheckoutStatus = 2
)

// Validate checks that the status is one of the known enum values.
func (s CheckoutStatus) Validate() error {
	return validation.Validate(int(s), validation.In(
		int(CheckedIn), int(CheckedOutToMe), int(CheckedOut)))
}

func (s CheckoutStatus) String() string {
	switch s {
	case CheckedIn:
		return "checked-in"
	case CheckedOutToMe:
		return "checked-out-to-me"
	case CheckedOut:
		return "checked-out"
	default:
		return fmt.Sprintf("checkout-status(%d)", int(s))
	}
}

// ObjectVersion is the server's representation of one version of an object.
// Instances are produced only by the server and never mutated by the client.
type ObjectVersion struct {
	// ObjVer identifies this exact version.
	ObjVer ObjVer `json:"objVer"`

	// Title is the object's display name.
	Title string `json:"title"`

	// Class is the server-defined class ID within the object type.
	Class int `json:"class,omitempty"`

	// CreatedUTC and LastModifiedUTC are server timestamps.
	CreatedUTC      time.Time `json:"createdUtc"`
	LastModifiedUTC time.Time `json:"lastModifiedUtc"`

	// CheckedOut is the version's checkout state.
	CheckedOut CheckoutStatus `json:"checkedOut"`

	// CheckedOutTo names the user holding the checkout, when checked out.
	CheckedOutTo string `json:"checkedOutTo,omitempty"`

	// CheckedOutAtUTC is when the checkout was taken, when checked out.
	CheckedOutAtUTC *time.Time `json:"checkedOutAtUtc,omitempty"`

	// Deleted reports whether the object is marked deleted.
	Deleted bool `json:"deleted"`

	// SingleFile reports whether the object holds exactly one file.
	SingleFile bool `json:"singleFile"`

	// Files lists the files attached to this version.
	Files []FileInfo `json:"files,omitempty"`

	// Properties holds the type-specific property values. The set of keys
	// depends on the object type; use DecodeProperties for typed access.
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// DecodeProperties decodes the version's property map into out, which must
// be a pointer to a struct. Field mapping follows mapstructure tags.
func (v *ObjectVersion) DecodeProperties(out interface{}) error {
	if err := mapstructure.Decode(v.Properties, out); err != nil {
		return fmt.Errorf("failed to decode properties for %s: %w", v.ObjVer, err)
	}
	return nil
}

// FileInfo describes one file attached to an object version.
type FileInfo struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Extension string `json:"extension,omitempty"`
	Size      int64  `json:"size"`
}

// ExtendedObjectVersion is an ObjectVersion plus favorite metadata. It is
// returned by the favorites endpoints.
type ExtendedObjectVersion struct {
	ObjectVersion

	// Favorite reports whether the object is on the caller's favorites list.
	Favorite bool `json:"favorite"`

	// FavoriteAddedUTC is when the object was added, when Favorite is true.
	FavoriteAddedUTC *time.Time `json:"favoriteAddedUtc,omitempty"`
}

// ObjectCreationInfo describes a new object to create. The property set is
// opaque to this layer; the server validates it against the object type.
type ObjectCreationInfo struct {
	Title string `json:"title,omitempty"`

	Class int `json:"class,omitempty"`

	SingleFile bool `json:"singleFile,omitempty"`

	// Properties are the type-specific property values for the new object.
	Properties map[string]interface{} `json:"properties,omitempty"`

	// Files references previously uploaded content to attach.
	Files []UploadInfo `json:"files,omitempty"`
}

// UploadInfo references an upload to attach to a new object.
type UploadInfo struct {
	UploadID  int    `json:"uploadId"`
	Title     string `json:"title,omitempty"`
	Extension string `json:"extension,omitempty"`
	Size      int64  `json:"size,omitempty"`
}

// Primitive endpoints wrap scalars in a single-value envelope both ways.
type statusValue struct {
	Value CheckoutStatus `json:"Value"`
}

type boolValue struct {
	Value bool `json:"Value"`
}
