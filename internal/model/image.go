package model

import (
	"path"
	"strings"
)

// ImageKind names the family of records an image belongs to. It is also the
// directory (or object prefix) its blob lives under.
type ImageKind string

const (
	ImageKindCategory ImageKind = "hardware_types"
	ImageKindItem     ImageKind = "hardware"
)

// Valid reports whether k is a known kind.
func (k ImageKind) Valid() bool {
	return k == ImageKindCategory || k == ImageKindItem
}

// ImageScheme tags which storage backend holds the blob.
type ImageScheme string

const (
	ImageSchemeNone   ImageScheme = ""
	ImageSchemeLocal  ImageScheme = "local"
	ImageSchemeRemote ImageScheme = "remote"
)

// ImageRef points at exactly one stored blob, or at nothing.
//
//	none:   Scheme == ImageSchemeNone, every other field empty
//	local:  Key is the filename under <root>/<kind>/, URL is /images/<kind>/<filename>
//	remote: Key is the remote object id, URL is what the host returned
type ImageRef struct {
	Scheme ImageScheme
	Kind   ImageKind
	Key    string
	URL    string
}

// NoImage is the empty reference.
func NoImage() ImageRef {
	return ImageRef{}
}

// LocalImage builds a reference to a file stored on local disk.
func LocalImage(kind ImageKind, filename, publicPrefix string) ImageRef {
	return ImageRef{
		Scheme: ImageSchemeLocal,
		Kind:   kind,
		Key:    filename,
		URL:    LocalImageURL(publicPrefix, kind, filename),
	}
}

// RemoteImage builds a reference to an object held by a remote media host.
func RemoteImage(kind ImageKind, url, objectID string) ImageRef {
	return ImageRef{
		Scheme: ImageSchemeRemote,
		Kind:   kind,
		Key:    objectID,
		URL:    url,
	}
}

// LocalImageURL derives the public URL of a locally stored image.
func LocalImageURL(publicPrefix string, kind ImageKind, filename string) string {
	if publicPrefix == "" {
		publicPrefix = "/images"
	}
	return strings.TrimSuffix(publicPrefix, "/") + "/" + path.Join(string(kind), filename)
}

// IsZero reports whether no image is attached.
func (r ImageRef) IsZero() bool {
	return r.Scheme == ImageSchemeNone
}

// Same reports whether r and o point at the same blob. URLs are not compared.
func (r ImageRef) Same(o ImageRef) bool {
	return r.Scheme == o.Scheme && r.Kind == o.Kind && r.Key == o.Key
}

// BlobID identifies the blob across schemes, e.g. "local:hardware/3f2a.png".
func (r ImageRef) BlobID() string {
	if r.IsZero() {
		return ""
	}
	return string(r.Scheme) + ":" + string(r.Kind) + "/" + r.Key
}

func (r ImageRef) String() string {
	if r.IsZero() {
		return "none"
	}
	return r.BlobID()
}
