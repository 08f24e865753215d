package pathfs

import "strings"

const (
	// Scheme is the URI scheme used when rendering paths.
	Scheme = "s3"
	// Sep is the key separator, used both for prefix matching and for
	// splitting names out of full keys.
	Sep = "/"
)

// Path identifies a bucket (the root) and an object key within it. The zero
// value is the rootless path, which Scandir interprets as "list the buckets".
type Path struct {
	root string
	key  string
}

// NewPath builds a path from a bucket name and an object key.
func NewPath(root, key string) Path {
	return Path{
		root: strings.Trim(root, Sep),
		key:  strings.Trim(key, Sep),
	}
}

// ParsePath parses "s3://bucket/key", "bucket/key" or "bucket". Any URI
// scheme is accepted and ignored.
func ParsePath(raw string) Path {
	s := raw
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	s = strings.Trim(s, Sep)
	if s == "" {
		return Path{}
	}
	root, key, _ := strings.Cut(s, Sep)
	return Path{root: root, key: key}
}

// Root returns the bucket name, empty for the rootless path.
func (p Path) Root() string {
	return p.root
}

// Key returns the object key within the bucket, empty at the bucket root.
func (p Path) Key() string {
	return p.key
}

// Join returns a new path with the given segments appended to the key.
func (p Path) Join(segments ...string) Path {
	parts := make([]string, 0, len(segments)+1)
	if p.key != "" {
		parts = append(parts, p.key)
	}
	for _, s := range segments {
		if s = strings.Trim(s, Sep); s != "" {
			parts = append(parts, s)
		}
	}
	return Path{root: p.root, key: strings.Join(parts, Sep)}
}

// String renders the path as an s3:// URI.
func (p Path) String() string {
	switch {
	case p.root == "":
		return Scheme + "://"
	case p.key == "":
		return Scheme + "://" + p.root
	default:
		return Scheme + "://" + p.root + Sep + p.key
	}
}
