package pathfs_test

import (
	"testing"

	"bucketpath/feature/pathfs"

	"github.com/stretchr/testify/assert"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		root string
		key  string
	}{
		{"URI", "s3://data/reports/2024.csv", "data", "reports/2024.csv"},
		{"ForeignScheme", "gs://data/reports/2024.csv", "data", "reports/2024.csv"},
		{"NoScheme", "data/reports/2024.csv", "data", "reports/2024.csv"},
		{"BucketOnly", "s3://data", "data", ""},
		{"TrailingSep", "s3://data/reports/", "data", "reports"},
		{"Rootless", "s3://", "", ""},
		{"Empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pathfs.ParsePath(tt.raw)
			assert.Equal(t, tt.root, p.Root())
			assert.Equal(t, tt.key, p.Key())
		})
	}
}

func TestPath_String(t *testing.T) {
	assert.Equal(t, "s3://", pathfs.Path{}.String())
	assert.Equal(t, "s3://data", pathfs.NewPath("data", "").String())
	assert.Equal(t, "s3://data/a/b.txt", pathfs.NewPath("data", "a/b.txt").String())

	// Parsing what String produced round-trips.
	p := pathfs.NewPath("data", "a/b.txt")
	assert.Equal(t, p, pathfs.ParsePath(p.String()))
}

func TestPath_Join(t *testing.T) {
	p := pathfs.NewPath("data", "reports")
	assert.Equal(t, "s3://data/reports/2024/q1.csv", p.Join("2024", "q1.csv").String())
	assert.Equal(t, "s3://data/x", pathfs.NewPath("data", "").Join("x").String())
	// Empty and separator-only segments are dropped.
	assert.Equal(t, "s3://data/reports", p.Join("", "/").String())
}

func TestNewPath_Trimming(t *testing.T) {
	p := pathfs.NewPath("/data/", "/reports/")
	assert.Equal(t, "data", p.Root())
	assert.Equal(t, "reports", p.Key())
}
