package values

import "github.com/reoring/gojmap"

// File references an uploaded blob.
type File struct {
	BlobID string
	Type   *string
	Name   *string
	Size   *uint64
}

var fileCodec = gojmap.Object("File",
	gojmap.Required("blobId", gojmap.String(), func(f *File) *string { return &f.BlobID }),
	gojmap.Optional("type", gojmap.String(), func(f *File) **string { return &f.Type }),
	gojmap.Optional("name", gojmap.String(), func(f *File) **string { return &f.Name }),
	gojmap.Optional("size", gojmap.Uint64(), func(f *File) **uint64 { return &f.Size }),
)

// FileCodec returns the codec for File.
func FileCodec() gojmap.Codec[File] { return fileCodec }
