// Package assets abstracts the external media host that stores video and
// thumbnail binaries. Uploads return a durable URL plus a key that can later
// be used to delete the object; deletes are safe to repeat.
package assets

import "context"

type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

// Upload is the result of storing a local file on the asset host.
// Duration is populated for video uploads only.
type Upload struct {
	URL      string
	Key      string
	Duration float64
}

type Store interface {
	Upload(ctx context.Context, localPath string, kind Kind) (*Upload, error)
	Delete(ctx context.Context, key string) error
}
