package models

// VideoPage is the stable pagination contract built by the catalog service.
// It is constructed from an item slice plus a total count, never passed
// through from a store-specific result shape.
type VideoPage struct {
	Videos      []VideoWithOwner
	CurrentPage int
	TotalPages  int
	TotalVideos int
	HasNextPage bool
	HasPrevPage bool
}
