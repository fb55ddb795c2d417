package webcms

// Per-endpoint filter types. Each endpoint documents a small set of
// accepted keys; modelling them as structs keeps misspelled or
// misplaced keys out at compile time. Zero-value fields are omitted
// from the request, and parameters are emitted in the order the API
// documents them.

// ContentFilter narrows FetchContent results.
type ContentFilter struct {
	Name            string
	Prefix          string
	ID              int
	Limit           int
	Start           int
	HasUploadedFile *bool
	ContentType     string
}

func (f ContentFilter) params() *Params {
	p := NewParams()
	if f.Name != "" {
		p.Set("name", f.Name)
	}
	if f.Prefix != "" {
		p.Set("prefix", f.Prefix)
	}
	if f.ID > 0 {
		p.Set("id", f.ID)
	}
	if f.Limit > 0 {
		p.Set("limit", f.Limit)
	}
	if f.Start > 0 {
		p.Set("start", f.Start)
	}
	if f.HasUploadedFile != nil {
		p.Set("has_uploaded_file", *f.HasUploadedFile)
	}
	if f.ContentType != "" {
		p.Set("content_type", f.ContentType)
	}
	return p
}

// EventFilter narrows FetchEvents results. Timeline selects past or
// upcoming events as understood by the server.
type EventFilter struct {
	Timeline string
	Type     string
	Limit    int
	Start    int
	ID       int
}

func (f EventFilter) params() *Params {
	p := NewParams()
	if f.Timeline != "" {
		p.Set("timeline", f.Timeline)
	}
	if f.Type != "" {
		p.Set("type", f.Type)
	}
	if f.Limit > 0 {
		p.Set("limit", f.Limit)
	}
	if f.Start > 0 {
		p.Set("start", f.Start)
	}
	if f.ID > 0 {
		p.Set("id", f.ID)
	}
	return p
}

// MediaGalleryFilter narrows FetchMediaGallery results.
type MediaGalleryFilter struct {
	MediaType string
	Limit     int
	Start     int
	ID        int
}

func (f MediaGalleryFilter) params() *Params {
	p := NewParams()
	if f.MediaType != "" {
		p.Set("mediaType", f.MediaType)
	}
	if f.Limit > 0 {
		p.Set("limit", f.Limit)
	}
	if f.Start > 0 {
		p.Set("start", f.Start)
	}
	if f.ID > 0 {
		p.Set("id", f.ID)
	}
	return p
}

// MenuFilter narrows FetchWebsiteMenu results.
type MenuFilter struct {
	MenuLevel int
	ParentID  int
}

func (f MenuFilter) params() *Params {
	p := NewParams()
	if f.MenuLevel > 0 {
		p.Set("menuLevel", f.MenuLevel)
	}
	if f.ParentID > 0 {
		p.Set("parentId", f.ParentID)
	}
	return p
}
