package dto

import (
	"time"

	"hotel/infras/s3"
)

// File is a rendered export ready to be streamed.
type File struct {
	Collection  string
	Name        string
	ContentType string
	Content     []byte
	Rows        int
}

type ArchiveResponse struct {
	Collection string `json:"collection"`
	Key        string `json:"key"`
	URL        string `json:"url"`
	Rows       int    `json:"rows"`
}

type ArchiveItemResponse struct {
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

func (r *ArchiveItemResponse) FromObject(object s3.Object) {
	r.Key = object.Key
	r.URL = object.URL
	r.Size = object.Size
	r.LastModified = object.LastModified
}

type GetArchivesResponse struct {
	Archives []ArchiveItemResponse `json:"archives"`
}

func (r *GetArchivesResponse) FromObjects(objects []s3.Object) {
	r.Archives = make([]ArchiveItemResponse, len(objects))

	for idx, object := range objects {
		r.Archives[idx].FromObject(object)
	}
}
