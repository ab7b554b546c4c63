package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/vmkteam/zenrpc/v2"
)

// MediaService manages the media library.
type MediaService struct {
	zenrpc.Service
	cms *cms.Manager
}

func NewMediaService(manager *cms.Manager) *MediaService {
	return &MediaService{cms: manager}
}

//zenrpc:filter optional filters
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=20 items per page
func (s *MediaService) List(ctx context.Context, filter *MediaFilter, page, pageSize *int) (*MediaList, error) {
	media, count, err := s.cms.MediaList(ctx, filter.ToModel(), db.NewPager(page, pageSize))
	if err != nil {
		return nil, newError(err)
	}

	return &MediaList{Items: Map(media, NewMedia), Count: count}, nil
}

//zenrpc:id media id
func (s *MediaService) Get(ctx context.Context, id string) (*Media, error) {
	m, err := s.cms.MediaByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(m, NewMedia), nil
}

// Upload stores the file in object storage and registers it.
//
//zenrpc:upload file name, content type, base64 data and alt text
//zenrpc:400 invalid params
//zenrpc:503 object storage is not configured
func (s *MediaService) Upload(ctx context.Context, upload UploadInput) (*Media, error) {
	if err := validateInput(upload); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(upload.Data)
	if err != nil {
		return nil, zenrpc.NewStringError(http.StatusBadRequest, "data is not valid base64")
	}

	m, err := s.cms.UploadMedia(ctx, upload.FileName, upload.ContentType, bytes.NewReader(data), int64(len(data)), upload.Alt)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(m, NewMedia), nil
}

// Create registers an externally hosted file.
//
//zenrpc:media media fields
func (s *MediaService) Create(ctx context.Context, media MediaInput) (*Media, error) {
	if err := validateInput(media); err != nil {
		return nil, err
	}

	m, err := s.cms.CreateMedia(ctx, media.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return ptr(m, NewMedia), nil
}

//zenrpc:id media id
//zenrpc:alt alt text
func (s *MediaService) Update(ctx context.Context, id string, alt *string) (*Media, error) {
	m, err := s.cms.UpdateMedia(ctx, id, alt)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(m, NewMedia), nil
}

// Delete unregisters the file and removes it from object storage when it is stored there.
//
//zenrpc:id media id
func (s *MediaService) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.cms.DeleteMedia(ctx, id); err != nil {
		return false, newError(err)
	}

	return true, nil
}
