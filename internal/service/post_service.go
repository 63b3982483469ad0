package service

import (
	"context"
	"io"
	"time"

	"cleanblog/internal/models"
	"cleanblog/internal/repository"
	"cleanblog/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest, file io.Reader) (*models.Post, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest, file io.Reader) (*models.Post, error)
	DeletePost(ctx context.Context, postID int) error
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
}

func NewPostService(postRepo repository.PostRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo: postRepo,
		storage:  storage,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest, file io.Reader) (*models.Post, error) {
	// Missing or disallowed uploads resolve to the placeholder filename.
	fileName, err := p.storage.SaveImage(req.FileName, file)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Slug:     req.Slug,
		Date:     time.Now(),
		ImageURL: fileName,
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest, file io.Reader) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Slug = req.Slug
	post.Date = time.Now()

	// The image is only replaced when a valid upload is supplied; otherwise
	// the post keeps its current one.
	if file != nil && p.storage.Allowed(req.FileName) {
		fileName, err := p.storage.SaveImage(req.FileName, file)
		if err != nil {
			return nil, err
		}
		post.ImageURL = fileName
	}

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, postID int) error {
	err := p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}

	return nil
}
