package dto

import (
	"sportshub/internal/domains/post/model"
	"sportshub/shared"
	"sportshub/shared/constant"
	"sportshub/shared/timezone"
	"strings"
	"time"
)

type CreatePostRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date"        validate:"required,day"`
	Image       string `json:"image"       validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
	Link        string `json:"link"        validate:"omitempty,url"`
}

func (r *CreatePostRequest) ToModel(user, imagePath string, now time.Time) (model.Post, error) {
	date, err := shared.ParseDay(r.Date)
	if err != nil {
		return model.Post{}, err //nolint:wrapcheck
	}

	return model.Post{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Date:        date,
		ImagePath:   imagePath,
		Link:        r.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   user,
		UpdatedBy:   user,
	}, nil
}

type UpdatePostRequest struct {
	Title       string `json:"title"       validate:"omitempty,max=200"`
	Description string `json:"description"`
	Date        string `json:"date"        validate:"omitempty,day"`
	Image       string `json:"image"       validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
	Link        string `json:"link"        validate:"omitempty,url"`
}

// Fields returns the document fields to $set. imagePath is only written when non-empty.
func (r *UpdatePostRequest) Fields(user, imagePath string, now time.Time) (map[string]any, error) {
	fields := map[string]any{
		model.FieldUpdatedAt: now,
		model.FieldUpdatedBy: user,
	}

	if r.Title != "" {
		fields[model.FieldTitle] = strings.TrimSpace(r.Title)
	}

	if r.Description != "" {
		fields[model.FieldDescription] = r.Description
	}

	if r.Date != "" {
		date, err := shared.ParseDay(r.Date)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		fields[model.FieldDate] = date
	}

	if r.Link != "" {
		fields[model.FieldLink] = r.Link
	}

	if imagePath != "" {
		fields[model.FieldImagePath] = imagePath
	}

	return fields, nil
}

type PostResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImagePath   string `json:"image_path,omitempty"`
	Link        string `json:"link,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (r *PostResponse) FromModel(model model.Post) {
	r.ID = model.ID.Hex()
	r.Title = model.Title
	r.Description = model.Description
	r.Date = model.Date.Format(constant.DayFormat)
	r.ImagePath = model.ImagePath
	r.Link = model.Link
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
}

type GetPostsResponse struct {
	Posts     []PostResponse `json:"posts"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPostsResponse) FromModels(models []model.Post, total, limit int) {
	r.TotalData = total
	r.TotalPage = shared.CalculateTotalPage(total, limit)

	r.Posts = make([]PostResponse, len(models))
	for i, post := range models {
		r.Posts[i].FromModel(post)
	}
}
