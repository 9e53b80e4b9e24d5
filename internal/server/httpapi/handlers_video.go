package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reelvault/reelvault/internal/server/models"
	"github.com/reelvault/reelvault/internal/server/services"
)

type videoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Controls     *bool  `json:"controls"`
	Height       int    `json:"height"`
	Width        int    `json:"width"`
	Quality      int    `json:"quality"`
}

type videoResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Controls     bool      `json:"controls"`
	Height       int       `json:"height"`
	Width        int       `json:"width"`
	Quality      int       `json:"quality"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toVideoResponse(v *models.Video) videoResponse {
	return videoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Controls:     v.Controls,
		Height:       v.Height,
		Width:        v.Width,
		Quality:      v.Quality,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func (s *Server) handleListVideos(c *gin.Context) {
	videos, err := s.videos.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	// always an array, even when empty
	result := make([]videoResponse, 0, len(videos))
	for _, v := range videos {
		result = append(result, toVideoResponse(v))
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetVideo(c *gin.Context) {
	video, err := s.videos.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVideoResponse(video))
}

func (s *Server) handleCreateVideo(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	video, err := s.videos.Create(c.Request.Context(), services.CreateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Controls:     req.Controls,
		Height:       req.Height,
		Width:        req.Width,
		Quality:      req.Quality,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toVideoResponse(video))
}

func (s *Server) handleDeleteVideo(c *gin.Context) {
	if err := s.videos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "video deleted"})
}
