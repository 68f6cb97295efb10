package blogControllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SkriptSparrow/Catalog-AGT/models"
)

// GET /blog
func GetPosts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var posts []models.BlogPost
		if err := db.Order("date DESC").Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// GET /blog_card/:id
func GetPostByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.BlogPost
		if err := db.First(&post, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog post"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

var allowedPhotoExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
}

func saveBlogPhoto(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExts[ext] {
		return "", errors.New("unsupported image format, allowed: png, jpg, jpeg, gif")
	}
	dir := filepath.Join(uploadDir, "blog")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("photo_%s%s", uuid.NewString(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// POST /admin/blog
//
// Multipart form: title, subtitle, text, date (2006-01-02), author and an
// optional photo.
func CreatePost(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := strings.TrimSpace(c.PostForm("title"))
		text := c.PostForm("text")
		dateStr := c.PostForm("date")
		if title == "" || text == "" || dateStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, text and date are required"})
			return
		}

		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}

		post := models.BlogPost{
			Title:    title,
			Subtitle: c.PostForm("subtitle"),
			Text:     text,
			Date:     date,
			Author:   c.PostForm("author"),
		}

		if file, err := c.FormFile("photo"); err == nil {
			filename, err := saveBlogPhoto(c, file, uploadDir)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			post.PhotoFilename = filename
		}

		if err := db.Create(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

// PUT /admin/blog/:id
func UpdatePost(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.BlogPost
		if err := db.First(&post, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}

		if v := c.PostForm("title"); v != "" {
			post.Title = v
		}
		if v := c.PostForm("subtitle"); v != "" {
			post.Subtitle = v
		}
		if v := c.PostForm("text"); v != "" {
			post.Text = v
		}
		if v := c.PostForm("author"); v != "" {
			post.Author = v
		}
		if v := c.PostForm("date"); v != "" {
			date, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
				return
			}
			post.Date = date
		}

		if file, err := c.FormFile("photo"); err == nil {
			filename, err := saveBlogPhoto(c, file, uploadDir)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			post.PhotoFilename = filename
		}

		if err := db.Save(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog post"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// DELETE /admin/blog/:id
func DeletePost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.BlogPost
		if err := db.First(&post, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		if err := db.Delete(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog post"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
	}
}
